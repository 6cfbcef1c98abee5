// Package logging builds the structured slog logger used by the CLI.
//
// Environment-facing settings come from config: LOG_LEVEL (debug, info,
// warn, error) and LOG_FORMAT (json or text).
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a logger writing to w at the given level.
// format "text" gives colored tint output for terminals; anything else gives
// JSON lines suitable for log aggregators. Unknown levels fall back to info.
func New(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	if format == "text" {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			TimeFormat: time.Kitchen,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}
