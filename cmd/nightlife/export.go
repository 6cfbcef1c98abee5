package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pkordes/nightlife-navigator/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"rank", "group_fit", "venue_id", "venue_name", "music_genre",
	"status", "wait_time", "distance", "lat", "lon",
}

// export writes the whole ranked catalog for a group as CSV (default) or JSON.
func (a *app) export(ctx context.Context, args []string) error {
	fs := a.flagSet("export")
	groupPath := fs.String("group", "", "group YAML file")
	format := fs.String("format", "csv", "output format: csv or json")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *format != "csv" && *format != "json" {
		return fmt.Errorf("%w: format must be csv or json, got %q", domain.ErrValidation, *format)
	}

	_, s, err := a.loadGroup(ctx, *groupPath)
	if err != nil {
		return err
	}
	rows, err := a.exports.Export(ctx, s)
	if err != nil {
		return err
	}

	if *format == "json" {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	return writeCSV(a.out, rows)
}

func writeCSV(w io.Writer, rows []domain.ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(rowToCSVRecord(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// rowToCSVRecord encodes an ExportRow as a flat string slice.
func rowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		strconv.Itoa(r.Rank),
		strconv.Itoa(r.GroupFit),
		r.VenueID,
		r.VenueName,
		r.MusicGenre,
		r.Status,
		r.WaitTimeLabel,
		r.DistanceLabel,
		strconv.FormatFloat(r.Lat, 'f', -1, 64),
		strconv.FormatFloat(r.Lon, 'f', -1, 64),
	}
}
