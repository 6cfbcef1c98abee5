package fit

import (
	"regexp"
	"strconv"
)

var (
	waitRangeRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*[-–—]\s*(\d+(?:\.\d+)?)`)
	waitNumberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// ParseWaitMinutes extracts a wait estimate in minutes from a display label.
//
//	"10-15 min" -> 12.5 (midpoint of the range)
//	"20 min"    -> 20   (first number)
//	"no line"   -> 0, false
//
// The second result is false when the label holds no number at all.
func ParseWaitMinutes(label string) (float64, bool) {
	if m := waitRangeRe.FindStringSubmatch(label); m != nil {
		low, errLow := strconv.ParseFloat(m[1], 64)
		high, errHigh := strconv.ParseFloat(m[2], 64)
		if errLow == nil && errHigh == nil {
			return (low + high) / 2, true
		}
	}

	if m := waitNumberRe.FindString(label); m != "" {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

// WaitRange returns the low and high bounds written in a label. A single
// number yields low == high. ok is false when the label has no number.
func WaitRange(label string) (low, high float64, ok bool) {
	if m := waitRangeRe.FindStringSubmatch(label); m != nil {
		l, errLow := strconv.ParseFloat(m[1], 64)
		h, errHigh := strconv.ParseFloat(m[2], 64)
		if errLow == nil && errHigh == nil {
			return l, h, true
		}
	}
	v, ok := ParseWaitMinutes(label)
	return v, v, ok
}
