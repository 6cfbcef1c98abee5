package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns s trimmed and case-folded for caseless comparison.
// A Caser is stateful, so one is built per call rather than shared.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// EqualFold reports whether a and b are equal after Fold.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}
