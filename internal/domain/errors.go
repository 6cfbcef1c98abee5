package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// group or venue does not exist.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. empty member name, vibe outside 0-100).
var ErrValidation = errors.New("validation error")

// ErrNoAlternate is returned when a reroute finds no candidate with a similar
// sound and a better crowd status.
var ErrNoAlternate = errors.New("no alternate venue")
