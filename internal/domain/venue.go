package domain

import (
	"github.com/google/uuid"
)

// Status is the crowd level reported for a venue. Comparisons are
// case-insensitive; see Is.
type Status string

const (
	StatusComfy    Status = "Comfy"
	StatusModerate Status = "Moderate"
	StatusBusy     Status = "Busy"
)

// Is reports whether s and other name the same status, ignoring case.
func (s Status) Is(other Status) bool {
	return EqualFold(string(s), string(other))
}

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" yaml:"lon" validate:"min=-180,max=180"`
}

// Region is a map viewport: a center and the latitude/longitude span shown.
type Region struct {
	Center   Coordinate `json:"center"`
	LatDelta float64    `json:"lat_delta"`
	LonDelta float64    `json:"lon_delta"`
}

// Venue is an immutable reference record from the catalog.
// GroupFit is nil until a venue has been scored against a group, and is only
// ever set on a copy.
type Venue struct {
	ID            uuid.UUID  `json:"id" yaml:"id"`
	Name          string     `json:"name" yaml:"name" validate:"required"`
	DistanceLabel string     `json:"distance" yaml:"distance"`
	WaitTimeLabel string     `json:"wait_time" yaml:"wait_time"`
	Status        Status     `json:"status" yaml:"status" validate:"required"`
	MusicGenre    string     `json:"music_genre" yaml:"music_genre"`
	SoundLevel    string     `json:"sound_level" yaml:"sound_level"`
	GroupFit      *int       `json:"group_fit,omitempty" yaml:"group_fit,omitempty" validate:"omitempty,min=0,max=100"`
	Coordinate    Coordinate `json:"coordinate" yaml:"coordinate"`
}

// venueNamespace seeds deterministic venue IDs derived from names.
var venueNamespace = uuid.MustParse("5f1c8a52-7f0e-4b8e-9a3d-2c6b1e0d4a77")

// VenueID returns the stable ID used for a venue that has no explicit ID.
// The same name always maps to the same ID.
func VenueID(name string) uuid.UUID {
	return uuid.NewSHA1(venueNamespace, []byte(Fold(name)))
}
