// Package domain contains the core data types for the Nightlife Navigator.
// Only google/uuid is imported here; every other internal package (fit, repo,
// service) builds on these values.
package domain

// Default preference values for a member added without explicit settings.
const (
	DefaultMaxCover       = 20
	DefaultMaxWaitMinutes = 30
	DefaultVibe           = 50
)

// MemberPreference is one group member's stated tolerances.
// A member belongs to exactly one group and has no identity beyond the
// group's membership list.
type MemberPreference struct {
	Name           string  `json:"name" yaml:"name" validate:"required"`
	MaxCover       float64 `json:"max_cover" yaml:"max_cover" validate:"min=0,max=100"`             // currency units
	MaxWaitMinutes float64 `json:"max_wait_minutes" yaml:"max_wait_minutes" validate:"min=0,max=120"` // minutes
	Vibe           float64 `json:"vibe" yaml:"vibe" validate:"min=0,max=100"`                       // 0 = chill, 100 = hype
}

// NewMember returns a MemberPreference carrying the default tolerances.
func NewMember(name string) MemberPreference {
	return MemberPreference{
		Name:           name,
		MaxCover:       DefaultMaxCover,
		MaxWaitMinutes: DefaultMaxWaitMinutes,
		Vibe:           DefaultVibe,
	}
}

// GroupSummary is the per-group mean of member preferences.
// It is derived on demand and never stored.
type GroupSummary struct {
	AvgMaxCover       float64 `json:"avg_max_cover"`
	AvgMaxWaitMinutes float64 `json:"avg_max_wait_minutes"`
	AvgVibe           float64 `json:"avg_vibe"`
}
