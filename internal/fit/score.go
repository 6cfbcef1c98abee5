package fit

import (
	"math"

	"github.com/pkordes/nightlife-navigator/internal/domain"
)

// Penalty weights for the group fit score.
const (
	MaxScore = 100

	// MaxWaitPenalty is reached once the venue's wait is double the group's
	// average tolerance.
	MaxWaitPenalty = 40

	// MaxVibePenalty is reached when venue and group vibe sit at opposite ends
	// of the scale.
	MaxVibePenalty = 20
)

// Score returns the 0-100 group fit of venue v for a group with summary s.
//
// Starting from 100 it subtracts a wait penalty, scaled linearly from 0 (wait
// at or under the group's average tolerance) to MaxWaitPenalty (wait at least
// double it), and a vibe penalty proportional to the distance between the
// venue's estimated vibe and the group's average. The wait penalty is skipped
// when the group has no wait tolerance or the label carries no number.
//
// The result is rounded half away from zero.
func Score(v domain.Venue, s domain.GroupSummary) int {
	value := float64(MaxScore)
	value -= WaitPenalty(v.WaitTimeLabel, s.AvgMaxWaitMinutes)
	value -= VibePenalty(VenueVibe(v), s.AvgVibe)
	return int(math.Round(clamp(value, 0, MaxScore)))
}

// WaitPenalty returns the points lost for a venue wait label against the
// group's average wait tolerance in minutes.
func WaitPenalty(label string, avgWait float64) float64 {
	if !(avgWait > 0) {
		return 0
	}
	wait, ok := ParseWaitMinutes(label)
	if !ok {
		return 0
	}
	over := math.Max(0, wait-avgWait) / math.Max(avgWait, 1)
	return math.Min(MaxWaitPenalty*over, MaxWaitPenalty)
}

// VibePenalty returns the points lost for the gap between a venue vibe and
// the group's average vibe.
func VibePenalty(venueVibe int, avgVibe float64) float64 {
	delta := math.Abs(float64(venueVibe)-avgVibe) / 100
	if math.IsNaN(delta) {
		return MaxVibePenalty
	}
	return math.Min(delta*MaxVibePenalty, MaxVibePenalty)
}

// WithGroupFit returns a copy of v with GroupFit set to its score against s.
// v itself is left untouched.
func WithGroupFit(v domain.Venue, s domain.GroupSummary) domain.Venue {
	score := Score(v, s)
	out := v
	out.GroupFit = &score
	return out
}

// ScoreAll returns scored copies of venues, in the same order.
func ScoreAll(venues []domain.Venue, s domain.GroupSummary) []domain.Venue {
	out := make([]domain.Venue, len(venues))
	for i, v := range venues {
		out[i] = WithGroupFit(v, s)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}
