// Package fit scores how well nightlife venues suit a group.
//
// Everything here is a pure function over values from the domain package:
// no logging, no I/O, no shared state. Each call reads only its arguments,
// so the functions are safe to call from any goroutine and cheap enough to
// run on every preference change without a cache.
package fit

import "github.com/pkordes/nightlife-navigator/internal/domain"

// Aggregate returns the component-wise arithmetic mean of the members'
// preferences. An empty group yields the zero summary.
//
// Means are kept at full float64 precision; rounding is left to display code.
func Aggregate(members []domain.MemberPreference) domain.GroupSummary {
	if len(members) == 0 {
		return domain.GroupSummary{}
	}

	var cover, wait, vibe float64
	for _, m := range members {
		cover += m.MaxCover
		wait += m.MaxWaitMinutes
		vibe += m.Vibe
	}

	n := float64(len(members))
	return domain.GroupSummary{
		AvgMaxCover:       cover / n,
		AvgMaxWaitMinutes: wait / n,
		AvgVibe:           vibe / n,
	}
}
