package fit

import (
	"github.com/google/uuid"

	"github.com/pkordes/nightlife-navigator/internal/domain"
)

// FindAlternate picks a venue to suggest when current gets too crowded.
//
// A candidate qualifies when it sounds like current (see similarSound) and is
// not Busy. current itself is never returned. The first qualifying candidate
// in input order wins; ok is false when none qualifies.
func FindAlternate(current domain.Venue, candidates []domain.Venue) (alt domain.Venue, ok bool) {
	for _, c := range candidates {
		if sameVenue(current, c) {
			continue
		}
		if c.Status.Is(domain.StatusBusy) {
			continue
		}
		if similarSound(current, c) {
			return c, true
		}
	}
	return domain.Venue{}, false
}

// similarSound reports whether candidate offers a musical experience close to
// current's: both jazz, EDM to house/techno, house to EDM/techno, or the same
// sound level.
func similarSound(current, candidate domain.Venue) bool {
	cur, cand := fold(current.MusicGenre), fold(candidate.MusicGenre)

	switch {
	case containsAny(cur, "jazz") && containsAny(cand, "jazz"):
		return true
	case containsAny(cur, "edm") && containsAny(cand, "house", "techno"):
		return true
	case containsAny(cur, "house") && containsAny(cand, "edm", "techno"):
		return true
	}
	return fold(current.SoundLevel) == fold(candidate.SoundLevel)
}

// sameVenue compares by ID. Venues built without IDs fall back to value
// equality of the catalog fields; a score attached to either side is ignored.
func sameVenue(a, b domain.Venue) bool {
	if a.ID != uuid.Nil || b.ID != uuid.Nil {
		return a.ID == b.ID
	}
	a.GroupFit, b.GroupFit = nil, nil
	return a == b
}
