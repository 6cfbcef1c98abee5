package fit

import "github.com/pkordes/nightlife-navigator/internal/domain"

// DefaultGenreVibe is the base vibe for a genre no rule recognises.
const DefaultGenreVibe = 50

// genreRule maps any of its keywords, matched as a caseless substring of the
// music genre, to a base vibe.
type genreRule struct {
	keywords []string
	vibe     int
}

// genreRules is evaluated top to bottom; the first matching rule wins.
// "Techno House" is therefore 80, and "Latin Jazz" is 70.
var genreRules = []genreRule{
	{keywords: []string{"edm", "house", "techno"}, vibe: 80},
	{keywords: []string{"top 40"}, vibe: 65},
	{keywords: []string{"latin"}, vibe: 70},
	{keywords: []string{"r&b"}, vibe: 55},
	{keywords: []string{"rock"}, vibe: 60},
	{keywords: []string{"acoustic", "jazz"}, vibe: 35},
}

// crowdAdjustments adds energy for fuller rooms.
var crowdAdjustments = []struct {
	status domain.Status
	delta  int
}{
	{domain.StatusBusy, 10},
	{domain.StatusModerate, 5},
}

// GenreVibe returns the base vibe for a music genre.
func GenreVibe(genre string) int {
	g := fold(genre)
	for _, r := range genreRules {
		if containsAny(g, r.keywords...) {
			return r.vibe
		}
	}
	return DefaultGenreVibe
}

// CrowdAdjustment returns the vibe bonus for a crowd status.
func CrowdAdjustment(status domain.Status) int {
	for _, a := range crowdAdjustments {
		if status.Is(a.status) {
			return a.delta
		}
	}
	return 0
}

// VenueVibe estimates a venue's energy on the 0-100 vibe scale from its
// genre and crowd status.
func VenueVibe(v domain.Venue) int {
	return clampInt(GenreVibe(v.MusicGenre)+CrowdAdjustment(v.Status), 0, 100)
}

// VibeLabel names a vibe value the way the preference sliders do.
func VibeLabel(vibe float64) string {
	switch {
	case vibe < 25:
		return "Chill"
	case vibe < 60:
		return "Balanced"
	default:
		return "Hype"
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
