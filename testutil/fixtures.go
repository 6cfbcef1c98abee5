// Package testutil provides shared fixtures for tests across packages.
// Fixtures mirror the prototype's sample data so scenario tests read the same
// as the app's demo screens.
package testutil

import (
	"github.com/pkordes/nightlife-navigator/internal/domain"
)

// SampleMembers returns the three-person demo group: You, Alex and Sam.
// Their vibes average to 56.67.
func SampleMembers() []domain.MemberPreference {
	return []domain.MemberPreference{
		{Name: "You", MaxCover: 20, MaxWaitMinutes: 30, Vibe: 55},
		{Name: "Alex", MaxCover: 15, MaxWaitMinutes: 20, Vibe: 35},
		{Name: "Sam", MaxCover: 25, MaxWaitMinutes: 45, Vibe: 80},
	}
}

// Venue builds a venue with the given genre, status and wait label. The ID is
// derived from name so that two calls with the same name are the same venue.
func Venue(name, genre string, status domain.Status, wait, sound string) domain.Venue {
	return domain.Venue{
		ID:            domain.VenueID(name),
		Name:          name,
		DistanceLabel: "0.5 mi",
		WaitTimeLabel: wait,
		Status:        status,
		MusicGenre:    genre,
		SoundLevel:    sound,
	}
}

// SampleVenues returns the ten demo venues in catalog order.
func SampleVenues() []domain.Venue {
	return []domain.Venue{
		Venue("The Velvet Room", "R&B DJ", domain.StatusComfy, "0-5 min", "moderate"),
		Venue("Neon Pulse", "EDM", domain.StatusBusy, "10-15 min", "loud"),
		Venue("Socialista", "Latin", domain.StatusModerate, "5-10 min", "loud"),
		Venue("Paul's Baby Grand", "Live Jazz", domain.StatusComfy, "0-5 min", "moderate"),
		Venue("The Jazz Corner", "Live Jazz", domain.StatusModerate, "5-10 min", "moderate"),
		Venue("Rooftop Lounge", "House", domain.StatusBusy, "15-20 min", "loud"),
		Venue("Warehouse on Watts", "Techno", domain.StatusBusy, "20-25 min", "loud"),
		Venue("The Dive Bar", "Rock Cover Band", domain.StatusComfy, "0-5 min", "moderate"),
		Venue("Silk Nightclub", "Top 40", domain.StatusBusy, "25-30 min", "loud"),
		Venue("The Library Lounge", "Acoustic", domain.StatusModerate, "5-10 min", "moderate"),
	}
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
