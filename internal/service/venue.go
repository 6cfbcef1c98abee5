package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/pkordes/nightlife-navigator/internal/domain"
	"github.com/pkordes/nightlife-navigator/internal/fit"
	"github.com/pkordes/nightlife-navigator/internal/repo"
)

// RankedVenues is one page of venues ordered by group fit.
type RankedVenues struct {
	Summary domain.GroupSummary
	Venues  []domain.Venue
	Total   int
	Page    domain.PaginationParams
}

// Reroute is the outcome of a simulated wait-time spike.
// Spiked is the crowded venue as it would now appear; Alternate is the
// suggested substitute.
type Reroute struct {
	Spiked    domain.Venue
	Alternate domain.Venue
}

// VenueService ranks catalog venues for a group and suggests reroutes.
type VenueService struct {
	catalog repo.VenueCatalog
}

// NewVenueService constructs a VenueService over the given catalog.
func NewVenueService(c repo.VenueCatalog) *VenueService {
	return &VenueService{catalog: c}
}

// List returns every catalog venue, unscored.
func (s *VenueService) List(ctx context.Context) ([]domain.Venue, error) {
	venues, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.VenueService.List: %w", err)
	}
	return venues, nil
}

// GetByID returns a single venue.
func (s *VenueService) GetByID(ctx context.Context, id uuid.UUID) (domain.Venue, error) {
	v, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("service.VenueService.GetByID: %w", err)
	}
	return v, nil
}

// GetByName returns the venue with the given name, ignoring case.
func (s *VenueService) GetByName(ctx context.Context, name string) (domain.Venue, error) {
	v, err := s.catalog.GetByName(ctx, name)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("service.VenueService.GetByName: %w", err)
	}
	return v, nil
}

// Rank scores every venue against summary and returns the requested page,
// best fit first. Venues with equal fit keep catalog order. page is
// normalized; see domain.PaginationParams.Normalize.
func (s *VenueService) Rank(ctx context.Context, summary domain.GroupSummary, page domain.PaginationParams) (RankedVenues, error) {
	venues, err := s.catalog.List(ctx)
	if err != nil {
		return RankedVenues{}, fmt.Errorf("service.VenueService.Rank: %w", err)
	}

	scored := rankVenues(venues, summary)
	page = page.Normalize()
	start, end := page.Bounds(len(scored))
	return RankedVenues{
		Summary: summary,
		Venues:  scored[start:end],
		Total:   len(scored),
		Page:    page,
	}, nil
}

// rankVenues scores venues and orders them best fit first. Ties keep input order.
func rankVenues(venues []domain.Venue, summary domain.GroupSummary) []domain.Venue {
	scored := fit.ScoreAll(venues, summary)
	sort.SliceStable(scored, func(i, j int) bool {
		return *scored[i].GroupFit > *scored[j].GroupFit
	})
	return scored
}

// ReloadRegion refreshes the catalog for a new map region.
func (s *VenueService) ReloadRegion(ctx context.Context, region domain.Region) ([]domain.Venue, error) {
	venues, err := s.catalog.Reload(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("service.VenueService.ReloadRegion: %w", err)
	}
	return venues, nil
}

// SimulateSpike marks a venue Busy with its wait raised by minutes and looks
// for an alternate among the rest of the catalog.
//
// Returns domain.ErrValidation if minutes is not positive and
// domain.ErrNoAlternate (with Spiked still populated) when nothing qualifies.
func (s *VenueService) SimulateSpike(ctx context.Context, id uuid.UUID, minutes int) (Reroute, error) {
	if minutes <= 0 {
		return Reroute{}, fmt.Errorf("service.VenueService.SimulateSpike: %w: spike minutes must be positive", domain.ErrValidation)
	}
	current, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		return Reroute{}, fmt.Errorf("service.VenueService.SimulateSpike: %w", err)
	}
	candidates, err := s.catalog.List(ctx)
	if err != nil {
		return Reroute{}, fmt.Errorf("service.VenueService.SimulateSpike: %w", err)
	}

	spiked := current
	spiked.Status = domain.StatusBusy
	spiked.WaitTimeLabel = SpikeWaitLabel(current.WaitTimeLabel, minutes)

	result := Reroute{Spiked: spiked}
	alt, ok := fit.FindAlternate(spiked, candidates)
	if !ok {
		slog.InfoContext(ctx, "wait spike without alternate", "venue", current.Name)
		return result, fmt.Errorf("service.VenueService.SimulateSpike: %q: %w", current.Name, domain.ErrNoAlternate)
	}
	result.Alternate = alt

	slog.InfoContext(ctx, "wait spike rerouted",
		"venue", current.Name,
		"wait", spiked.WaitTimeLabel,
		"alternate", alt.Name,
	)
	return result, nil
}

// SpikeWaitLabel raises every number in a wait label by minutes.
//
//	"10-15 min", 20 -> "30-35 min"
//	"20 min", 20    -> "40 min"
//	"no line", 20   -> "20+ min"
func SpikeWaitLabel(label string, minutes int) string {
	low, high, ok := fit.WaitRange(label)
	if !ok {
		return fmt.Sprintf("%d+ min", minutes)
	}
	m := float64(minutes)
	if low == high {
		return formatMinutes(low+m) + " min"
	}
	return formatMinutes(low+m) + "-" + formatMinutes(high+m) + " min"
}

func formatMinutes(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
