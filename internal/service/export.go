package service

import (
	"context"
	"fmt"

	"github.com/pkordes/nightlife-navigator/internal/domain"
	"github.com/pkordes/nightlife-navigator/internal/repo"
)

// ExportService assembles a flat export of the whole catalog ranked for a group.
type ExportService struct {
	venues repo.VenueCatalog
}

// NewExportService constructs an ExportService backed by the provided catalog.
func NewExportService(venues repo.VenueCatalog) *ExportService {
	return &ExportService{venues: venues}
}

// Export returns one ExportRow per catalog venue, best fit first.
// Rank starts at 1; venues with equal fit share catalog order, not rank.
func (s *ExportService) Export(ctx context.Context, summary domain.GroupSummary) ([]domain.ExportRow, error) {
	venues, err := s.venues.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	ranked := rankVenues(venues, summary)
	rows := make([]domain.ExportRow, 0, len(ranked))
	for i, v := range ranked {
		rows = append(rows, domain.ExportRow{
			Rank:          i + 1,
			GroupFit:      *v.GroupFit,
			VenueID:       v.ID.String(),
			VenueName:     v.Name,
			MusicGenre:    v.MusicGenre,
			Status:        string(v.Status),
			WaitTimeLabel: v.WaitTimeLabel,
			DistanceLabel: v.DistanceLabel,
			Lat:           v.Coordinate.Lat,
			Lon:           v.Coordinate.Lon,
		})
	}
	return rows, nil
}
