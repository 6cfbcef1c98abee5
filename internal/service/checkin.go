package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/pkordes/nightlife-navigator/internal/domain"
	"github.com/pkordes/nightlife-navigator/internal/repo"
)

// QR image size limits in pixels.
const (
	MinQRSize = 64
	MaxQRSize = 2048
)

// CheckInService records arrivals at venues and renders check-in QR codes.
type CheckInService struct {
	venues repo.VenueCatalog
	now    func() time.Time
}

// NewCheckInService constructs a CheckInService. now is the clock used to
// stamp check-ins; pass nil for time.Now.
func NewCheckInService(venues repo.VenueCatalog, now func() time.Time) *CheckInService {
	if now == nil {
		now = time.Now
	}
	return &CheckInService{venues: venues, now: now}
}

// CheckIn builds a check-in for the venue at the current time.
func (s *CheckInService) CheckIn(ctx context.Context, venueID uuid.UUID) (domain.CheckIn, error) {
	v, err := s.venues.GetByID(ctx, venueID)
	if err != nil {
		return domain.CheckIn{}, fmt.Errorf("service.CheckInService.CheckIn: %w", err)
	}

	at := s.now().UTC()
	c := domain.CheckIn{
		ID:        uuid.New(),
		VenueID:   v.ID,
		VenueName: v.Name,
		At:        at,
		Payload:   domain.CheckInPayload(v.Name, at),
	}
	slog.InfoContext(ctx, "checked in", "venue", v.Name, "check_in_id", c.ID)
	return c, nil
}

// QRCode checks in to the venue and encodes the payload as a size x size PNG.
// Returns domain.ErrValidation if size is outside [MinQRSize, MaxQRSize].
func (s *CheckInService) QRCode(ctx context.Context, venueID uuid.UUID, size int) (domain.CheckIn, []byte, error) {
	if size < MinQRSize || size > MaxQRSize {
		return domain.CheckIn{}, nil, fmt.Errorf("service.CheckInService.QRCode: %w: size must be between %d and %d", domain.ErrValidation, MinQRSize, MaxQRSize)
	}
	c, err := s.CheckIn(ctx, venueID)
	if err != nil {
		return domain.CheckIn{}, nil, fmt.Errorf("service.CheckInService.QRCode: %w", err)
	}
	png, err := qrcode.Encode(c.Payload, qrcode.Medium, size)
	if err != nil {
		return domain.CheckIn{}, nil, fmt.Errorf("service.CheckInService.QRCode: encode: %w", err)
	}
	return c, png, nil
}
