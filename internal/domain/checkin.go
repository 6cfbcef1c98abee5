package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CheckIn records a member arriving at a venue.
// Payload is the string encoded into the check-in QR code.
type CheckIn struct {
	ID        uuid.UUID `json:"id"`
	VenueID   uuid.UUID `json:"venue_id"`
	VenueName string    `json:"venue_name"`
	At        time.Time `json:"at"`
	Payload   string    `json:"payload"`
}

// CheckInPayload formats the QR payload for a check-in at venueName.
func CheckInPayload(venueName string, at time.Time) string {
	return fmt.Sprintf("venue:%s_checkin:%d", venueName, at.Unix())
}
