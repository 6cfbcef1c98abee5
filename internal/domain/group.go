package domain

import (
	"time"

	"github.com/google/uuid"
)

// Group is a set of people heading out together.
// Members are owned by the group; removing a member or deleting the group
// discards the preference record.
type Group struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name" yaml:"name"`
	Members   []MemberPreference `json:"members" yaml:"members"`
	CreatedAt time.Time          `json:"created_at"`
}

// Clone returns a copy of g whose member slice does not alias g's.
func (g Group) Clone() Group {
	out := g
	out.Members = append([]MemberPreference(nil), g.Members...)
	return out
}
