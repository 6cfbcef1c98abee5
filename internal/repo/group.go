// Package repo holds the session-scoped stores behind the services.
// Each resource has its own file with an interface and an implementation.
// Nothing here outlives the process: groups live in memory and the venue
// catalog is read-only reference data.
package repo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/nightlife-navigator/internal/domain"
)

// GroupRepo defines the storage operations for Groups.
// The service layer depends on this interface, which allows the service to be
// unit-tested with a mock.
type GroupRepo interface {
	// Create stores a new group and returns it with ID and CreatedAt populated.
	Create(ctx context.Context, group domain.Group) (domain.Group, error)

	// GetByID retrieves a group. Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Group, error)

	// List returns all groups ordered by creation time, oldest first.
	List(ctx context.Context) ([]domain.Group, error)

	// Update replaces the name and members of an existing group.
	// Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, group domain.Group) (domain.Group, error)

	// Delete removes a group. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// memGroupRepo keeps groups in a map for the lifetime of the process.
// Every read and write copies the member slice so callers never share state
// with the store.
type memGroupRepo struct {
	mu     sync.RWMutex
	groups map[uuid.UUID]domain.Group
	now    func() time.Time
}

// NewGroupRepo constructs an empty in-memory GroupRepo.
func NewGroupRepo() GroupRepo {
	return &memGroupRepo{
		groups: make(map[uuid.UUID]domain.Group),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *memGroupRepo) Create(_ context.Context, group domain.Group) (domain.Group, error) {
	g := group.Clone()
	g.ID = uuid.New()
	g.CreatedAt = r.now()

	r.mu.Lock()
	r.groups[g.ID] = g
	r.mu.Unlock()

	return g.Clone(), nil
}

func (r *memGroupRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Group, error) {
	r.mu.RLock()
	g, ok := r.groups[id]
	r.mu.RUnlock()

	if !ok {
		return domain.Group{}, fmt.Errorf("repo.GroupRepo.GetByID: %w", domain.ErrNotFound)
	}
	return g.Clone(), nil
}

func (r *memGroupRepo) List(_ context.Context) ([]domain.Group, error) {
	r.mu.RLock()
	out := make([]domain.Group, 0, len(r.groups))
	for _, g := range r.groups {
		out = append(out, g.Clone())
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memGroupRepo) Update(_ context.Context, group domain.Group) (domain.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.groups[group.ID]
	if !ok {
		return domain.Group{}, fmt.Errorf("repo.GroupRepo.Update: %w", domain.ErrNotFound)
	}
	existing.Name = group.Name
	existing.Members = group.Clone().Members
	r.groups[group.ID] = existing

	return existing.Clone(), nil
}

func (r *memGroupRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.groups[id]; !ok {
		return fmt.Errorf("repo.GroupRepo.Delete: %w", domain.ErrNotFound)
	}
	delete(r.groups, id)
	return nil
}
