package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/nightlife-navigator/internal/domain"
	"github.com/pkordes/nightlife-navigator/internal/repo"
)

// ---- mock repos ------------------------------------------------------------

// mockGroupRepo is a hand-written test double for repo.GroupRepo.
// Set only the method fields your test needs.
type mockGroupRepo struct {
	create  func(ctx context.Context, g domain.Group) (domain.Group, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Group, error)
	list    func(ctx context.Context) ([]domain.Group, error)
	update  func(ctx context.Context, g domain.Group) (domain.Group, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockGroupRepo) Create(ctx context.Context, g domain.Group) (domain.Group, error) {
	return m.create(ctx, g)
}
func (m *mockGroupRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Group, error) {
	return m.getByID(ctx, id)
}
func (m *mockGroupRepo) List(ctx context.Context) ([]domain.Group, error) {
	return m.list(ctx)
}
func (m *mockGroupRepo) Update(ctx context.Context, g domain.Group) (domain.Group, error) {
	return m.update(ctx, g)
}
func (m *mockGroupRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time check: mockGroupRepo must satisfy repo.GroupRepo.
var _ repo.GroupRepo = (*mockGroupRepo)(nil)

// mockVenueCatalog is a hand-written test double for repo.VenueCatalog.
type mockVenueCatalog struct {
	list      func(ctx context.Context) ([]domain.Venue, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Venue, error)
	getByName func(ctx context.Context, name string) (domain.Venue, error)
	reload    func(ctx context.Context, region domain.Region) ([]domain.Venue, error)
}

func (m *mockVenueCatalog) List(ctx context.Context) ([]domain.Venue, error) {
	return m.list(ctx)
}
func (m *mockVenueCatalog) GetByID(ctx context.Context, id uuid.UUID) (domain.Venue, error) {
	return m.getByID(ctx, id)
}
func (m *mockVenueCatalog) GetByName(ctx context.Context, name string) (domain.Venue, error) {
	return m.getByName(ctx, name)
}
func (m *mockVenueCatalog) Reload(ctx context.Context, region domain.Region) ([]domain.Venue, error) {
	return m.reload(ctx, region)
}

// compile-time check: mockVenueCatalog must satisfy repo.VenueCatalog.
var _ repo.VenueCatalog = (*mockVenueCatalog)(nil)

// staticCatalog returns a mock catalog serving venues for List and GetByID.
func staticCatalog(venues []domain.Venue) *mockVenueCatalog {
	return &mockVenueCatalog{
		list: func(context.Context) ([]domain.Venue, error) {
			return append([]domain.Venue(nil), venues...), nil
		},
		getByID: func(_ context.Context, id uuid.UUID) (domain.Venue, error) {
			for _, v := range venues {
				if v.ID == id {
					return v, nil
				}
			}
			return domain.Venue{}, domain.ErrNotFound
		},
	}
}
