package repo_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/nightlife-navigator/internal/domain"
	"github.com/pkordes/nightlife-navigator/internal/repo"
	"github.com/pkordes/nightlife-navigator/testutil"
)

// groupFixture returns a domain.Group with the sample members.
// Callers can override individual fields after calling this function.
func groupFixture() domain.Group {
	return domain.Group{Name: "Friday Crew", Members: testutil.SampleMembers()}
}

func TestGroupRepo_Create(t *testing.T) {
	r := repo.NewGroupRepo()
	ctx := context.Background()

	got, err := r.Create(ctx, groupFixture())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, "Friday Crew", got.Name)
	assert.Len(t, got.Members, 3)
}

func TestGroupRepo_GetByID(t *testing.T) {
	r := repo.NewGroupRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, groupFixture())
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGroupRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewGroupRepo()

	_, err := r.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGroupRepo_ReturnedMembersAreCopies(t *testing.T) {
	r := repo.NewGroupRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, groupFixture())
	require.NoError(t, err)

	created.Members[0].Vibe = 0

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 55.0, got.Members[0].Vibe, "store must not alias caller slices")
}

func TestGroupRepo_List(t *testing.T) {
	r := repo.NewGroupRepo()
	ctx := context.Background()

	first := groupFixture()
	first.Name = "First"
	second := groupFixture()
	second.Name = "Second"

	_, err := r.Create(ctx, first)
	require.NoError(t, err)
	_, err = r.Create(ctx, second)
	require.NoError(t, err)

	groups, err := r.List(ctx)

	require.NoError(t, err)
	require.Len(t, groups, 2)
	names := []string{groups[0].Name, groups[1].Name}
	assert.ElementsMatch(t, []string{"First", "Second"}, names)
}

func TestGroupRepo_Update(t *testing.T) {
	r := repo.NewGroupRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, groupFixture())
	require.NoError(t, err)

	created.Name = "Saturday Crew"
	created.Members = created.Members[:1]
	updated, err := r.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, "Saturday Crew", updated.Name)
	assert.Len(t, updated.Members, 1)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestGroupRepo_Update_NotFound(t *testing.T) {
	r := repo.NewGroupRepo()

	g := groupFixture()
	g.ID = uuid.New()
	_, err := r.Update(context.Background(), g)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGroupRepo_Delete(t *testing.T) {
	r := repo.NewGroupRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, groupFixture())
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, created.ID), domain.ErrNotFound)
}

func TestGroupRepo_ConcurrentAccess(t *testing.T) {
	r := repo.NewGroupRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g, err := r.Create(ctx, groupFixture())
			if !assert.NoError(t, err) {
				return
			}
			_, err = r.GetByID(ctx, g.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	groups, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, groups, 20)
}
