package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/nightlife-navigator/internal/domain"
	"github.com/pkordes/nightlife-navigator/internal/repo"
	"github.com/pkordes/nightlife-navigator/internal/service"
	"github.com/pkordes/nightlife-navigator/testutil"
)

// newGroupService returns a GroupService over a fresh in-memory repo.
func newGroupService() *service.GroupService {
	return service.NewGroupService(repo.NewGroupRepo())
}

// ---- Create ----------------------------------------------------------------

func TestGroupService_Create_OK(t *testing.T) {
	svc := newGroupService()

	g, err := svc.Create(context.Background(), "  Friday Crew ", testutil.SampleMembers())

	require.NoError(t, err)
	assert.Equal(t, "Friday Crew", g.Name)
	assert.Len(t, g.Members, 3)
	assert.NotEqual(t, uuid.Nil, g.ID)
}

func TestGroupService_Create_DefaultName(t *testing.T) {
	g, err := newGroupService().Create(context.Background(), "", nil)

	require.NoError(t, err)
	assert.Equal(t, service.DefaultGroupName, g.Name)
	assert.Empty(t, g.Members)
}

func TestGroupService_Create_InvalidMember(t *testing.T) {
	members := testutil.SampleMembers()
	members[1].Vibe = 101

	_, err := newGroupService().Create(context.Background(), "Crew", members)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "vibe must be at most 100")
}

func TestGroupService_Create_RepoError(t *testing.T) {
	boom := errors.New("boom")
	svc := service.NewGroupService(&mockGroupRepo{
		create: func(context.Context, domain.Group) (domain.Group, error) {
			return domain.Group{}, boom
		},
	})

	_, err := svc.Create(context.Background(), "Crew", nil)

	assert.ErrorIs(t, err, boom)
}

// ---- members ---------------------------------------------------------------

func TestGroupService_AddMember(t *testing.T) {
	svc := newGroupService()
	ctx := context.Background()
	g, err := svc.Create(ctx, "Crew", testutil.SampleMembers())
	require.NoError(t, err)

	updated, err := svc.AddMember(ctx, g.ID, domain.NewMember(" Jordan "))

	require.NoError(t, err)
	require.Len(t, updated.Members, 4)
	assert.Equal(t, domain.MemberPreference{Name: "Jordan", MaxCover: 20, MaxWaitMinutes: 30, Vibe: 50}, updated.Members[3])
}

func TestGroupService_AddMember_Validation(t *testing.T) {
	svc := newGroupService()
	ctx := context.Background()
	g, err := svc.Create(ctx, "Crew", nil)
	require.NoError(t, err)

	tests := []struct {
		name    string
		member  domain.MemberPreference
		message string
	}{
		{name: "blank name", member: domain.NewMember("   "), message: "member name is required"},
		{name: "negative cover", member: domain.MemberPreference{Name: "A", MaxCover: -1}, message: "max_cover must be at least 0"},
		{name: "cover too high", member: domain.MemberPreference{Name: "A", MaxCover: 101}, message: "max_cover must be at most 100"},
		{name: "wait too long", member: domain.MemberPreference{Name: "A", MaxWaitMinutes: 121}, message: "max_wait_minutes must be at most 120"},
		{name: "vibe too low", member: domain.MemberPreference{Name: "A", Vibe: -0.5}, message: "vibe must be at least 0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddMember(ctx, g.ID, tc.member)

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorContains(t, err, tc.message)
		})
	}
}

func TestGroupService_AddMember_GroupNotFound(t *testing.T) {
	_, err := newGroupService().AddMember(context.Background(), uuid.New(), domain.NewMember("A"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGroupService_UpdateMember(t *testing.T) {
	svc := newGroupService()
	ctx := context.Background()
	g, err := svc.Create(ctx, "Crew", testutil.SampleMembers())
	require.NoError(t, err)

	alex := g.Members[1]
	alex.Vibe = 90
	updated, err := svc.UpdateMember(ctx, g.ID, 1, alex)

	require.NoError(t, err)
	assert.Equal(t, 90.0, updated.Members[1].Vibe)
	assert.Equal(t, "Alex", updated.Members[1].Name)
}

func TestGroupService_UpdateMember_IndexOutOfRange(t *testing.T) {
	svc := newGroupService()
	ctx := context.Background()
	g, err := svc.Create(ctx, "Crew", testutil.SampleMembers())
	require.NoError(t, err)

	_, err = svc.UpdateMember(ctx, g.ID, 3, domain.NewMember("Ghost"))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.UpdateMember(ctx, g.ID, -1, domain.NewMember("Ghost"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGroupService_RemoveMember(t *testing.T) {
	svc := newGroupService()
	ctx := context.Background()
	g, err := svc.Create(ctx, "Crew", testutil.SampleMembers())
	require.NoError(t, err)

	updated, err := svc.RemoveMember(ctx, g.ID, 0)

	require.NoError(t, err)
	require.Len(t, updated.Members, 2)
	assert.Equal(t, "Alex", updated.Members[0].Name)
	assert.Equal(t, "Sam", updated.Members[1].Name)

	_, err = svc.RemoveMember(ctx, g.ID, 2)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- Summary / Delete ------------------------------------------------------

func TestGroupService_Summary_TracksCurrentMembers(t *testing.T) {
	svc := newGroupService()
	ctx := context.Background()
	g, err := svc.Create(ctx, "Crew", testutil.SampleMembers())
	require.NoError(t, err)

	s, err := svc.Summary(ctx, g.ID)
	require.NoError(t, err)
	assert.InDelta(t, 56.67, s.AvgVibe, 0.01)

	_, err = svc.RemoveMember(ctx, g.ID, 2) // Sam, vibe 80
	require.NoError(t, err)

	s, err = svc.Summary(ctx, g.ID)
	require.NoError(t, err)
	assert.InDelta(t, 45.0, s.AvgVibe, 1e-9)
	assert.InDelta(t, 25.0, s.AvgMaxWaitMinutes, 1e-9)
}

func TestGroupService_Summary_EmptyGroup(t *testing.T) {
	svc := newGroupService()
	ctx := context.Background()
	g, err := svc.Create(ctx, "Crew", nil)
	require.NoError(t, err)

	s, err := svc.Summary(ctx, g.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.GroupSummary{}, s)
}

func TestGroupService_Delete(t *testing.T) {
	svc := newGroupService()
	ctx := context.Background()
	g, err := svc.Create(ctx, "Crew", nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, g.ID))

	_, err = svc.Summary(ctx, g.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, g.ID), domain.ErrNotFound)
}

func TestGroupService_List_NeverNil(t *testing.T) {
	svc := service.NewGroupService(&mockGroupRepo{
		list: func(context.Context) ([]domain.Group, error) { return nil, nil },
	})

	groups, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}
