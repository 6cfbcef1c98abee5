// Package service contains the business logic for the Nightlife Navigator.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls; scoring itself is delegated to the pure functions in package fit.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/nightlife-navigator/internal/domain"
	"github.com/pkordes/nightlife-navigator/internal/fit"
	"github.com/pkordes/nightlife-navigator/internal/repo"
)

// DefaultGroupName is used when a group is created without a name.
const DefaultGroupName = "My Group"

// GroupService implements business logic for group sessions: forming a
// group, editing member preferences and summarising them.
type GroupService struct {
	groups repo.GroupRepo
}

// NewGroupService constructs a GroupService backed by the provided GroupRepo.
func NewGroupService(r repo.GroupRepo) *GroupService {
	return &GroupService{groups: r}
}

// Create validates every member and stores a new group.
// Returns domain.ErrValidation if any member violates the preference ranges.
func (s *GroupService) Create(ctx context.Context, name string, members []domain.MemberPreference) (domain.Group, error) {
	g := domain.Group{Name: strings.TrimSpace(name)}
	if g.Name == "" {
		g.Name = DefaultGroupName
	}
	for i, m := range members {
		m.Name = strings.TrimSpace(m.Name)
		if err := validateMember(m); err != nil {
			return domain.Group{}, fmt.Errorf("service.GroupService.Create: member %d: %w", i, err)
		}
		g.Members = append(g.Members, m)
	}

	created, err := s.groups.Create(ctx, g)
	if err != nil {
		return domain.Group{}, fmt.Errorf("service.GroupService.Create: %w", err)
	}
	slog.InfoContext(ctx, "group created", "group_id", created.ID, "members", len(created.Members))
	return created, nil
}

// GetByID returns a single group.
func (s *GroupService) GetByID(ctx context.Context, id uuid.UUID) (domain.Group, error) {
	g, err := s.groups.GetByID(ctx, id)
	if err != nil {
		return domain.Group{}, fmt.Errorf("service.GroupService.GetByID: %w", err)
	}
	return g, nil
}

// List returns all groups in the session.
// Always returns a non-nil slice so callers can safely range over it.
func (s *GroupService) List(ctx context.Context) ([]domain.Group, error) {
	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.GroupService.List: %w", err)
	}
	if groups == nil {
		return []domain.Group{}, nil
	}
	return groups, nil
}

// AddMember appends a member to the group.
// Returns domain.ErrValidation for an empty name or out-of-range preference.
func (s *GroupService) AddMember(ctx context.Context, groupID uuid.UUID, member domain.MemberPreference) (domain.Group, error) {
	member.Name = strings.TrimSpace(member.Name)
	if err := validateMember(member); err != nil {
		return domain.Group{}, fmt.Errorf("service.GroupService.AddMember: %w", err)
	}
	return s.mutate(ctx, "service.GroupService.AddMember", groupID, func(g *domain.Group) error {
		g.Members = append(g.Members, member)
		return nil
	})
}

// UpdateMember replaces the member at index, as when a slider moves.
// Returns domain.ErrValidation if index is out of range or the member is invalid.
func (s *GroupService) UpdateMember(ctx context.Context, groupID uuid.UUID, index int, member domain.MemberPreference) (domain.Group, error) {
	member.Name = strings.TrimSpace(member.Name)
	if err := validateMember(member); err != nil {
		return domain.Group{}, fmt.Errorf("service.GroupService.UpdateMember: %w", err)
	}
	return s.mutate(ctx, "service.GroupService.UpdateMember", groupID, func(g *domain.Group) error {
		if err := checkIndex(g, index); err != nil {
			return err
		}
		g.Members[index] = member
		return nil
	})
}

// RemoveMember drops the member at index from the group.
// Returns domain.ErrValidation if index is out of range.
func (s *GroupService) RemoveMember(ctx context.Context, groupID uuid.UUID, index int) (domain.Group, error) {
	return s.mutate(ctx, "service.GroupService.RemoveMember", groupID, func(g *domain.Group) error {
		if err := checkIndex(g, index); err != nil {
			return err
		}
		g.Members = append(g.Members[:index], g.Members[index+1:]...)
		return nil
	})
}

// Delete discards a group and its members.
func (s *GroupService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.groups.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.GroupService.Delete: %w", err)
	}
	slog.InfoContext(ctx, "group deleted", "group_id", id)
	return nil
}

// Summary recomputes the group's preference summary from its current members.
func (s *GroupService) Summary(ctx context.Context, id uuid.UUID) (domain.GroupSummary, error) {
	g, err := s.groups.GetByID(ctx, id)
	if err != nil {
		return domain.GroupSummary{}, fmt.Errorf("service.GroupService.Summary: %w", err)
	}
	return fit.Aggregate(g.Members), nil
}

// mutate loads a group, applies fn and stores the result.
func (s *GroupService) mutate(ctx context.Context, op string, id uuid.UUID, fn func(*domain.Group) error) (domain.Group, error) {
	g, err := s.groups.GetByID(ctx, id)
	if err != nil {
		return domain.Group{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := fn(&g); err != nil {
		return domain.Group{}, fmt.Errorf("%s: %w", op, err)
	}
	updated, err := s.groups.Update(ctx, g)
	if err != nil {
		return domain.Group{}, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

func checkIndex(g *domain.Group, index int) error {
	if index < 0 || index >= len(g.Members) {
		return fmt.Errorf("%w: member index %d out of range (group has %d members)", domain.ErrValidation, index, len(g.Members))
	}
	return nil
}
