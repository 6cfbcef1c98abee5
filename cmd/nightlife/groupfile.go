package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/nightlife-navigator/internal/domain"
)

// groupFile is the YAML layout of a group passed with -group.
//
//	name: Friday Crew
//	members:
//	  - {name: You, max_cover: 20, max_wait_minutes: 30, vibe: 55}
//	  - {name: Jordan}   # slider defaults
type groupFile struct {
	Name    string        `yaml:"name"`
	Members []memberEntry `yaml:"members"`
}

// memberEntry uses pointers so omitted sliders can take their defaults.
type memberEntry struct {
	Name           string   `yaml:"name"`
	MaxCover       *float64 `yaml:"max_cover"`
	MaxWaitMinutes *float64 `yaml:"max_wait_minutes"`
	Vibe           *float64 `yaml:"vibe"`
}

func (e memberEntry) preference() domain.MemberPreference {
	m := domain.NewMember(e.Name)
	if e.MaxCover != nil {
		m.MaxCover = *e.MaxCover
	}
	if e.MaxWaitMinutes != nil {
		m.MaxWaitMinutes = *e.MaxWaitMinutes
	}
	if e.Vibe != nil {
		m.Vibe = *e.Vibe
	}
	return m
}

// loadGroupFile reads a group definition. Range checks are left to the
// group service.
func loadGroupFile(path string) (string, []domain.MemberPreference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read group file: %w", err)
	}
	var f groupFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return "", nil, fmt.Errorf("decode group file %s: %w", path, err)
	}
	members := make([]domain.MemberPreference, len(f.Members))
	for i, e := range f.Members {
		members[i] = e.preference()
	}
	return f.Name, members, nil
}
