package search

import (
	"context"

	"github.com/johndoe/me-api/internal/domain/experience"
	"github.com/johndoe/me-api/internal/domain/profile"
	"github.com/johndoe/me-api/internal/domain/project"
	"github.com/johndoe/me-api/internal/domain/skill"
)

// Source tags carried in each result and accepted by the type filter.
const (
	TypeProfile = "profile"
	TypeSkill   = "skill"
	TypeProject = "project"
	TypeWork    = "work"
)

func ValidType(t string) bool {
	switch t {
	case TypeProfile, TypeSkill, TypeProject, TypeWork:
		return true
	}
	return false
}

// Result is the uniform projection every source is mapped into. Category is
// a pointer so a skill without one serializes as null, not "".
type Result struct {
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    *string `json:"category"`
	ID          int64   `json:"id"`
}

// Repository fans a case-insensitive substring term out to the four entity
// tables. Each call is an independent read; there is no snapshot guarantee
// across them.
type Repository interface {
	SearchProfiles(ctx context.Context, term string) ([]profile.Profile, error)
	// SearchSkills optionally restricts matches to an exact category.
	SearchSkills(ctx context.Context, term, category string) ([]skill.Skill, error)
	SearchProjects(ctx context.Context, term string) ([]project.Project, error)
	SearchExperiences(ctx context.Context, term string) ([]experience.WorkExperience, error)
}
