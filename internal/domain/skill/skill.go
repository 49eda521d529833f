package skill

import (
	"context"
	"time"
)

const (
	MinProficiency = 1
	MaxProficiency = 5
)

type Skill struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Proficiency int       `json:"proficiency"`
	Category    *string   `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryCount is one row of the categories aggregation.
type CategoryCount struct {
	Category   string `json:"category"`
	SkillCount int64  `json:"skill_count"`
}

// ProficiencyLabel maps the 1-5 scale to the human-readable tier shown in
// search results.
func ProficiencyLabel(p int) string {
	switch p {
	case 5:
		return "Expert level"
	case 4:
		return "Advanced level"
	case 3:
		return "Intermediate level"
	case 2:
		return "Beginner level"
	default:
		return "Basic level"
	}
}

type Repository interface {
	List(ctx context.Context) ([]Skill, error)
	// Top lists skills with proficiency >= 4, optionally within a category.
	Top(ctx context.Context, limit int, category string) ([]Skill, error)
	Categories(ctx context.Context) ([]CategoryCount, error)
	FindByID(ctx context.Context, id int64) (*Skill, error)
	FindByName(ctx context.Context, name string) (*Skill, error)
	// FindIDsByNames resolves skill names to IDs, silently dropping unknown names.
	FindIDsByNames(ctx context.Context, names []string) ([]int64, error)
	Create(ctx context.Context, s *Skill) error
	Update(ctx context.Context, s *Skill) error
	Delete(ctx context.Context, id int64) error
}
