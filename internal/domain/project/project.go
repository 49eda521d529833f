package project

import (
	"context"
	"time"
)

type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	GithubLink  *string   `json:"github_link"`
	LiveLink    *string   `json:"live_link"`
	// Skills holds the names of associated skills, joined through the
	// project_skills table. Order-insignificant.
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Repository interface {
	// List returns projects newest-first with their skill names aggregated.
	// A non-empty skillFilter keeps only projects with an associated skill
	// whose name contains the substring.
	List(ctx context.Context, skillFilter string) ([]Project, error)
	FindByID(ctx context.Context, id int64) (*Project, error)
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	// Delete removes the project; association rows go with it (cascade).
	Delete(ctx context.Context, id int64) error
	// ReplaceSkills swaps the full association set for the project in one
	// transaction.
	ReplaceSkills(ctx context.Context, projectID int64, skillIDs []int64) error
}
