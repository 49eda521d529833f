package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/johndoe/me-api/internal/domain/experience"
	"github.com/johndoe/me-api/internal/domain/profile"
	"github.com/johndoe/me-api/internal/domain/project"
	"github.com/johndoe/me-api/internal/domain/search"
	"github.com/johndoe/me-api/internal/domain/skill"
	"github.com/johndoe/me-api/pkg/apperror"
	"github.com/johndoe/me-api/pkg/logger"
)

type postgresSearchRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSearchRepo(db *pgxpool.Pool, logger logger.Logger) search.Repository {
	return &postgresSearchRepo{db: db, logger: logger}
}

// pattern wraps the term for ILIKE substring matching. The term itself is a
// bind parameter, never interpolated.
func pattern(term string) string {
	return "%" + term + "%"
}

func (r *postgresSearchRepo) SearchProfiles(ctx context.Context, term string) ([]profile.Profile, error) {
	query := `
		SELECT id, name, email, education, github, linkedin, portfolio, created_at, updated_at
		FROM profile
		WHERE name ILIKE $1 OR email ILIKE $1 OR education ILIKE $1
	`
	rows, err := r.db.Query(ctx, query, pattern(term))
	if err != nil {
		return nil, apperror.NewInternal("failed to search profiles", err)
	}
	defer rows.Close()

	profiles := make([]profile.Profile, 0)
	for rows.Next() {
		var p profile.Profile
		err := rows.Scan(
			&p.ID, &p.Name, &p.Email, &p.Education,
			&p.Github, &p.Linkedin, &p.Portfolio,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan profile row", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating profile rows", err)
	}
	return profiles, nil
}

func (r *postgresSearchRepo) SearchSkills(ctx context.Context, term, category string) ([]skill.Skill, error) {
	builder := psql.Select(skillColumns).
		From("skills").
		Where(sq.Or{
			sq.ILike{"name": pattern(term)},
			sq.ILike{"category": pattern(term)},
		})
	if category != "" {
		builder = builder.Where(sq.Eq{"category": category})
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build skill search query", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to search skills", err)
	}
	return scanSkills(rows)
}

func (r *postgresSearchRepo) SearchProjects(ctx context.Context, term string) ([]project.Project, error) {
	query := `
		SELECT id, title, description, github_link, live_link, created_at, updated_at
		FROM projects
		WHERE title ILIKE $1 OR description ILIKE $1
	`
	rows, err := r.db.Query(ctx, query, pattern(term))
	if err != nil {
		return nil, apperror.NewInternal("failed to search projects", err)
	}
	defer rows.Close()

	projects := make([]project.Project, 0)
	for rows.Next() {
		var p project.Project
		err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.GithubLink, &p.LiveLink,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan project row", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresSearchRepo) SearchExperiences(ctx context.Context, term string) ([]experience.WorkExperience, error) {
	query := `
		SELECT ` + experienceColumns + `
		FROM work_experience
		WHERE company ILIKE $1 OR position ILIKE $1 OR description ILIKE $1
	`
	rows, err := r.db.Query(ctx, query, pattern(term))
	if err != nil {
		return nil, apperror.NewInternal("failed to search work experience", err)
	}
	defer rows.Close()

	entries := make([]experience.WorkExperience, 0)
	for rows.Next() {
		w, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating work experience rows", err)
	}
	return entries, nil
}
