package persistence

import (
	"context"
	"errors"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/johndoe/me-api/internal/domain/project"
	"github.com/johndoe/me-api/pkg/apperror"
	"github.com/johndoe/me-api/pkg/logger"
)

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

// Projects are always read with their skill names aggregated through
// project_skills, so a single scan yields the full API shape.
const projectSelect = "p.id, p.title, p.description, p.github_link, p.live_link, p.created_at, p.updated_at, STRING_AGG(s.name, ',') AS skills"

func scanProjectRow(row pgx.Row) (*project.Project, error) {
	p := &project.Project{}
	var skills *string

	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.GithubLink, &p.LiveLink,
		&p.CreatedAt, &p.UpdatedAt, &skills,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("project", "")
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}

	p.Skills = []string{}
	if skills != nil && *skills != "" {
		for _, name := range strings.Split(*skills, ",") {
			p.Skills = append(p.Skills, strings.TrimSpace(name))
		}
	}
	return p, nil
}

func (r *postgresProjectRepo) List(ctx context.Context, skillFilter string) ([]project.Project, error) {
	builder := psql.Select(projectSelect).
		From("projects p").
		LeftJoin("project_skills ps ON p.id = ps.project_id").
		LeftJoin("skills s ON ps.skill_id = s.id").
		GroupBy("p.id").
		OrderBy("p.created_at DESC")
	if skillFilter != "" {
		builder = builder.Where(sq.Like{"s.name": "%" + skillFilter + "%"})
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build project list query", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}
	defer rows.Close()

	projects := make([]project.Project, 0)
	for rows.Next() {
		p, err := scanProjectRow(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresProjectRepo) FindByID(ctx context.Context, id int64) (*project.Project, error) {
	query := `
		SELECT ` + projectSelect + `
		FROM projects p
		LEFT JOIN project_skills ps ON p.id = ps.project_id
		LEFT JOIN skills s ON ps.skill_id = s.id
		WHERE p.id = $1
		GROUP BY p.id
	`
	p, err := scanProjectRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("project", formatID(id))
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresProjectRepo) Create(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (title, description, github_link, live_link)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, p.Title, p.Description, p.GithubLink, p.LiveLink).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return apperror.NewInternal("failed to create project", err)
	}
	return nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects
		SET title = $2, description = $3, github_link = $4, live_link = $5,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, p.ID, p.Title, p.Description, p.GithubLink, p.LiveLink)
	if err != nil {
		return apperror.NewInternal("failed to update project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", formatID(p.ID))
	}
	return nil
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", formatID(id))
	}
	return nil
}

// ReplaceSkills swaps the association set in a single transaction, so a crash
// cannot leave the project stripped of its old skills with no new ones.
func (r *postgresProjectRepo) ReplaceSkills(ctx context.Context, projectID int64, skillIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.NewInternal("failed to begin skill replacement", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM project_skills WHERE project_id = $1`, projectID); err != nil {
		return apperror.NewInternal("failed to delete old skill links", err)
	}

	for _, skillID := range skillIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO project_skills (project_id, skill_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			projectID, skillID,
		)
		if err != nil {
			return apperror.NewInternal("failed to insert skill link", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit skill replacement", err)
	}
	return nil
}
