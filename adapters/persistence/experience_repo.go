package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/johndoe/me-api/internal/domain/experience"
	"github.com/johndoe/me-api/pkg/apperror"
	"github.com/johndoe/me-api/pkg/logger"
)

const experienceColumns = "id, company, position, description, start_date, end_date, current, created_at"

type postgresExperienceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresExperienceRepo(db *pgxpool.Pool, logger logger.Logger) experience.Repository {
	return &postgresExperienceRepo{db: db, logger: logger}
}

func scanExperience(row pgx.Row) (*experience.WorkExperience, error) {
	w := &experience.WorkExperience{}
	err := row.Scan(
		&w.ID, &w.Company, &w.Position, &w.Description,
		&w.StartDate, &w.EndDate, &w.Current, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("work experience", "")
		}
		return nil, apperror.NewInternal("failed to scan work experience row", err)
	}
	return w, nil
}

func (r *postgresExperienceRepo) List(ctx context.Context) ([]experience.WorkExperience, error) {
	query := `
		SELECT ` + experienceColumns + `
		FROM work_experience
		ORDER BY start_date DESC NULLS LAST, created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewInternal("failed to query work experience", err)
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

func (r *postgresExperienceRepo) FindByID(ctx context.Context, id int64) (*experience.WorkExperience, error) {
	query := `SELECT ` + experienceColumns + ` FROM work_experience WHERE id = $1`
	w, err := scanExperience(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("work experience", formatID(id))
		}
		return nil, err
	}
	return w, nil
}

func (r *postgresExperienceRepo) Create(ctx context.Context, w *experience.WorkExperience) error {
	query := `
		INSERT INTO work_experience (company, position, description, start_date, end_date, current)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		w.Company, w.Position, w.Description, w.StartDate, w.EndDate, w.Current,
	).Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		return apperror.NewInternal("failed to create work experience", err)
	}
	return nil
}

func (r *postgresExperienceRepo) Update(ctx context.Context, w *experience.WorkExperience) error {
	query := `
		UPDATE work_experience
		SET company = $2, position = $3, description = $4, start_date = $5,
		    end_date = $6, current = $7
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		w.ID, w.Company, w.Position, w.Description, w.StartDate, w.EndDate, w.Current,
	)
	if err != nil {
		return apperror.NewInternal("failed to update work experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("work experience", formatID(w.ID))
	}
	return nil
}

func (r *postgresExperienceRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM work_experience WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete work experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("work experience", formatID(id))
	}
	return nil
}
