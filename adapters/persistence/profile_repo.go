package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/johndoe/me-api/internal/domain/profile"
	"github.com/johndoe/me-api/pkg/apperror"
	"github.com/johndoe/me-api/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func (r *postgresProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	query := `
		SELECT id, name, email, education, github, linkedin, portfolio, created_at, updated_at
		FROM profile
		LIMIT 1
	`
	p := &profile.Profile{}
	err := r.db.QueryRow(ctx, query).Scan(
		&p.ID, &p.Name, &p.Email, &p.Education,
		&p.Github, &p.Linkedin, &p.Portfolio,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "")
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) Create(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profile (name, email, education, github, linkedin, portfolio)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		p.Name, p.Email, p.Education, p.Github, p.Linkedin, p.Portfolio,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewConflict("profile", "email", p.Email)
		}
		return apperror.NewInternal("failed to create profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) Update(ctx context.Context, p *profile.Profile) error {
	query := `
		UPDATE profile
		SET name = $2, email = $3, education = $4, github = $5, linkedin = $6,
		    portfolio = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query,
		p.ID, p.Name, p.Email, p.Education, p.Github, p.Linkedin, p.Portfolio,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NewNotFound("profile", "")
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewConflict("profile", "email", p.Email)
		}
		return apperror.NewInternal("failed to update profile", err)
	}
	return nil
}
