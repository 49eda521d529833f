package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/johndoe/me-api/internal/domain/skill"
	"github.com/johndoe/me-api/pkg/apperror"
	"github.com/johndoe/me-api/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const skillColumns = "id, name, proficiency, category, created_at"

type postgresSkillRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSkillRepo(db *pgxpool.Pool, logger logger.Logger) skill.Repository {
	return &postgresSkillRepo{db: db, logger: logger}
}

func scanSkill(row pgx.Row) (*skill.Skill, error) {
	s := &skill.Skill{}
	err := row.Scan(&s.ID, &s.Name, &s.Proficiency, &s.Category, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("skill", "")
		}
		return nil, apperror.NewInternal("failed to scan skill row", err)
	}
	return s, nil
}

func scanSkills(rows pgx.Rows) ([]skill.Skill, error) {
	defer rows.Close()
	skills := make([]skill.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill rows", err)
	}
	return skills, nil
}

func (r *postgresSkillRepo) List(ctx context.Context) ([]skill.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills ORDER BY proficiency DESC, name ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills", err)
	}
	return scanSkills(rows)
}

func (r *postgresSkillRepo) Top(ctx context.Context, limit int, category string) ([]skill.Skill, error) {
	builder := psql.Select(skillColumns).
		From("skills").
		Where(sq.GtOrEq{"proficiency": 4}).
		OrderBy("proficiency DESC", "name ASC").
		Limit(uint64(limit))
	if category != "" {
		builder = builder.Where(sq.Eq{"category": category})
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build top skills query", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query top skills", err)
	}
	return scanSkills(rows)
}

func (r *postgresSkillRepo) Categories(ctx context.Context) ([]skill.CategoryCount, error) {
	query := `
		SELECT category, COUNT(*) AS skill_count
		FROM skills
		WHERE category IS NOT NULL
		GROUP BY category
		ORDER BY skill_count DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skill categories", err)
	}
	defer rows.Close()

	categories := make([]skill.CategoryCount, 0)
	for rows.Next() {
		var c skill.CategoryCount
		if err := rows.Scan(&c.Category, &c.SkillCount); err != nil {
			return nil, apperror.NewInternal("failed to scan category row", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating category rows", err)
	}
	return categories, nil
}

func (r *postgresSkillRepo) FindByID(ctx context.Context, id int64) (*skill.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1`
	return scanSkill(r.db.QueryRow(ctx, query, id))
}

func (r *postgresSkillRepo) FindByName(ctx context.Context, name string) (*skill.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE name = $1`
	return scanSkill(r.db.QueryRow(ctx, query, name))
}

func (r *postgresSkillRepo) FindIDsByNames(ctx context.Context, names []string) ([]int64, error) {
	if len(names) == 0 {
		return []int64{}, nil
	}
	query := `SELECT id FROM skills WHERE name = ANY($1)`
	rows, err := r.db.Query(ctx, query, names)
	if err != nil {
		return nil, apperror.NewInternal("failed to resolve skill names", err)
	}
	defer rows.Close()

	ids := make([]int64, 0, len(names))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, apperror.NewInternal("failed to scan skill id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill ids", err)
	}
	return ids, nil
}

func (r *postgresSkillRepo) Create(ctx context.Context, s *skill.Skill) error {
	query := `
		INSERT INTO skills (name, proficiency, category)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, s.Name, s.Proficiency, s.Category).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewConflict("skill", "name", s.Name)
		}
		return apperror.NewInternal("failed to create skill", err)
	}
	return nil
}

func (r *postgresSkillRepo) Update(ctx context.Context, s *skill.Skill) error {
	query := `UPDATE skills SET name = $2, proficiency = $3, category = $4 WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, s.ID, s.Name, s.Proficiency, s.Category)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewConflict("skill", "name", s.Name)
		}
		return apperror.NewInternal("failed to update skill", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill", formatID(s.ID))
	}
	return nil
}

func (r *postgresSkillRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete skill", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill", formatID(id))
	}
	return nil
}
