package repository

import (
	"context"
	"errors"

	"skill-matrix/internal/database"
	dbpostgres "skill-matrix/internal/database/postgres"
	"skill-matrix/internal/domain/catalogue"

	"github.com/google/uuid"
)

var (
	ErrSkillNotFound         = errors.New("skill not found")
	ErrSkillConflict         = errors.New("skill already exists in category")
	ErrSkillCategoryNotFound = errors.New("skill category not found")
	ErrSkillInUse            = errors.New("skill in use")
)

type SkillRepository interface {
	GetAllSkills(ctx context.Context) ([]catalogue.Skill, error)
	GetSkill(ctx context.Context, id uuid.UUID) (catalogue.Skill, error)
	SkillExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	CreateSkill(ctx context.Context, s catalogue.Skill) (catalogue.Skill, error)
	UpdateSkill(ctx context.Context, s catalogue.Skill) (catalogue.Skill, error)
	DeleteSkill(ctx context.Context, id uuid.UUID) error
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

const skillColumns = `id, name, category_id, created_at`

func (r *PostgresSkillRepository) GetAllSkills(ctx context.Context) ([]catalogue.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT `+skillColumns+` FROM skills_skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalogue.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) GetSkill(ctx context.Context, id uuid.UUID) (catalogue.Skill, error) {
	row := r.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills_skills WHERE id = $1`, id)
	s, err := scanSkill(row)
	if err != nil {
		if dbpostgres.IsNoRows(err) {
			return catalogue.Skill{}, ErrSkillNotFound
		}
		return catalogue.Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) SkillExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM skills_skills WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresSkillRepository) CreateSkill(ctx context.Context, s catalogue.Skill) (catalogue.Skill, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO skills_skills (id, name, category_id)
		 VALUES ($1, $2, $3)
		 RETURNING `+skillColumns,
		s.ID, s.Name, s.CategoryID,
	)
	created, err := scanSkill(row)
	if err != nil {
		return catalogue.Skill{}, mapSkillWriteError(err)
	}
	return created, nil
}

func (r *PostgresSkillRepository) UpdateSkill(ctx context.Context, s catalogue.Skill) (catalogue.Skill, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE skills_skills
		 SET name = $1, category_id = $2
		 WHERE id = $3
		 RETURNING `+skillColumns,
		s.Name, s.CategoryID, s.ID,
	)
	updated, err := scanSkill(row)
	if err != nil {
		if dbpostgres.IsNoRows(err) {
			return catalogue.Skill{}, ErrSkillNotFound
		}
		return catalogue.Skill{}, mapSkillWriteError(err)
	}
	return updated, nil
}

func (r *PostgresSkillRepository) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM skills_skills WHERE id = $1`, id)
	if err != nil {
		if dbpostgres.IsForeignKeyViolation(err) {
			return ErrSkillInUse
		}
		return err
	}
	if affected == 0 {
		return ErrSkillNotFound
	}
	return nil
}

func scanSkill(row database.Row) (catalogue.Skill, error) {
	var s catalogue.Skill
	if err := row.Scan(&s.ID, &s.Name, &s.CategoryID, &s.CreatedAt); err != nil {
		return catalogue.Skill{}, err
	}
	return s, nil
}

func mapSkillWriteError(err error) error {
	switch {
	case dbpostgres.IsUniqueViolation(err):
		return ErrSkillConflict
	case dbpostgres.IsForeignKeyViolation(err):
		return ErrSkillCategoryNotFound
	default:
		return err
	}
}
