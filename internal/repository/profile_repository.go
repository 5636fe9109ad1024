package repository

import (
	"context"
	"errors"

	"skill-matrix/internal/database"
	dbpostgres "skill-matrix/internal/database/postgres"
	"skill-matrix/internal/domain/user"

	"github.com/google/uuid"
)

var ErrProfileReference = errors.New("profile references unknown organisation item")

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const profileColumns = `id, user_id, gender_id, grade_id, profession_id, unit_id,
	years_as_analyst, years_at_current_grade, created_at, updated_at`

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM users_profiles WHERE user_id = $1`, userID)
	p, err := scanProfile(row)
	if err != nil {
		if dbpostgres.IsNoRows(err) {
			return user.Profile{}, user.ErrProfileNotFound
		}
		return user.Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, p user.Profile) (user.Profile, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO users_profiles (id, user_id, gender_id, grade_id, profession_id, unit_id, years_as_analyst, years_at_current_grade)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id) DO UPDATE SET
			gender_id = EXCLUDED.gender_id,
			grade_id = EXCLUDED.grade_id,
			profession_id = EXCLUDED.profession_id,
			unit_id = EXCLUDED.unit_id,
			years_as_analyst = EXCLUDED.years_as_analyst,
			years_at_current_grade = EXCLUDED.years_at_current_grade,
			updated_at = now()
		 RETURNING `+profileColumns,
		p.ID, p.UserID, p.GenderID, p.GradeID, p.ProfessionID, p.UnitID,
		int16(p.YearsAsAnalyst), int16(p.YearsAtCurrentGrade),
	)
	saved, err := scanProfile(row)
	if err != nil {
		if dbpostgres.IsForeignKeyViolation(err) {
			return user.Profile{}, ErrProfileReference
		}
		return user.Profile{}, err
	}
	return saved, nil
}

func scanProfile(row database.Row) (user.Profile, error) {
	var p user.Profile
	var yearsAnalyst, yearsGrade int16
	if err := row.Scan(
		&p.ID, &p.UserID, &p.GenderID, &p.GradeID, &p.ProfessionID, &p.UnitID,
		&yearsAnalyst, &yearsGrade, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return user.Profile{}, err
	}
	p.YearsAsAnalyst = int(yearsAnalyst)
	p.YearsAtCurrentGrade = int(yearsGrade)
	return p, nil
}
