package repository

import (
	"context"
	"errors"
	"time"

	"skill-matrix/internal/database"
	dbpostgres "skill-matrix/internal/database/postgres"
	"skill-matrix/internal/domain/skillentry"

	"github.com/google/uuid"
)

var (
	ErrSkillEntryNotFound = errors.New("skill entry not found")
	ErrSkillEntryConflict = errors.New("skill entry already exists")
)

// MatrixRow is one (skill, user) cell of the skills matrix.
type MatrixRow struct {
	SkillID             uuid.UUID
	UserID              uuid.UUID
	Email               string
	Proficiency         skillentry.Proficiency
	UsedInLastSixMonths bool
	LastModified        time.Time
}

type SkillEntryRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]skillentry.SkillEntry, error)
	FindByUserAndSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) (skillentry.SkillEntry, error)
	Create(ctx context.Context, e skillentry.SkillEntry) (skillentry.SkillEntry, error)
	Update(ctx context.Context, e skillentry.SkillEntry) (skillentry.SkillEntry, error)
	ListMatrix(ctx context.Context) ([]MatrixRow, error)
}

type PostgresSkillEntryRepository struct {
	db database.DB
}

func NewPostgresSkillEntryRepository(db database.DB) *PostgresSkillEntryRepository {
	return &PostgresSkillEntryRepository{db: db}
}

const skillEntryColumns = `id, user_id, skill_id, proficiency, used_in_last_six_months, last_modified`

func (r *PostgresSkillEntryRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]skillentry.SkillEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+skillEntryColumns+`
		 FROM skills_skill_entries
		 WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skillentry.SkillEntry, 0)
	for rows.Next() {
		e, err := scanSkillEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillEntryRepository) FindByUserAndSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) (skillentry.SkillEntry, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+skillEntryColumns+`
		 FROM skills_skill_entries
		 WHERE user_id = $1 AND skill_id = $2`,
		userID, skillID,
	)
	e, err := scanSkillEntry(row)
	if err != nil {
		if dbpostgres.IsNoRows(err) {
			return skillentry.SkillEntry{}, ErrSkillEntryNotFound
		}
		return skillentry.SkillEntry{}, err
	}
	return e, nil
}

func (r *PostgresSkillEntryRepository) Create(ctx context.Context, e skillentry.SkillEntry) (skillentry.SkillEntry, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO skills_skill_entries (id, user_id, skill_id, proficiency, used_in_last_six_months, last_modified)
		 VALUES ($1, $2, $3, $4, $5, now())
		 RETURNING `+skillEntryColumns,
		e.ID, e.UserID, e.SkillID, int16(e.Proficiency), e.UsedInLastSixMonths,
	)
	created, err := scanSkillEntry(row)
	if err != nil {
		switch {
		case dbpostgres.IsUniqueViolation(err):
			return skillentry.SkillEntry{}, ErrSkillEntryConflict
		case dbpostgres.IsForeignKeyViolation(err):
			return skillentry.SkillEntry{}, ErrSkillNotFound
		default:
			return skillentry.SkillEntry{}, err
		}
	}
	return created, nil
}

func (r *PostgresSkillEntryRepository) Update(ctx context.Context, e skillentry.SkillEntry) (skillentry.SkillEntry, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE skills_skill_entries
		 SET proficiency = $1, used_in_last_six_months = $2, last_modified = now()
		 WHERE id = $3 AND user_id = $4
		 RETURNING `+skillEntryColumns,
		int16(e.Proficiency), e.UsedInLastSixMonths, e.ID, e.UserID,
	)
	updated, err := scanSkillEntry(row)
	if err != nil {
		if dbpostgres.IsNoRows(err) {
			return skillentry.SkillEntry{}, ErrSkillEntryNotFound
		}
		return skillentry.SkillEntry{}, err
	}
	return updated, nil
}

func (r *PostgresSkillEntryRepository) ListMatrix(ctx context.Context) ([]MatrixRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT e.skill_id, e.user_id, u.email, e.proficiency, e.used_in_last_six_months, e.last_modified
		 FROM skills_skill_entries e
		 JOIN users u ON u.id = e.user_id
		 ORDER BY u.email ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MatrixRow, 0)
	for rows.Next() {
		var m MatrixRow
		var p int16
		if err := rows.Scan(&m.SkillID, &m.UserID, &m.Email, &p, &m.UsedInLastSixMonths, &m.LastModified); err != nil {
			return nil, err
		}
		m.Proficiency = skillentry.Proficiency(p)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanSkillEntry(row database.Row) (skillentry.SkillEntry, error) {
	var e skillentry.SkillEntry
	var p int16
	if err := row.Scan(&e.ID, &e.UserID, &e.SkillID, &p, &e.UsedInLastSixMonths, &e.LastModified); err != nil {
		return skillentry.SkillEntry{}, err
	}
	e.Proficiency = skillentry.Proficiency(p)
	return e, nil
}
