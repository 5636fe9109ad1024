package repository

import (
	"context"
	"errors"

	"skill-matrix/internal/database"
	dbpostgres "skill-matrix/internal/database/postgres"
	"skill-matrix/internal/domain/organisation"

	"github.com/google/uuid"
)

var ErrOrganisationItemConflict = errors.New("organisation item already exists")

type OrganisationRepository interface {
	List(ctx context.Context, kind organisation.Kind) ([]organisation.Item, error)
	Create(ctx context.Context, kind organisation.Kind, name string) (organisation.Item, error)
	Exists(ctx context.Context, kind organisation.Kind, id uuid.UUID) (bool, error)
}

type PostgresOrganisationRepository struct {
	db database.DB
}

func NewPostgresOrganisationRepository(db database.DB) *PostgresOrganisationRepository {
	return &PostgresOrganisationRepository{db: db}
}

// Table names come from organisation.Kind, never from user input.

func (r *PostgresOrganisationRepository) List(ctx context.Context, kind organisation.Kind) ([]organisation.Item, error) {
	if kind.Table() == "" {
		return nil, organisation.ErrUnknownKind
	}
	rows, err := r.db.Query(ctx, `SELECT id, name FROM `+kind.Table()+` ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]organisation.Item, 0)
	for rows.Next() {
		var it organisation.Item
		if err := rows.Scan(&it.ID, &it.Name); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresOrganisationRepository) Create(ctx context.Context, kind organisation.Kind, name string) (organisation.Item, error) {
	if kind.Table() == "" {
		return organisation.Item{}, organisation.ErrUnknownKind
	}
	id := uuid.New()
	_, err := r.db.Exec(ctx, `INSERT INTO `+kind.Table()+` (id, name) VALUES ($1, $2)`, id, name)
	if err != nil {
		if dbpostgres.IsUniqueViolation(err) {
			return organisation.Item{}, ErrOrganisationItemConflict
		}
		return organisation.Item{}, err
	}
	return organisation.Item{ID: id, Name: name}, nil
}

func (r *PostgresOrganisationRepository) Exists(ctx context.Context, kind organisation.Kind, id uuid.UUID) (bool, error) {
	if kind.Table() == "" {
		return false, organisation.ErrUnknownKind
	}
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM `+kind.Table()+` WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
