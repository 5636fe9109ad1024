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
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryConflict = errors.New("category already exists")
	ErrCategoryInUse    = errors.New("category in use")
)

// hierarchyLockKey serialises parent-link writes across transactions.
const hierarchyLockKey int64 = 582031668

// ParentGuard inspects the committed categories before a parent link is
// written. Returning an error aborts the write.
type ParentGuard func(existing []catalogue.Category) error

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]catalogue.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (catalogue.Category, error)
	CreateCategory(ctx context.Context, c catalogue.Category, guard ParentGuard) (catalogue.Category, error)
	UpdateCategory(ctx context.Context, c catalogue.Category, guard ParentGuard) (catalogue.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type PostgresCategoryRepository struct {
	db database.DB
}

func NewPostgresCategoryRepository(db database.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

const categoryColumns = `id, name, parent_id, created_at`

func (r *PostgresCategoryRepository) ListCategories(ctx context.Context) ([]catalogue.Category, error) {
	return listCategories(ctx, r.db)
}

func (r *PostgresCategoryRepository) GetCategory(ctx context.Context, id uuid.UUID) (catalogue.Category, error) {
	row := r.db.QueryRow(ctx, `SELECT `+categoryColumns+` FROM skills_categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if err != nil {
		if dbpostgres.IsNoRows(err) {
			return catalogue.Category{}, ErrCategoryNotFound
		}
		return catalogue.Category{}, err
	}
	return c, nil
}

func (r *PostgresCategoryRepository) CreateCategory(ctx context.Context, c catalogue.Category, guard ParentGuard) (catalogue.Category, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	var created catalogue.Category
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		if err := runGuard(ctx, tx, guard); err != nil {
			return err
		}
		row := tx.QueryRow(ctx,
			`INSERT INTO skills_categories (id, name, parent_id)
			 VALUES ($1, $2, $3)
			 RETURNING `+categoryColumns,
			c.ID, c.Name, nullableUUID(c.ParentID),
		)
		var err error
		created, err = scanCategory(row)
		return err
	})
	if err != nil {
		return catalogue.Category{}, mapCategoryWriteError(err)
	}
	return created, nil
}

func (r *PostgresCategoryRepository) UpdateCategory(ctx context.Context, c catalogue.Category, guard ParentGuard) (catalogue.Category, error) {
	var updated catalogue.Category
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		if err := runGuard(ctx, tx, guard); err != nil {
			return err
		}
		row := tx.QueryRow(ctx,
			`UPDATE skills_categories
			 SET name = $1, parent_id = $2
			 WHERE id = $3
			 RETURNING `+categoryColumns,
			c.Name, nullableUUID(c.ParentID), c.ID,
		)
		var err error
		updated, err = scanCategory(row)
		if dbpostgres.IsNoRows(err) {
			return ErrCategoryNotFound
		}
		return err
	})
	if err != nil {
		return catalogue.Category{}, mapCategoryWriteError(err)
	}
	return updated, nil
}

func (r *PostgresCategoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM skills_categories WHERE id = $1`, id)
	if err != nil {
		if dbpostgres.IsForeignKeyViolation(err) {
			return ErrCategoryInUse
		}
		return err
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func runGuard(ctx context.Context, q database.Querier, guard ParentGuard) error {
	if guard == nil {
		return nil
	}
	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, hierarchyLockKey); err != nil {
		return err
	}
	existing, err := listCategories(ctx, q)
	if err != nil {
		return err
	}
	return guard(existing)
}

func listCategories(ctx context.Context, q database.Querier) ([]catalogue.Category, error) {
	rows, err := q.Query(ctx, `SELECT `+categoryColumns+` FROM skills_categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalogue.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanCategory(row database.Row) (catalogue.Category, error) {
	var c catalogue.Category
	var parent uuid.NullUUID
	if err := row.Scan(&c.ID, &c.Name, &parent, &c.CreatedAt); err != nil {
		return catalogue.Category{}, err
	}
	if parent.Valid {
		pid := parent.UUID
		c.ParentID = &pid
	}
	return c, nil
}

func mapCategoryWriteError(err error) error {
	switch {
	case dbpostgres.IsUniqueViolation(err):
		return ErrCategoryConflict
	case dbpostgres.IsForeignKeyViolation(err):
		return ErrCategoryNotFound
	default:
		return err
	}
}

func nullableUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
