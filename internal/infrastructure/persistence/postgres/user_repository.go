package postgres

import (
	"context"
	"database/sql"
	"errors"

	"skill-matrix/internal/database"
	"skill-matrix/internal/domain/user"

	"github.com/google/uuid"
)

// UserRepository keeps prepared statements on the pool's database/sql view.
type UserRepository struct {
	stmtCreate        *sql.Stmt
	stmtUpdate        *sql.Stmt
	stmtGetByID       *sql.Stmt
	stmtGetByEmail    *sql.Stmt
	stmtExistsByEmail *sql.Stmt
	stmtList          *sql.Stmt
}

const userColumns = `id, email, password_hash, is_staff, created_at, updated_at`

func NewUserRepository(ctx context.Context, db database.DB) (*UserRepository, error) {
	if db == nil || db.SQLDB() == nil {
		return nil, database.ErrNilDB
	}
	sqldb := db.SQLDB()
	r := &UserRepository{}

	prepare := func(dst **sql.Stmt, query string) error {
		s, err := sqldb.PrepareContext(ctx, query)
		if err != nil {
			return err
		}
		*dst = s
		return nil
	}

	steps := []struct {
		dst   **sql.Stmt
		query string
	}{
		{&r.stmtCreate, `INSERT INTO users (id, email, password_hash, is_staff) VALUES ($1, $2, $3, $4)`},
		{&r.stmtUpdate, `UPDATE users SET email = $1, password_hash = $2, is_staff = $3, updated_at = now() WHERE id = $4`},
		{&r.stmtGetByID, `SELECT ` + userColumns + ` FROM users WHERE id = $1`},
		{&r.stmtGetByEmail, `SELECT ` + userColumns + ` FROM users WHERE email = $1`},
		{&r.stmtExistsByEmail, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`},
		{&r.stmtList, `SELECT ` + userColumns + ` FROM users ORDER BY email ASC`},
	}
	for _, s := range steps {
		if err := prepare(s.dst, s.query); err != nil {
			_ = r.Close()
			return nil, err
		}
	}

	return r, nil
}

func (r *UserRepository) Close() error {
	var firstErr error
	closeStmt := func(s *sql.Stmt) {
		if s == nil {
			return
		}
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	closeStmt(r.stmtCreate)
	closeStmt(r.stmtUpdate)
	closeStmt(r.stmtGetByID)
	closeStmt(r.stmtGetByEmail)
	closeStmt(r.stmtExistsByEmail)
	closeStmt(r.stmtList)

	return firstErr
}

func (r *UserRepository) CreateUser(ctx context.Context, u user.User) error {
	_, err := r.stmtCreate.ExecContext(ctx, u.ID, u.Email, u.PasswordHash, u.IsStaff)
	return err
}

func (r *UserRepository) UpdateUser(ctx context.Context, u user.User) error {
	res, err := r.stmtUpdate.ExecContext(ctx, u.Email, u.PasswordHash, u.IsStaff, u.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	return scanUser(r.stmtGetByID.QueryRowContext(ctx, id))
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	return scanUser(r.stmtGetByEmail.QueryRowContext(ctx, email))
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.stmtExistsByEmail.QueryRowContext(ctx, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]user.User, error) {
	rows, err := r.stmtList.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type userRow interface {
	Scan(dest ...any) error
}

func scanUser(row userRow) (user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsStaff, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
