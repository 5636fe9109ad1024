package seeder

import (
	"context"
	"fmt"

	"skill-matrix/internal/database"
	"skill-matrix/internal/domain/user"
)

// StaffEnsurer creates or promotes a staff account.
type StaffEnsurer interface {
	EnsureStaff(ctx context.Context, email, password string) (user.User, error)
}

type StaffSeeder struct {
	Email    string
	Password string
	Users    StaffEnsurer
}

func (StaffSeeder) Name() string { return "staff" }

func (s StaffSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "email", "password_hash", "is_staff"); err != nil {
		return err
	}
	if s.Users == nil {
		return fmt.Errorf("nil staff ensurer")
	}
	if _, err := s.Users.EnsureStaff(ctx, s.Email, s.Password); err != nil {
		return fmt.Errorf("ensure staff %s: %w", s.Email, err)
	}
	return nil
}
