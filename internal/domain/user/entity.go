package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	IsStaff      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile holds the organisational details of one user.
type Profile struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	GenderID            uuid.UUID
	GradeID             uuid.UUID
	ProfessionID        uuid.UUID
	UnitID              uuid.UUID
	YearsAsAnalyst      int
	YearsAtCurrentGrade int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
