package dto

import (
	"time"

	"skill-matrix/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, IsStaff: u.IsStaff, CreatedAt: u.CreatedAt}
}

type ProfileResponse struct {
	ID                  uuid.UUID `json:"id"`
	GenderID            uuid.UUID `json:"gender_id"`
	GradeID             uuid.UUID `json:"grade_id"`
	ProfessionID        uuid.UUID `json:"profession_id"`
	UnitID              uuid.UUID `json:"unit_id"`
	YearsAsAnalyst      int       `json:"years_as_analyst"`
	YearsAtCurrentGrade int       `json:"years_at_current_grade"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func NewProfileResponse(p user.Profile) ProfileResponse {
	return ProfileResponse{
		ID:                  p.ID,
		GenderID:            p.GenderID,
		GradeID:             p.GradeID,
		ProfessionID:        p.ProfessionID,
		UnitID:              p.UnitID,
		YearsAsAnalyst:      p.YearsAsAnalyst,
		YearsAtCurrentGrade: p.YearsAtCurrentGrade,
		UpdatedAt:           p.UpdatedAt,
	}
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User UserResponse `json:"user"`
	TokenResponse
}

func NewAuthResponse(u user.User, access, refresh string) AuthResponse {
	return AuthResponse{
		User:          NewUserResponse(u),
		TokenResponse: TokenResponse{AccessToken: access, RefreshToken: refresh},
	}
}
