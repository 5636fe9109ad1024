package usecase

import (
	"context"

	"skill-matrix/internal/domain/user"
	"skill-matrix/internal/repository"
	ucuser "skill-matrix/internal/usecase/user"

	"github.com/google/uuid"
)

type UserUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (user.User, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, in ucuser.UpdateMeInput) (user.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error)
	SaveProfile(ctx context.Context, userID uuid.UUID, in ucuser.ProfileInput) (user.Profile, error)
}

type User struct {
	svc *ucuser.Service
}

func NewUserUsecase(users user.Repository, profiles user.ProfileRepository, org repository.OrganisationRepository) *User {
	return &User{svc: ucuser.NewService(users, profiles, org)}
}

func (u *User) GetMe(ctx context.Context, userID uuid.UUID) (user.User, error) {
	return u.svc.GetMe(ctx, userID)
}

func (u *User) UpdateMe(ctx context.Context, userID uuid.UUID, in ucuser.UpdateMeInput) (user.User, error) {
	return u.svc.UpdateMe(ctx, userID, in)
}

func (u *User) GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	return u.svc.GetProfile(ctx, userID)
}

func (u *User) SaveProfile(ctx context.Context, userID uuid.UUID, in ucuser.ProfileInput) (user.Profile, error) {
	return u.svc.SaveProfile(ctx, userID, in)
}
