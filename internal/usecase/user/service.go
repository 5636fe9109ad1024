package user

import (
	"context"
	"errors"
	"strings"

	"skill-matrix/internal/domain/organisation"
	"skill-matrix/internal/domain/user"
	"skill-matrix/internal/repository"
	"skill-matrix/internal/usecase/auth"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInternal         = errors.New("internal error")
	ErrEmailTaken       = errors.New("email already registered")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrUnknownReference = errors.New("unknown organisation reference")
)

type UpdateMeInput struct {
	Email    *string
	Password *string
}

type ProfileInput struct {
	GenderID            uuid.UUID
	GradeID             uuid.UUID
	ProfessionID        uuid.UUID
	UnitID              uuid.UUID
	YearsAsAnalyst      int
	YearsAtCurrentGrade int
}

type Service struct {
	users    user.Repository
	profiles user.ProfileRepository
	org      repository.OrganisationRepository
}

func NewService(users user.Repository, profiles user.ProfileRepository, org repository.OrganisationRepository) *Service {
	return &Service{users: users, profiles: profiles, org: org}
}

func (s *Service) GetMe(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return sanitizeUser(usr), nil
}

func (s *Service) UpdateMe(ctx context.Context, userID uuid.UUID, in UpdateMeInput) (user.User, error) {
	usr, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	if in.Email != nil {
		email := auth.NormalizeEmail(*in.Email)
		if email == "" {
			return user.User{}, ErrInvalidInput
		}
		if email != usr.Email {
			taken, err := s.users.ExistsByEmail(ctx, email)
			if err != nil {
				return user.User{}, ErrInternal
			}
			if taken {
				return user.User{}, ErrEmailTaken
			}
		}
		usr.Email = email
	}

	if in.Password != nil {
		pw := strings.TrimSpace(*in.Password)
		if !auth.IsValidPassword(pw) {
			return user.User{}, ErrInvalidInput
		}
		hash, err := auth.HashPassword(pw)
		if err != nil {
			return user.User{}, ErrInternal
		}
		usr.PasswordHash = hash
	}

	if err := s.users.UpdateUser(ctx, usr); err != nil {
		return user.User{}, ErrInternal
	}

	updated, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(updated), nil
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return user.Profile{}, ErrProfileNotFound
		}
		return user.Profile{}, ErrInternal
	}
	return p, nil
}

// SaveProfile creates the profile on first save and replaces it afterwards.
func (s *Service) SaveProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (user.Profile, error) {
	if userID == uuid.Nil || in.YearsAsAnalyst < 0 || in.YearsAtCurrentGrade < 0 {
		return user.Profile{}, ErrInvalidInput
	}

	refs := []struct {
		kind organisation.Kind
		id   uuid.UUID
	}{
		{organisation.KindGender, in.GenderID},
		{organisation.KindGrade, in.GradeID},
		{organisation.KindProfession, in.ProfessionID},
		{organisation.KindUnit, in.UnitID},
	}
	for _, ref := range refs {
		if ref.id == uuid.Nil {
			return user.Profile{}, ErrInvalidInput
		}
		ok, err := s.org.Exists(ctx, ref.kind, ref.id)
		if err != nil {
			return user.Profile{}, ErrInternal
		}
		if !ok {
			return user.Profile{}, ErrUnknownReference
		}
	}

	saved, err := s.profiles.Upsert(ctx, user.Profile{
		UserID:              userID,
		GenderID:            in.GenderID,
		GradeID:             in.GradeID,
		ProfessionID:        in.ProfessionID,
		UnitID:              in.UnitID,
		YearsAsAnalyst:      in.YearsAsAnalyst,
		YearsAtCurrentGrade: in.YearsAtCurrentGrade,
	})
	if err != nil {
		if errors.Is(err, repository.ErrProfileReference) {
			return user.Profile{}, ErrUnknownReference
		}
		return user.Profile{}, ErrInternal
	}
	return saved, nil
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
