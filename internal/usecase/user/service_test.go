package user

import (
	"context"
	"errors"
	"testing"

	"skill-matrix/internal/domain/organisation"
	"skill-matrix/internal/domain/user"

	"github.com/google/uuid"
)

type mockOrgRepo struct {
	known map[uuid.UUID]organisation.Kind
}

func (m mockOrgRepo) List(context.Context, organisation.Kind) ([]organisation.Item, error) {
	return nil, nil
}

func (m mockOrgRepo) Create(context.Context, organisation.Kind, string) (organisation.Item, error) {
	return organisation.Item{}, nil
}

func (m mockOrgRepo) Exists(_ context.Context, kind organisation.Kind, id uuid.UUID) (bool, error) {
	return m.known[id] == kind, nil
}

type mockProfileRepo struct {
	saved map[uuid.UUID]user.Profile
}

func (m *mockProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (user.Profile, error) {
	p, ok := m.saved[userID]
	if !ok {
		return user.Profile{}, user.ErrProfileNotFound
	}
	return p, nil
}

func (m *mockProfileRepo) Upsert(_ context.Context, p user.Profile) (user.Profile, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.saved[p.UserID] = p
	return p, nil
}

func newProfileFixture() (*Service, ProfileInput) {
	in := ProfileInput{
		GenderID:     uuid.New(),
		GradeID:      uuid.New(),
		ProfessionID: uuid.New(),
		UnitID:       uuid.New(),
	}
	org := mockOrgRepo{known: map[uuid.UUID]organisation.Kind{
		in.GenderID:     organisation.KindGender,
		in.GradeID:      organisation.KindGrade,
		in.ProfessionID: organisation.KindProfession,
		in.UnitID:       organisation.KindUnit,
	}}
	return NewService(nil, &mockProfileRepo{saved: map[uuid.UUID]user.Profile{}}, org), in
}

func TestService_Profile_MissingThenSaved(t *testing.T) {
	svc, in := newProfileFixture()
	ctx := context.Background()
	userID := uuid.New()

	if _, err := svc.GetProfile(ctx, userID); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}

	in.YearsAsAnalyst = 4
	if _, err := svc.SaveProfile(ctx, userID, in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got, err := svc.GetProfile(ctx, userID)
	if err != nil || got.YearsAsAnalyst != 4 || got.GradeID != in.GradeID {
		t.Fatalf("unexpected profile %+v err=%v", got, err)
	}
}

func TestService_SaveProfile_Validation(t *testing.T) {
	svc, in := newProfileFixture()
	ctx := context.Background()

	negative := in
	negative.YearsAtCurrentGrade = -1
	if _, err := svc.SaveProfile(ctx, uuid.New(), negative); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	swapped := in
	swapped.GradeID = in.UnitID
	if _, err := svc.SaveProfile(ctx, uuid.New(), swapped); !errors.Is(err, ErrUnknownReference) {
		t.Fatalf("expected ErrUnknownReference, got %v", err)
	}
}
