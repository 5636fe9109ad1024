package handler

import (
	"context"
	"testing"
	"time"

	"skill-matrix/internal/domain/user"
	"skill-matrix/internal/usecase"
	ucauth "skill-matrix/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type stubAuthUsecase struct {
	usecase.AuthUsecase
	usr user.User
	err error
}

func (s stubAuthUsecase) Register(context.Context, ucauth.RegisterInput) (user.User, string, string, error) {
	return s.usr, "access", "refresh", s.err
}

func (s stubAuthUsecase) Login(context.Context, ucauth.LoginInput) (user.User, string, string, error) {
	return s.usr, "access", "refresh", s.err
}

func (s stubAuthUsecase) Refresh(context.Context, string) (string, string, error) {
	return "access2", "refresh2", s.err
}

func TestAuthHandler_UserPayloadHidesPasswordHash(t *testing.T) {
	usr := user.User{
		ID:           uuid.New(),
		Email:        "a@b.c",
		PasswordHash: "$2a$10$secret",
		IsStaff:      true,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	cases := []struct {
		path   string
		status int
	}{
		{"/auth/register", fiber.StatusCreated},
		{"/auth/login", fiber.StatusOK},
	}
	for _, tc := range cases {
		app := newHandlerApp(uuid.New())
		NewAuthHandler(stubAuthUsecase{usr: usr}).RegisterRoutes(app.Group("/auth"))

		status, out := doJSON(t, app, "POST", tc.path, `{"email":"a@b.c","password":"password123"}`)
		if status != tc.status {
			t.Fatalf("%s: expected %d, got %d", tc.path, tc.status, status)
		}
		data, _ := out.Data.(map[string]any)
		if data["access_token"] != "access" || data["refresh_token"] != "refresh" {
			t.Fatalf("%s: unexpected tokens %+v", tc.path, data)
		}
		got, _ := data["user"].(map[string]any)
		if got["id"] != usr.ID.String() || got["email"] != "a@b.c" || got["is_staff"] != true {
			t.Fatalf("%s: unexpected user %+v", tc.path, got)
		}
		for _, k := range []string{"PasswordHash", "password_hash", "ID", "Email"} {
			if _, ok := got[k]; ok {
				t.Fatalf("%s: user payload leaks %q: %+v", tc.path, k, got)
			}
		}
	}
}

func TestAuthHandler_LoginBadCredentialsIs401(t *testing.T) {
	app := newHandlerApp(uuid.New())
	NewAuthHandler(stubAuthUsecase{err: ucauth.ErrInvalidCredentials}).RegisterRoutes(app.Group("/auth"))

	if status, _ := doJSON(t, app, "POST", "/auth/login", `{"email":"a@b.c","password":"nope"}`); status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}

func TestAuthHandler_RefreshNeedsBearer(t *testing.T) {
	app := newHandlerApp(uuid.New())
	NewAuthHandler(stubAuthUsecase{}).RegisterRoutes(app.Group("/auth"))

	if status, _ := doJSON(t, app, "POST", "/auth/refresh", ``); status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":   "abc",
		"bearer  abc ": "abc",
		"Basic abc":    "",
		"Bearer":       "",
		"":             "",
	}
	for in, want := range cases {
		got, ok := bearerToken(in)
		if got != want || ok != (want != "") {
			t.Fatalf("%q: got %q ok=%v", in, got, ok)
		}
	}
}
