package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHMACService_AccessTokenRoundTrip(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
	sub := Subject{UserID: uuid.New(), Email: "a@example.com", IsStaff: true}

	tok, err := svc.GenerateAccessToken(sub)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.UserID != sub.UserID || claims.Email != sub.Email || !claims.IsStaff {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if svc.IsRefreshToken(claims) {
		t.Fatalf("access token reported as refresh token")
	}
}

func TestHMACService_RefreshTokenHasNoStaffClaim(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
	tok, err := svc.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !svc.IsRefreshToken(claims) || claims.IsStaff {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestHMACService_Expired(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
	past := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return past }

	tok, err := svc.GenerateAccessToken(Subject{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	svc.now = time.Now
	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_WrongSecret(t *testing.T) {
	a := NewHMACService("one", "two", time.Minute, time.Hour)
	b := NewHMACService("three", "four", time.Minute, time.Hour)

	tok, err := a.GenerateAccessToken(Subject{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := b.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
