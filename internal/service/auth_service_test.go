package service

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/complaint-portal/internal/config"
	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/repository/jsonstore"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	store := jsonstore.Open(config.StoreConfig{DataDir: t.TempDir()}, zap.NewNop())
	cfg := config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 15,
		BcryptCost:            bcrypt.MinCost,
		MinPasswordLength:     6,
	}
	return NewAuthService(cfg, store.Profiles())
}

func TestRegisterThenLogin(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterInput{
		Email:    "Arjun@Example.Com",
		Password: "secret1",
		FullName: "Arjun Kumar",
		Role:     domain.RoleStudent,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if registered.Token == "" {
		t.Fatalf("no token issued")
	}
	if registered.Profile.Email != "arjun@example.com" {
		t.Fatalf("email not lowercased: %s", registered.Profile.Email)
	}
	if registered.Profile.PasswordHash == "secret1" {
		t.Fatalf("password stored in the clear")
	}

	logged, err := svc.Login(ctx, "arjun@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.Profile.ID != registered.Profile.ID {
		t.Fatalf("login returned a different profile")
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := newTestAuthService(t)
	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "a@example.com",
		Password: "12345",
		FullName: "A",
		Role:     domain.RoleStudent,
	})
	if err == nil {
		t.Fatalf("expected short password to be rejected")
	}
	if !strings.Contains(err.Error(), "password") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	input := RegisterInput{Email: "dup@example.com", Password: "secret1", FullName: "First", Role: domain.RoleStudent}
	if _, err := svc.Register(ctx, input); err != nil {
		t.Fatalf("first register: %v", err)
	}
	input.FullName = "Second"
	if _, err := svc.Register(ctx, input); err == nil {
		t.Fatalf("expected duplicate email to be rejected")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Email: "a@example.com", Password: "secret1", FullName: "A", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Login(ctx, "a@example.com", "wrong"); err == nil {
		t.Fatalf("expected wrong password to fail")
	}
	if _, err := svc.Login(ctx, "unknown@example.com", "secret1"); err == nil {
		t.Fatalf("expected unknown email to fail")
	}
}
