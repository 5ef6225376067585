package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/complaint-portal/internal/auth"
	"github.com/spec-kit/complaint-portal/internal/config"
	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/repository"
	"github.com/spec-kit/complaint-portal/pkg/util"
)

// AuthService handles signup and login. Signup creates the profile row in
// the same step, playing the part of the hosted auth trigger.
type AuthService struct {
	cfg      config.AuthConfig
	profiles repository.ProfileRepository
	tokens   *auth.TokenManager
}

// NewAuthService constructs the service.
func NewAuthService(cfg config.AuthConfig, profiles repository.ProfileRepository) *AuthService {
	return &AuthService{
		cfg:      cfg,
		profiles: profiles,
		tokens:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// RegisterInput describes a signup request.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     domain.Role
}

// AuthResult carries the signed token and the authenticated profile.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	Profile   *domain.Profile
}

// Register creates a profile and returns a signed token for it.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	name := strings.TrimSpace(input.FullName)
	if email == "" || name == "" {
		return nil, util.NewValidationError("email and full name required", nil)
	}
	if len(input.Password) < s.cfg.MinPasswordLength {
		return nil, util.NewValidationError("password too short", map[string]any{"min_length": s.cfg.MinPasswordLength})
	}
	if !input.Role.Valid() {
		return nil, util.NewValidationError("unknown role", map[string]any{"role": input.Role})
	}

	if _, err := s.profiles.GetByEmail(ctx, email); err == nil {
		return nil, util.NewConflict("email already registered", nil)
	} else if !errors.Is(err, util.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     name,
		Role:         input.Role,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	return s.issueToken(profile)
}

// Login verifies credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	profile, err := s.profiles.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}
	if err := auth.ComparePassword(profile.PasswordHash, password); err != nil {
		return nil, util.NewUnauthorized("invalid credentials")
	}
	return s.issueToken(profile)
}

func (s *AuthService) issueToken(profile *domain.Profile) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.GenerateToken(profile.ID, profile.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: expiresAt, Profile: profile}, nil
}
