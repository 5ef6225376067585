package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/repository"
	"github.com/spec-kit/complaint-portal/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	Profile *domain.Profile
}

// Role returns the caller's role.
func (p *Principal) Role() domain.Role {
	return p.Profile.Role
}

// Middleware validates bearer tokens and loads the caller's profile.
type Middleware struct {
	tokens   *TokenManager
	profiles repository.ProfileRepository
}

// NewMiddleware constructs the auth middleware.
func NewMiddleware(tokens *TokenManager, profiles repository.ProfileRepository) *Middleware {
	return &Middleware{tokens: tokens, profiles: profiles}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return util.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return util.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return util.NewUnauthorized("invalid token")
	}

	profile, err := m.profiles.GetByID(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return util.NewUnauthorized("profile not found")
		}
		return util.MapError(err)
	}

	c.Locals(principalKey, &Principal{Profile: profile})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
