package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/pkg/util"
)

// RequireRole ensures the authenticated caller has the given role.
func RequireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Profile == nil {
			return util.NewUnauthorized("authentication required")
		}
		if principal.Role() != role {
			return util.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequireStudent guards student dashboard routes.
func RequireStudent() fiber.Handler {
	return RequireRole(domain.RoleStudent)
}

// RequireAdmin guards admin dashboard routes.
func RequireAdmin() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}
