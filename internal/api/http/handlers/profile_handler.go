package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-portal/internal/api/dto"
	"github.com/spec-kit/complaint-portal/internal/auth"
	"github.com/spec-kit/complaint-portal/internal/repository"
	"github.com/spec-kit/complaint-portal/internal/service"
	"github.com/spec-kit/complaint-portal/pkg/util"
)

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler constructs the handler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profileService}
}

// Get GET /profile.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	profile, err := h.profiles.GetProfile(c.Context(), principal.Profile.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profileResponse(profile)})
}

// Update PATCH /profile. Only the listed fields can change; role and email
// are not among them.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	profile, err := h.profiles.UpdateProfile(c.Context(), principal.Profile.ID, repository.ProfileUpdates{
		FullName:        req.FullName,
		BatchID:         req.BatchID,
		AdmissionNumber: req.AdmissionNumber,
		Phone:           req.Phone,
		Domain:          req.Domain,
		JoiningDate:     req.JoiningDate,
		AvatarURL:       req.AvatarURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profileResponse(profile)})
}
