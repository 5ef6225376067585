package handlers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-portal/internal/api/dto"
	"github.com/spec-kit/complaint-portal/internal/auth"
	"github.com/spec-kit/complaint-portal/internal/export"
	"github.com/spec-kit/complaint-portal/internal/service"
	"github.com/spec-kit/complaint-portal/pkg/util"
)

// AdminHandler manages the admin dashboard endpoints.
type AdminHandler struct {
	tickets  *service.TicketService
	profiles *service.ProfileService
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(ticketService *service.TicketService, profileService *service.ProfileService) *AdminHandler {
	return &AdminHandler{tickets: ticketService, profiles: profileService}
}

// ListTickets GET /admin/tickets. All tickets with filter/sort applied.
func (h *AdminHandler) ListTickets(c *fiber.Ctx) error {
	filter, sort := parseTicketQuery(c)
	tickets, err := h.tickets.ListTickets(c.Context(), filter, sort)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponses(tickets)})
}

// GetTicket GET /admin/tickets/:id. Full thread, internal comments included.
func (h *AdminHandler) GetTicket(c *fiber.Ctx) error {
	ticket, comments, err := h.tickets.GetTicketForAdmin(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketDetailResponse(ticket, comments)})
}

// UpdateStatus PATCH /admin/tickets/:id/status.
func (h *AdminHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.tickets.UpdateStatus(c.Context(), principal.Profile, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// AddComment POST /admin/tickets/:id/comments. Admins may mark a comment
// internal, hiding it from the student.
func (h *AdminHandler) AddComment(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	comment, err := h.tickets.AddComment(c.Context(), principal.Profile, c.Params("id"), req.Content, req.IsInternal)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": commentResponse(comment)})
}

// Stats GET /admin/stats. Headline counts plus the chart tallies, recomputed
// from the collection on every call.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.tickets.Stats(c.Context())
	if err != nil {
		return err
	}
	filter, sort := parseTicketQuery(c)
	tickets, err := h.tickets.ListTickets(c.Context(), filter, sort)
	if err != nil {
		return err
	}

	byCategory := make([]dto.CategoryCountResponse, 0, 4)
	for _, bucket := range service.CategoryTally(tickets) {
		byCategory = append(byCategory, dto.CategoryCountResponse{Category: bucket.Category, Count: bucket.Count})
	}
	byPriority := make([]dto.PriorityCountResponse, 0, 3)
	for _, bucket := range service.PriorityTally(tickets) {
		byPriority = append(byPriority, dto.PriorityCountResponse{Priority: bucket.Priority, Count: bucket.Count})
	}

	return c.JSON(fiber.Map{"data": dto.StatsResponse{
		Stats:      stats,
		ByCategory: byCategory,
		ByPriority: byPriority,
	}})
}

// ExportTickets GET /admin/tickets/export. Streams the filtered listing as a
// CSV download in the current sort order.
func (h *AdminHandler) ExportTickets(c *fiber.Ctx) error {
	filter, sort := parseTicketQuery(c)
	tickets, err := h.tickets.ListTickets(c.Context(), filter, sort)
	if err != nil {
		return err
	}
	profiles, err := h.profiles.ListProfiles(c.Context())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := export.WriteTickets(&buf, tickets, export.NameIndex(profiles)); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.Filename(time.Now())))
	return c.Send(buf.Bytes())
}
