package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-portal/internal/api/dto"
	"github.com/spec-kit/complaint-portal/internal/auth"
	"github.com/spec-kit/complaint-portal/internal/service"
	"github.com/spec-kit/complaint-portal/internal/storage"
	"github.com/spec-kit/complaint-portal/pkg/util"
)

// TicketsHandler manages the student dashboard endpoints.
type TicketsHandler struct {
	service *service.TicketService
	uploads *storage.Uploads
}

// NewTicketsHandler constructs the handler.
func NewTicketsHandler(ticketService *service.TicketService, uploads *storage.Uploads) *TicketsHandler {
	return &TicketsHandler{service: ticketService, uploads: uploads}
}

// Create POST /tickets. Accepts JSON or a multipart form with an optional
// image attachment; the attachment is stored durably before the ticket
// record references it.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	input := service.TicketCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
	}
	if file, err := c.FormFile("attachment"); err == nil && file != nil {
		url, err := h.uploads.Save(file)
		if err != nil {
			return err
		}
		input.AttachmentURL = &url
	}

	ticket, err := h.service.CreateTicket(c.Context(), principal.Profile.ID, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// List GET /tickets. Returns the caller's tickets with the dashboard
// filter/sort parameters applied.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	filter, sort := parseTicketQuery(c)
	tickets, err := h.service.ListUserTickets(c.Context(), principal.Profile.ID, filter, sort)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponses(tickets)})
}

// Get GET /tickets/:id. Internal comments are not included.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	ticket, comments, err := h.service.GetTicketForUser(c.Context(), principal.Profile.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketDetailResponse(ticket, comments)})
}

// AddComment POST /tickets/:id/comments.
func (h *TicketsHandler) AddComment(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	comment, err := h.service.AddComment(c.Context(), principal.Profile, c.Params("id"), req.Content, false)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": commentResponse(comment)})
}
