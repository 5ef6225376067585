package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-portal/internal/api/dto"
	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/repository"
)

func ticketResponse(t *domain.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:            t.ID,
		CreatedAt:     t.CreatedAt,
		UserID:        t.UserID,
		Title:         t.Title,
		Description:   t.Description,
		Category:      t.Category,
		Priority:      t.Priority,
		Status:        t.Status,
		AssignedTo:    t.AssignedTo,
		AttachmentURL: t.AttachmentURL,
	}
}

func ticketResponses(tickets []domain.Ticket) []dto.TicketResponse {
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketResponse(&tickets[i]))
	}
	return items
}

func commentResponse(c *domain.TicketComment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:         c.ID,
		TicketID:   c.TicketID,
		UserID:     c.UserID,
		UserName:   c.UserName,
		Role:       c.Role,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
		IsInternal: c.IsInternal,
	}
}

func ticketDetailResponse(t *domain.Ticket, comments []domain.TicketComment) dto.TicketDetailResponse {
	items := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		items = append(items, commentResponse(&comments[i]))
	}
	return dto.TicketDetailResponse{
		TicketResponse: ticketResponse(t),
		Comments:       items,
	}
}

func profileResponse(p *domain.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:              p.ID,
		Email:           p.Email,
		FullName:        p.FullName,
		Role:            p.Role,
		BatchID:         p.BatchID,
		AdmissionNumber: p.AdmissionNumber,
		Phone:           p.Phone,
		Domain:          p.Domain,
		JoiningDate:     p.JoiningDate,
		AvatarURL:       p.AvatarURL,
	}
}

// parseTicketQuery builds filter and sort from dashboard query parameters:
// q, status, priority, category, sort_by (date|priority), order (asc|desc).
func parseTicketQuery(c *fiber.Ctx) (repository.TicketFilter, repository.TicketSort) {
	filter := repository.TicketFilter{Query: c.Query("q")}
	if val := strings.TrimSpace(c.Query("status")); val != "" {
		status := domain.TicketStatus(val)
		filter.Status = &status
	}
	if val := strings.TrimSpace(c.Query("priority")); val != "" {
		priority := domain.TicketPriority(val)
		filter.Priority = &priority
	}
	if val := strings.TrimSpace(c.Query("category")); val != "" {
		category := domain.TicketCategory(val)
		filter.Category = &category
	}

	sort := repository.TicketSort{
		Key:   repository.SortKey(c.Query("sort_by")),
		Order: repository.SortOrder(c.Query("order")),
	}
	return filter, sort
}
