package dto

import (
	"time"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// CreateTicketRequest payload. Multipart submissions carry the same fields
// plus an optional image attachment part.
type CreateTicketRequest struct {
	Title       string                `json:"title" form:"title"`
	Description string                `json:"description" form:"description"`
	Category    domain.TicketCategory `json:"category" form:"category"`
	Priority    domain.TicketPriority `json:"priority" form:"priority"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status domain.TicketStatus `json:"status"`
}

// TicketResponse is the wire form of a ticket.
type TicketResponse struct {
	ID            string                `json:"id"`
	CreatedAt     time.Time             `json:"created_at"`
	UserID        string                `json:"user_id"`
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	Category      domain.TicketCategory `json:"category"`
	Priority      domain.TicketPriority `json:"priority"`
	Status        domain.TicketStatus   `json:"status"`
	AssignedTo    *string               `json:"assigned_to,omitempty"`
	AttachmentURL *string               `json:"attachment_url,omitempty"`
}

// TicketDetailResponse bundles a ticket with its comment thread.
type TicketDetailResponse struct {
	TicketResponse
	Comments []CommentResponse `json:"comments"`
}

// CreateCommentRequest payload. IsInternal is honored for admins only.
type CreateCommentRequest struct {
	Content    string `json:"content"`
	IsInternal bool   `json:"is_internal"`
}

// CommentResponse is the wire form of a thread message.
type CommentResponse struct {
	ID         string      `json:"id"`
	TicketID   string      `json:"ticket_id"`
	UserID     string      `json:"user_id"`
	UserName   string      `json:"user_name"`
	Role       domain.Role `json:"role"`
	Content    string      `json:"content"`
	CreatedAt  time.Time   `json:"created_at"`
	IsInternal bool        `json:"is_internal"`
}

// CategoryCountResponse is one bar-chart bucket.
type CategoryCountResponse struct {
	Category domain.TicketCategory `json:"category"`
	Count    int                   `json:"count"`
}

// PriorityCountResponse is one pie-chart bucket.
type PriorityCountResponse struct {
	Priority domain.TicketPriority `json:"priority"`
	Count    int                   `json:"count"`
}

// StatsResponse carries headline counts and the chart tallies.
type StatsResponse struct {
	Stats      domain.TicketStats      `json:"stats"`
	ByCategory []CategoryCountResponse `json:"by_category"`
	ByPriority []PriorityCountResponse `json:"by_priority"`
}
