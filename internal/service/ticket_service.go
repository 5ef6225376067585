package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/events"
	"github.com/spec-kit/complaint-portal/internal/repository"
	"github.com/spec-kit/complaint-portal/pkg/util"
)

const ticketCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TicketService coordinates complaint workflows for both dashboards.
type TicketService struct {
	tickets    repository.TicketRepository
	comments   repository.CommentRepository
	profiles   repository.ProfileRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles repositories for the ticket service.
type TicketDependencies struct {
	TicketRepo  repository.TicketRepository
	CommentRepo repository.CommentRepository
	ProfileRepo repository.ProfileRepository
	Dispatcher  events.Dispatcher
}

// TicketCreateInput describes a student's complaint submission.
type TicketCreateInput struct {
	Title         string
	Description   string
	Category      domain.TicketCategory
	Priority      domain.TicketPriority
	AttachmentURL *string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		comments:   deps.CommentRepo,
		profiles:   deps.ProfileRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateTicket files a complaint for a student. New tickets always start
// open and carry a generated TKT- code. Code collisions are not rechecked;
// the Postgres backend surfaces one as a key-constraint error.
func (s *TicketService) CreateTicket(ctx context.Context, userID string, input TicketCreateInput) (*domain.Ticket, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, util.NewValidationError("title and description required", nil)
	}
	if len(title) > domain.MaxTitleLength {
		return nil, util.NewValidationError("title too long", map[string]any{"max": domain.MaxTitleLength})
	}
	if !input.Category.Valid() {
		return nil, util.NewValidationError("unknown category", map[string]any{"category": input.Category})
	}
	if !input.Priority.Valid() {
		return nil, util.NewValidationError("unknown priority", map[string]any{"priority": input.Priority})
	}

	ticket := &domain.Ticket{
		ID:            generateTicketCode(),
		CreatedAt:     time.Now(),
		UserID:        userID,
		Title:         title,
		Description:   description,
		Category:      input.Category,
		Priority:      input.Priority,
		Status:        domain.TicketStatusOpen,
		AttachmentURL: input.AttachmentURL,
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Actor:    events.Actor{UserID: userID, Role: domain.RoleStudent},
		Payload: events.TicketCreatedPayload{
			Category: ticket.Category,
			Priority: ticket.Priority,
			Title:    ticket.Title,
		},
	})
	return ticket, nil
}

// ListTickets returns every ticket matching the filter, for the admin
// dashboard. The default order is newest first.
func (s *TicketService) ListTickets(ctx context.Context, filter repository.TicketFilter, sort repository.TicketSort) ([]domain.Ticket, error) {
	return s.tickets.List(ctx, filter, sort)
}

// ListUserTickets returns the student's own tickets matching the filter.
func (s *TicketService) ListUserTickets(ctx context.Context, userID string, filter repository.TicketFilter, sort repository.TicketSort) ([]domain.Ticket, error) {
	filter.UserID = &userID
	return s.tickets.List(ctx, filter, sort)
}

// GetTicketForUser fetches a ticket with its thread, ensuring ownership.
// Internal comments are hidden from students.
func (s *TicketService) GetTicketForUser(ctx context.Context, userID, ticketID string) (*domain.Ticket, []domain.TicketComment, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, nil, err
	}
	if ticket.UserID != userID {
		return nil, nil, util.NewForbidden("not your ticket")
	}
	all, err := s.comments.ListByTicket(ctx, ticket.ID)
	if err != nil {
		return nil, nil, err
	}
	visible := make([]domain.TicketComment, 0, len(all))
	for _, comment := range all {
		if comment.IsInternal {
			continue
		}
		visible = append(visible, comment)
	}
	return ticket, visible, nil
}

// GetTicketForAdmin fetches any ticket with its full thread, internal
// comments included.
func (s *TicketService) GetTicketForAdmin(ctx context.Context, ticketID string) (*domain.Ticket, []domain.TicketComment, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, nil, err
	}
	comments, err := s.comments.ListByTicket(ctx, ticket.ID)
	if err != nil {
		return nil, nil, err
	}
	return ticket, comments, nil
}

// UpdateStatus sets a ticket's status. Any known status is accepted from any
// current status; reopening a resolved ticket is allowed.
func (s *TicketService) UpdateStatus(ctx context.Context, actor *domain.Profile, ticketID string, status domain.TicketStatus) (*domain.Ticket, error) {
	if !status.Valid() {
		return nil, util.NewValidationError("unknown status", map[string]any{"status": status})
	}
	current, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	oldStatus := current.Status
	ticket, err := s.tickets.UpdateStatus(ctx, ticketID, status)
	if err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticket.ID,
		Actor:    events.Actor{UserID: actor.ID, Role: actor.Role},
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: status,
		},
	})
	return ticket, nil
}

// AddComment appends a message to a ticket's thread. The author's name and
// role are snapshotted onto the comment at write time. Students may only
// comment on their own tickets and cannot mark comments internal.
func (s *TicketService) AddComment(ctx context.Context, author *domain.Profile, ticketID, content string, isInternal bool) (*domain.TicketComment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, util.NewValidationError("content required", nil)
	}
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if author.Role != domain.RoleAdmin {
		if ticket.UserID != author.ID {
			return nil, util.NewForbidden("not your ticket")
		}
		isInternal = false
	}

	comment := &domain.TicketComment{
		ID:         fmt.Sprintf("comment-%d", time.Now().UnixNano()),
		TicketID:   ticket.ID,
		UserID:     author.ID,
		UserName:   author.FullName,
		Role:       author.Role,
		Content:    content,
		CreatedAt:  time.Now(),
		IsInternal: isInternal,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCommentAdded,
		TicketID: ticket.ID,
		Actor:    events.Actor{UserID: author.ID, Role: author.Role},
		Payload: events.TicketCommentAddedPayload{
			CommentID:      comment.ID,
			AuthorRole:     comment.Role,
			IsInternal:     comment.IsInternal,
			ContentPreview: contentPreview(comment.Content, 120),
		},
	})
	return comment, nil
}

// Stats returns headline counts over the whole collection.
func (s *TicketService) Stats(ctx context.Context) (domain.TicketStats, error) {
	return s.tickets.Stats(ctx)
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

// generateTicketCode produces codes like TKT-8X29AB from the fixed alphabet.
func generateTicketCode() string {
	var b strings.Builder
	b.WriteString("TKT-")
	for i := 0; i < 6; i++ {
		b.WriteByte(ticketCodeAlphabet[rand.IntN(len(ticketCodeAlphabet))])
	}
	return b.String()
}

func contentPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}
