package repository

import (
	"context"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// TicketRepository encapsulates ticket persistence. Implementations return
// util.ErrNotFound (possibly wrapped) when a ticket id does not exist.
type TicketRepository interface {
	// List returns tickets matching the filter in the given sort order.
	List(ctx context.Context, filter TicketFilter, sort TicketSort) ([]domain.Ticket, error)
	// ListByUser returns the user's tickets, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	Create(ctx context.Context, ticket *domain.Ticket) error
	// UpdateStatus overwrites the status of the matching ticket in place.
	UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) (*domain.Ticket, error)
	// Stats recomputes headline counts by scanning the collection.
	Stats(ctx context.Context) (domain.TicketStats, error)
}

// CommentRepository manages ticket threads. Comments are append-only.
type CommentRepository interface {
	// ListByTicket returns the thread oldest first.
	ListByTicket(ctx context.Context, ticketID string) ([]domain.TicketComment, error)
	Create(ctx context.Context, comment *domain.TicketComment) error
}

// ProfileUpdates carries the profile fields that may change after creation.
// Role and email are deliberately absent.
type ProfileUpdates struct {
	FullName        *string
	BatchID         *string
	AdmissionNumber *string
	Phone           *string
	Domain          *string
	JoiningDate     *string
	AvatarURL       *string
}

// ProfileRepository defines persistence access for user profiles.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Create(ctx context.Context, profile *domain.Profile) error
	Update(ctx context.Context, id string, updates ProfileUpdates) (*domain.Profile, error)
}
