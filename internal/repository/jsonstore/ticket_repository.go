package jsonstore

import (
	"context"

	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/repository"
	"github.com/spec-kit/complaint-portal/pkg/util"
)

// TicketRepository implements repository.TicketRepository over the store.
type TicketRepository struct {
	store *Store
}

// List returns matching tickets in the requested order. With a zero-value
// sort this is the whole collection, newest first.
func (r *TicketRepository) List(ctx context.Context, filter repository.TicketFilter, sort repository.TicketSort) ([]domain.Ticket, error) {
	r.store.mu.Lock()
	tickets := make([]domain.Ticket, len(r.store.tickets))
	copy(tickets, r.store.tickets)
	r.store.mu.Unlock()

	result := repository.ApplyFilter(tickets, filter)
	repository.ApplySort(result, sort)
	return result, nil
}

// ListByUser returns the user's tickets, newest first.
func (r *TicketRepository) ListByUser(ctx context.Context, userID string) ([]domain.Ticket, error) {
	return r.List(ctx, repository.TicketFilter{UserID: &userID}, repository.TicketSort{})
}

// GetByID finds the first ticket with the given code.
func (r *TicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.tickets {
		if r.store.tickets[i].ID == id {
			ticket := r.store.tickets[i]
			return &ticket, nil
		}
	}
	return nil, util.ErrNotFound
}

// Create appends the ticket and rewrites the mirror file. Code uniqueness is
// not rechecked here.
func (r *TicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.tickets = append(r.store.tickets, *ticket)
	r.store.persistTickets()
	return nil
}

// UpdateStatus overwrites the status of the first matching ticket in place.
func (r *TicketRepository) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) (*domain.Ticket, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.tickets {
		if r.store.tickets[i].ID == id {
			r.store.tickets[i].Status = status
			r.store.persistTickets()
			ticket := r.store.tickets[i]
			return &ticket, nil
		}
	}
	return nil, util.ErrNotFound
}

// Stats scans the full collection. O(n) per call, never cached.
func (r *TicketRepository) Stats(ctx context.Context) (domain.TicketStats, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stats := domain.TicketStats{Total: len(r.store.tickets)}
	for i := range r.store.tickets {
		switch r.store.tickets[i].Status {
		case domain.TicketStatusOpen:
			stats.Open++
		case domain.TicketStatusInProgress:
			stats.InProgress++
		case domain.TicketStatusResolved:
			stats.Resolved++
		}
	}
	return stats, nil
}
