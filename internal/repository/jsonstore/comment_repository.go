package jsonstore

import (
	"context"
	"sort"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// CommentRepository implements repository.CommentRepository over the store.
type CommentRepository struct {
	store *Store
}

// ListByTicket returns the ticket's thread ordered oldest first.
func (r *CommentRepository) ListByTicket(ctx context.Context, ticketID string) ([]domain.TicketComment, error) {
	r.store.mu.Lock()
	result := make([]domain.TicketComment, 0)
	for i := range r.store.comments {
		if r.store.comments[i].TicketID == ticketID {
			result = append(result, r.store.comments[i])
		}
	}
	r.store.mu.Unlock()

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// Create appends the comment and rewrites the mirror file. Comments are
// never mutated afterwards.
func (r *CommentRepository) Create(ctx context.Context, comment *domain.TicketComment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.comments = append(r.store.comments, *comment)
	r.store.persistComments()
	return nil
}
