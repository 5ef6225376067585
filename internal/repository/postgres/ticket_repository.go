package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/repository"
	"github.com/spec-kit/complaint-portal/pkg/util"
)

// TicketRepository is the Postgres-backed ticket store.
type TicketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates the repository.
func NewTicketRepository(pool *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{pool: pool}
}

const ticketColumns = `id, created_at, user_id, title, description, category, priority, status, assigned_to, attachment_url`

func (r *TicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (id, user_id, title, description, category, priority, status, assigned_to, attachment_url)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING created_at`
	return r.pool.QueryRow(ctx, query,
		ticket.ID,
		ticket.UserID,
		ticket.Title,
		ticket.Description,
		ticket.Category,
		ticket.Priority,
		ticket.Status,
		ticket.AssignedTo,
		ticket.AttachmentURL,
	).Scan(&ticket.CreatedAt)
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := fmt.Sprintf(`SELECT %s FROM tickets WHERE id=$1`, ticketColumns)
	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.CreatedAt,
		&ticket.UserID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Category,
		&ticket.Priority,
		&ticket.Status,
		&ticket.AssignedTo,
		&ticket.AttachmentURL,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepository) ListByUser(ctx context.Context, userID string) ([]domain.Ticket, error) {
	return r.List(ctx, repository.TicketFilter{UserID: &userID}, repository.TicketSort{})
}

func (r *TicketRepository) List(ctx context.Context, filter repository.TicketFilter, sort repository.TicketSort) ([]domain.Ticket, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		clauses = append(clauses, fmt.Sprintf("user_id=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.Priority != nil {
		args = append(args, *filter.Priority)
		clauses = append(clauses, fmt.Sprintf("priority=$%d", len(args)))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		clauses = append(clauses, fmt.Sprintf("category=$%d", len(args)))
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		args = append(args, "%"+strings.ToLower(q)+"%")
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(title) LIKE %s OR LOWER(description) LIKE %s)", placeholder, placeholder))
	}

	query := fmt.Sprintf(`SELECT %s FROM tickets WHERE %s ORDER BY %s`,
		ticketColumns, strings.Join(clauses, " AND "), orderClause(sort))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *TicketRepository) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) (*domain.Ticket, error) {
	query := fmt.Sprintf(`UPDATE tickets SET status=$1 WHERE id=$2 RETURNING %s`, ticketColumns)
	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, status, id).Scan(
		&ticket.ID,
		&ticket.CreatedAt,
		&ticket.UserID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Category,
		&ticket.Priority,
		&ticket.Status,
		&ticket.AssignedTo,
		&ticket.AttachmentURL,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepository) Stats(ctx context.Context) (domain.TicketStats, error) {
	const query = `
        SELECT count(*),
               count(*) FILTER (WHERE status='open'),
               count(*) FILTER (WHERE status='in_progress'),
               count(*) FILTER (WHERE status='resolved')
        FROM tickets`
	var stats domain.TicketStats
	if err := r.pool.QueryRow(ctx, query).Scan(&stats.Total, &stats.Open, &stats.InProgress, &stats.Resolved); err != nil {
		return domain.TicketStats{}, err
	}
	return stats, nil
}

// orderClause maps the sort request onto SQL. Priority ordering uses the
// fixed weights high=3, medium=2, low=1.
func orderClause(sort repository.TicketSort) string {
	dir := "DESC"
	if sort.Order == repository.SortAsc {
		dir = "ASC"
	}
	if sort.Key == repository.SortByPriority {
		return fmt.Sprintf("CASE priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END %s, created_at DESC", dir)
	}
	return "created_at " + dir
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	result := []domain.Ticket{}
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.CreatedAt,
			&ticket.UserID,
			&ticket.Title,
			&ticket.Description,
			&ticket.Category,
			&ticket.Priority,
			&ticket.Status,
			&ticket.AssignedTo,
			&ticket.AttachmentURL,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}
