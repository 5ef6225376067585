package repository

import (
	"sort"
	"strings"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// SortKey selects the ticket ordering dimension.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByPriority SortKey = "priority"
)

// SortOrder selects ascending or descending order.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// TicketSort describes the requested ordering. The zero value sorts by
// creation time, newest first.
type TicketSort struct {
	Key   SortKey
	Order SortOrder
}

func (s TicketSort) normalized() TicketSort {
	if s.Key != SortByPriority {
		s.Key = SortByDate
	}
	if s.Order != SortAsc {
		s.Order = SortDesc
	}
	return s
}

// TicketFilter captures dashboard search criteria. Active criteria combine
// with logical AND; the free-text query matches case-insensitively as a
// substring against title or description.
type TicketFilter struct {
	UserID   *string
	Query    string
	Status   *domain.TicketStatus
	Priority *domain.TicketPriority
	Category *domain.TicketCategory
}

// Matches reports whether the ticket satisfies every active criterion.
func (f TicketFilter) Matches(t *domain.Ticket) bool {
	if f.UserID != nil && t.UserID != *f.UserID {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		title := strings.ToLower(t.Title)
		desc := strings.ToLower(t.Description)
		if !strings.Contains(title, q) && !strings.Contains(desc, q) {
			return false
		}
	}
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	if f.Category != nil && t.Category != *f.Category {
		return false
	}
	return true
}

// ApplyFilter returns the subsequence of tickets matching the filter.
func ApplyFilter(tickets []domain.Ticket, filter TicketFilter) []domain.Ticket {
	result := make([]domain.Ticket, 0, len(tickets))
	for i := range tickets {
		if filter.Matches(&tickets[i]) {
			result = append(result, tickets[i])
		}
	}
	return result
}

// ApplySort orders tickets in place by creation time or priority weight.
func ApplySort(tickets []domain.Ticket, ts TicketSort) {
	ts = ts.normalized()
	sort.SliceStable(tickets, func(i, j int) bool {
		var less bool
		if ts.Key == SortByPriority {
			less = tickets[i].Priority.Weight() < tickets[j].Priority.Weight()
		} else {
			less = tickets[i].CreatedAt.Before(tickets[j].CreatedAt)
		}
		if ts.Order == SortDesc {
			return !less && !equalKey(&tickets[i], &tickets[j], ts.Key)
		}
		return less
	})
}

func equalKey(a, b *domain.Ticket, key SortKey) bool {
	if key == SortByPriority {
		return a.Priority.Weight() == b.Priority.Weight()
	}
	return a.CreatedAt.Equal(b.CreatedAt)
}
