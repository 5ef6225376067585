package repository

import (
	"testing"
	"time"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

func sampleTickets() []domain.Ticket {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return []domain.Ticket{
		{ID: "TKT-AAAAAA", CreatedAt: base, UserID: "u1", Title: "Wifi down", Description: "no wifi in block B", Category: domain.TicketCategoryFacility, Priority: domain.TicketPriorityHigh, Status: domain.TicketStatusOpen},
		{ID: "TKT-BBBBBB", CreatedAt: base.Add(time.Hour), UserID: "u2", Title: "Syllabus outdated", Description: "module list is stale", Category: domain.TicketCategoryCurriculum, Priority: domain.TicketPriorityLow, Status: domain.TicketStatusResolved},
		{ID: "TKT-CCCCCC", CreatedAt: base.Add(2 * time.Hour), UserID: "u1", Title: "Placement drive", Description: "wifi mentioned here too", Category: domain.TicketCategoryPlacement, Priority: domain.TicketPriorityMedium, Status: domain.TicketStatusOpen},
	}
}

func TestFilterByStatusReturnsExactMatches(t *testing.T) {
	status := domain.TicketStatusOpen
	result := ApplyFilter(sampleTickets(), TicketFilter{Status: &status})
	if len(result) != 2 {
		t.Fatalf("expected 2 open tickets, got %d", len(result))
	}
	for _, ticket := range result {
		if ticket.Status != domain.TicketStatusOpen {
			t.Fatalf("unexpected status %s", ticket.Status)
		}
	}
}

func TestCombinedFiltersIntersect(t *testing.T) {
	status := domain.TicketStatusOpen
	priority := domain.TicketPriorityHigh
	result := ApplyFilter(sampleTickets(), TicketFilter{Status: &status, Priority: &priority})
	if len(result) != 1 || result[0].ID != "TKT-AAAAAA" {
		t.Fatalf("expected only TKT-AAAAAA, got %v", result)
	}
}

func TestQueryMatchesTitleOrDescription(t *testing.T) {
	result := ApplyFilter(sampleTickets(), TicketFilter{Query: "WIFI"})
	if len(result) != 2 {
		t.Fatalf("expected 2 matches for wifi, got %d", len(result))
	}
	if result[0].ID != "TKT-AAAAAA" || result[1].ID != "TKT-CCCCCC" {
		t.Fatalf("unexpected matches: %v", result)
	}
}

func TestQueryCombinesWithCategoryFilter(t *testing.T) {
	category := domain.TicketCategoryPlacement
	result := ApplyFilter(sampleTickets(), TicketFilter{Query: "wifi", Category: &category})
	if len(result) != 1 || result[0].ID != "TKT-CCCCCC" {
		t.Fatalf("expected only the placement ticket, got %v", result)
	}
}

func TestFilterByUser(t *testing.T) {
	userID := "u1"
	result := ApplyFilter(sampleTickets(), TicketFilter{UserID: &userID})
	if len(result) != 2 {
		t.Fatalf("expected 2 tickets for u1, got %d", len(result))
	}
}

func TestDefaultSortIsNewestFirst(t *testing.T) {
	tickets := sampleTickets()
	ApplySort(tickets, TicketSort{})
	for i := 1; i < len(tickets); i++ {
		if tickets[i].CreatedAt.After(tickets[i-1].CreatedAt) {
			t.Fatalf("tickets not sorted newest first at index %d", i)
		}
	}
}

func TestSortByDateAscending(t *testing.T) {
	tickets := sampleTickets()
	ApplySort(tickets, TicketSort{Key: SortByDate, Order: SortAsc})
	for i := 1; i < len(tickets); i++ {
		if tickets[i].CreatedAt.Before(tickets[i-1].CreatedAt) {
			t.Fatalf("tickets not sorted oldest first at index %d", i)
		}
	}
}

func TestSortByPriorityWeight(t *testing.T) {
	tickets := sampleTickets()
	ApplySort(tickets, TicketSort{Key: SortByPriority, Order: SortDesc})
	want := []domain.TicketPriority{domain.TicketPriorityHigh, domain.TicketPriorityMedium, domain.TicketPriorityLow}
	for i, priority := range want {
		if tickets[i].Priority != priority {
			t.Fatalf("position %d: expected %s, got %s", i, priority, tickets[i].Priority)
		}
	}

	ApplySort(tickets, TicketSort{Key: SortByPriority, Order: SortAsc})
	for i := range want {
		if tickets[i].Priority != want[len(want)-1-i] {
			t.Fatalf("ascending position %d: got %s", i, tickets[i].Priority)
		}
	}
}

func TestPriorityWeights(t *testing.T) {
	weights := map[domain.TicketPriority]int{
		domain.TicketPriorityHigh:   3,
		domain.TicketPriorityMedium: 2,
		domain.TicketPriorityLow:    1,
	}
	for priority, want := range weights {
		if got := priority.Weight(); got != want {
			t.Fatalf("weight of %s: expected %d, got %d", priority, want, got)
		}
	}
}
