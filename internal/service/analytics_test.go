package service

import (
	"context"
	"testing"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

func TestCategoryTallyCoversAllBuckets(t *testing.T) {
	tickets := []domain.Ticket{
		{Category: domain.TicketCategoryCurriculum},
		{Category: domain.TicketCategoryFacility},
		{Category: domain.TicketCategoryFacility},
		{Category: domain.TicketCategoryOther},
	}
	tally := CategoryTally(tickets)
	if len(tally) != 4 {
		t.Fatalf("expected 4 buckets, got %d", len(tally))
	}
	counts := make(map[domain.TicketCategory]int)
	total := 0
	for _, bucket := range tally {
		counts[bucket.Category] = bucket.Count
		total += bucket.Count
	}
	if total != len(tickets) {
		t.Fatalf("bucket sum %d, expected %d", total, len(tickets))
	}
	if counts[domain.TicketCategoryFacility] != 2 {
		t.Fatalf("facility count %d, expected 2", counts[domain.TicketCategoryFacility])
	}
	if counts[domain.TicketCategoryPlacement] != 0 {
		t.Fatalf("placement should be an explicit zero bucket")
	}
}

func TestPriorityTallyEmptyCollection(t *testing.T) {
	tally := PriorityTally(nil)
	if len(tally) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(tally))
	}
	for _, bucket := range tally {
		if bucket.Count != 0 {
			t.Fatalf("bucket %s should be zero, got %d", bucket.Priority, bucket.Count)
		}
	}
}

func TestStatsPartition(t *testing.T) {
	svc, _ := newTestTicketService(t)
	ctx := context.Background()
	admin := adminProfile("a1", "Staff")

	ids := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		ticket, err := svc.CreateTicket(ctx, "u1", TicketCreateInput{Title: "t", Description: "d", Category: domain.TicketCategoryOther, Priority: domain.TicketPriorityLow})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		ids = append(ids, ticket.ID)
	}
	if _, err := svc.UpdateStatus(ctx, admin, ids[0], domain.TicketStatusInProgress); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, admin, ids[1], domain.TicketStatusResolved); err != nil {
		t.Fatalf("update: %v", err)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 5 || stats.Open != 3 || stats.InProgress != 1 || stats.Resolved != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.Open+stats.InProgress+stats.Resolved != stats.Total {
		t.Fatalf("stats do not partition: %+v", stats)
	}
}
