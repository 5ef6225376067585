package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/complaint-portal/internal/config"
	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/repository"
	"github.com/spec-kit/complaint-portal/pkg/util"
)

func openTestStore(t *testing.T, dir string) *Store {
	t.Helper()
	return Open(config.StoreConfig{DataDir: dir}, zap.NewNop())
}

func newTicket(id, userID string, createdAt time.Time) *domain.Ticket {
	return &domain.Ticket{
		ID:          id,
		CreatedAt:   createdAt,
		UserID:      userID,
		Title:       "title " + id,
		Description: "description " + id,
		Category:    domain.TicketCategoryOther,
		Priority:    domain.TicketPriorityMedium,
		Status:      domain.TicketStatusOpen,
	}
}

func TestListReturnsNewestFirst(t *testing.T) {
	store := openTestStore(t, t.TempDir())
	ctx := context.Background()
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	for i, id := range []string{"TKT-OLD111", "TKT-MID222", "TKT-NEW333"} {
		if err := store.Tickets().Create(ctx, newTicket(id, "u1", base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	tickets, err := store.Tickets().List(ctx, repository.TicketFilter{}, repository.TicketSort{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tickets) != 3 {
		t.Fatalf("expected 3 tickets, got %d", len(tickets))
	}
	if tickets[0].ID != "TKT-NEW333" || tickets[2].ID != "TKT-OLD111" {
		t.Fatalf("tickets not newest first: %s, %s, %s", tickets[0].ID, tickets[1].ID, tickets[2].ID)
	}
}

func TestListByUserRoundTrip(t *testing.T) {
	store := openTestStore(t, t.TempDir())
	ctx := context.Background()
	now := time.Now()

	if err := store.Tickets().Create(ctx, newTicket("TKT-MINE11", "u1", now)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Tickets().Create(ctx, newTicket("TKT-OTHER1", "u2", now)); err != nil {
		t.Fatalf("create: %v", err)
	}

	mine, err := store.Tickets().ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	count := 0
	for _, ticket := range mine {
		if ticket.ID == "TKT-MINE11" {
			count++
		}
		if ticket.UserID != "u1" {
			t.Fatalf("foreign ticket in listing: %s", ticket.ID)
		}
	}
	if count != 1 {
		t.Fatalf("expected new ticket exactly once, saw it %d times", count)
	}
}

func TestUpdateStatusInPlace(t *testing.T) {
	store := openTestStore(t, t.TempDir())
	ctx := context.Background()

	if err := store.Tickets().Create(ctx, newTicket("TKT-STAT01", "u1", time.Now())); err != nil {
		t.Fatalf("create: %v", err)
	}
	updated, err := store.Tickets().UpdateStatus(ctx, "TKT-STAT01", domain.TicketStatusResolved)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != domain.TicketStatusResolved {
		t.Fatalf("expected resolved, got %s", updated.Status)
	}

	got, err := store.Tickets().GetByID(ctx, "TKT-STAT01")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != domain.TicketStatusResolved {
		t.Fatalf("status not persisted in place: %s", got.Status)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	store := openTestStore(t, t.TempDir())
	if _, err := store.Tickets().UpdateStatus(context.Background(), "TKT-MISSIN", domain.TicketStatusResolved); err != util.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStatsPartitionTotal(t *testing.T) {
	store := openTestStore(t, t.TempDir())
	ctx := context.Background()
	now := time.Now()

	statuses := []domain.TicketStatus{
		domain.TicketStatusOpen,
		domain.TicketStatusOpen,
		domain.TicketStatusInProgress,
		domain.TicketStatusResolved,
	}
	for i, status := range statuses {
		ticket := newTicket("TKT-STATS"+string(rune('0'+i)), "u1", now)
		ticket.Status = status
		if err := store.Tickets().Create(ctx, ticket); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	stats, err := store.Tickets().Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	all, err := store.Tickets().List(ctx, repository.TicketFilter{}, repository.TicketSort{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if stats.Total != len(all) {
		t.Fatalf("total %d != collection size %d", stats.Total, len(all))
	}
	if stats.Open+stats.InProgress+stats.Resolved != stats.Total {
		t.Fatalf("status counts %d+%d+%d do not partition total %d", stats.Open, stats.InProgress, stats.Resolved, stats.Total)
	}
	if stats.Open != 2 || stats.InProgress != 1 || stats.Resolved != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestCommentsOrderedAscending(t *testing.T) {
	store := openTestStore(t, t.TempDir())
	ctx := context.Background()
	base := time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)

	// inserted out of order on purpose
	second := &domain.TicketComment{ID: "comment-2", TicketID: "TKT-TALK01", UserID: "u1", UserName: "Arjun", Role: domain.RoleStudent, Content: "later", CreatedAt: base.Add(time.Minute)}
	first := &domain.TicketComment{ID: "comment-1", TicketID: "TKT-TALK01", UserID: "a1", UserName: "Staff", Role: domain.RoleAdmin, Content: "earlier", CreatedAt: base}
	for _, comment := range []*domain.TicketComment{second, first} {
		if err := store.Comments().Create(ctx, comment); err != nil {
			t.Fatalf("create comment: %v", err)
		}
	}

	thread, err := store.Comments().ListByTicket(ctx, "TKT-TALK01")
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(thread) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(thread))
	}
	if thread[0].ID != "comment-1" || thread[1].ID != "comment-2" {
		t.Fatalf("thread not oldest first: %s, %s", thread[0].ID, thread[1].ID)
	}
}

func TestCollectionsSurviveReload(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store := openTestStore(t, dir)
	ticket := newTicket("TKT-DURABL", "u1", time.Date(2026, 4, 3, 8, 0, 0, 0, time.UTC))
	attachment := "/uploads/photo.png"
	ticket.AttachmentURL = &attachment
	if err := store.Tickets().Create(ctx, ticket); err != nil {
		t.Fatalf("create: %v", err)
	}
	comment := &domain.TicketComment{ID: "comment-r", TicketID: ticket.ID, UserID: "u1", UserName: "Arjun", Role: domain.RoleStudent, Content: "still there?", CreatedAt: time.Now()}
	if err := store.Comments().Create(ctx, comment); err != nil {
		t.Fatalf("create comment: %v", err)
	}

	reopened := openTestStore(t, dir)
	got, err := reopened.Tickets().GetByID(ctx, "TKT-DURABL")
	if err != nil {
		t.Fatalf("get after reload: %v", err)
	}
	if got.Title != ticket.Title || got.Status != domain.TicketStatusOpen {
		t.Fatalf("ticket fields lost on reload: %+v", got)
	}
	if got.AttachmentURL == nil || *got.AttachmentURL != attachment {
		t.Fatalf("attachment url lost on reload")
	}
	thread, err := reopened.Comments().ListByTicket(ctx, ticket.ID)
	if err != nil || len(thread) != 1 {
		t.Fatalf("comments lost on reload: %v (%d)", err, len(thread))
	}
}

func TestCorruptFileFallsBackToEmpty(t *testing.T) {
	dir := t.TempDir()
	store := openTestStore(t, dir)
	if err := store.Tickets().Create(context.Background(), newTicket("TKT-CORPT1", "u1", time.Now())); err != nil {
		t.Fatalf("create: %v", err)
	}

	// clobber the mirror file
	if err := os.WriteFile(filepath.Join(dir, ticketsFile), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("clobber: %v", err)
	}

	reopened := openTestStore(t, dir)
	tickets, err := reopened.Tickets().List(context.Background(), repository.TicketFilter{}, repository.TicketSort{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tickets) != 0 {
		t.Fatalf("expected empty fallback, got %d tickets", len(tickets))
	}
}

func TestProfileUpdateMergesFields(t *testing.T) {
	store := openTestStore(t, t.TempDir())
	ctx := context.Background()

	profile := &domain.Profile{ID: "u1", Email: "arjun@example.com", FullName: "Arjun Kumar", Role: domain.RoleStudent, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	if err := store.Profiles().Create(ctx, profile); err != nil {
		t.Fatalf("create profile: %v", err)
	}

	phone := "+91 98765 43210"
	updated, err := store.Profiles().Update(ctx, "u1", repository.ProfileUpdates{Phone: &phone})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Phone == nil || *updated.Phone != phone {
		t.Fatalf("phone not merged")
	}
	if updated.FullName != "Arjun Kumar" {
		t.Fatalf("untouched field changed: %s", updated.FullName)
	}
}

func TestDuplicateEmailRejected(t *testing.T) {
	store := openTestStore(t, t.TempDir())
	ctx := context.Background()

	first := &domain.Profile{ID: "u1", Email: "same@example.com", FullName: "First", Role: domain.RoleStudent}
	if err := store.Profiles().Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}
	second := &domain.Profile{ID: "u2", Email: "Same@Example.com", FullName: "Second", Role: domain.RoleStudent}
	if err := store.Profiles().Create(ctx, second); err == nil {
		t.Fatalf("expected duplicate email to be rejected")
	}
}
