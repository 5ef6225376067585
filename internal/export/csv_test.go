package export

import (
	"strings"
	"testing"
	"time"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

func fixedTime() time.Time {
	return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
}

func TestWriteTicketsLineCount(t *testing.T) {
	tickets := []domain.Ticket{
		{ID: "TKT-AAA111", Title: "a", Description: "b", Status: domain.TicketStatusOpen, Priority: domain.TicketPriorityLow, Category: domain.TicketCategoryOther, CreatedAt: fixedTime(), UserID: "u1"},
		{ID: "TKT-BBB222", Title: "c", Description: "d", Status: domain.TicketStatusResolved, Priority: domain.TicketPriorityHigh, Category: domain.TicketCategoryFacility, CreatedAt: fixedTime(), UserID: "u2"},
	}
	var out strings.Builder
	if err := WriteTickets(&out, tickets, map[string]string{"u1": "Arjun"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != len(tickets)+1 {
		t.Fatalf("expected %d lines, got %d", len(tickets)+1, len(lines))
	}
	if lines[0] != "ID,Title,Description,Status,Priority,Category,Created At,Student Name" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if !strings.HasSuffix(lines[1], ",Arjun") {
		t.Fatalf("row 1 missing resolved student name: %s", lines[1])
	}
	if !strings.HasSuffix(lines[2], ",Unknown") {
		t.Fatalf("row 2 should fall back to Unknown: %s", lines[2])
	}
}

func TestWriteTicketsQuotesTitleAndDescription(t *testing.T) {
	tickets := []domain.Ticket{{
		ID:          "TKT-CCC333",
		Title:       `Broken "smart" board`,
		Description: "screen cracked, won't turn on",
		Status:      domain.TicketStatusOpen,
		Priority:    domain.TicketPriorityMedium,
		Category:    domain.TicketCategoryFacility,
		CreatedAt:   fixedTime(),
		UserID:      "u1",
	}}
	var out strings.Builder
	if err := WriteTickets(&out, tickets, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	row := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")[1]
	if !strings.Contains(row, `"Broken ""smart"" board"`) {
		t.Fatalf("embedded quotes not doubled: %s", row)
	}
	if !strings.Contains(row, `"screen cracked, won't turn on"`) {
		t.Fatalf("description not quoted: %s", row)
	}
	if !strings.Contains(row, "2026-03-14 09:30:00") {
		t.Fatalf("timestamp format wrong: %s", row)
	}
}

func TestWriteTicketsEmptyCollection(t *testing.T) {
	var out strings.Builder
	if err := WriteTickets(&out, nil, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	if out.String() != "ID,Title,Description,Status,Priority,Category,Created At,Student Name\n" {
		t.Fatalf("expected header only, got %q", out.String())
	}
}

func TestFilename(t *testing.T) {
	got := Filename(fixedTime())
	if got != "tickets_export_2026-03-14.csv" {
		t.Fatalf("unexpected filename: %s", got)
	}
}

func TestNameIndex(t *testing.T) {
	index := NameIndex([]domain.Profile{
		{ID: "u1", FullName: "Arjun Kumar"},
		{ID: "u2", FullName: "Priya S"},
	})
	if index["u1"] != "Arjun Kumar" || index["u2"] != "Priya S" {
		t.Fatalf("unexpected index: %v", index)
	}
}
