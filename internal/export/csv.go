// Package export renders ticket listings as downloadable CSV.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// csvHeader is the fixed column set of a ticket export.
const csvHeader = "ID,Title,Description,Status,Priority,Category,Created At,Student Name"

// unknownStudent is used when a ticket's owner has no resolvable profile.
const unknownStudent = "Unknown"

// WriteTickets writes the header line followed by one row per ticket, in the
// given order. Title and description are always quoted with embedded quotes
// doubled; the remaining columns are enum values or timestamps and are
// written bare. N tickets produce N+1 lines.
func WriteTickets(w io.Writer, tickets []domain.Ticket, studentNames map[string]string) error {
	if _, err := fmt.Fprintln(w, csvHeader); err != nil {
		return err
	}
	for i := range tickets {
		t := &tickets[i]
		name, ok := studentNames[t.UserID]
		if !ok || name == "" {
			name = unknownStudent
		}
		row := strings.Join([]string{
			t.ID,
			quote(t.Title),
			quote(t.Description),
			string(t.Status),
			string(t.Priority),
			string(t.Category),
			t.CreatedAt.Format(time.DateTime),
			name,
		}, ",")
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}

// Filename returns the suggested download name, dated like
// tickets_export_2026-08-31.csv.
func Filename(now time.Time) string {
	return fmt.Sprintf("tickets_export_%s.csv", now.Format(time.DateOnly))
}

// NameIndex maps profile ids to full names for row rendering.
func NameIndex(profiles []domain.Profile) map[string]string {
	index := make(map[string]string, len(profiles))
	for i := range profiles {
		index[profiles[i].ID] = profiles[i].FullName
	}
	return index
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
