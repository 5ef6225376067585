package domain

import "time"

// TicketComment is one message in a ticket's reply thread. Comments are
// append-only: there is no edit or delete operation. UserName and Role are
// snapshots of the author at write time rather than live joins, so they can
// drift from the author's current profile; that is the audit-trail contract.
// Internal comments are visible to admins only.
type TicketComment struct {
	ID         string
	TicketID   string
	UserID     string
	UserName   string
	Role       Role
	Content    string
	CreatedAt  time.Time
	IsInternal bool
}
