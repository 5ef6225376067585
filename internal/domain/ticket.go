package domain

import "time"

// TicketStatus enumerates lifecycle states for complaints.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
)

// Valid reports whether the status is a known value. Transitions between
// valid statuses are intentionally unconstrained: an admin may move a ticket
// to any state, including reopening a resolved one.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved:
		return true
	}
	return false
}

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

// Valid reports whether the priority is a known value.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh:
		return true
	}
	return false
}

// Weight returns the fixed sort weight for the priority.
func (p TicketPriority) Weight() int {
	switch p {
	case TicketPriorityHigh:
		return 3
	case TicketPriorityMedium:
		return 2
	case TicketPriorityLow:
		return 1
	}
	return 0
}

// TicketCategory groups complaints by area.
type TicketCategory string

const (
	TicketCategoryCurriculum TicketCategory = "curriculum"
	TicketCategoryFacility   TicketCategory = "facility"
	TicketCategoryPlacement  TicketCategory = "placement"
	TicketCategoryOther      TicketCategory = "other"
)

// Valid reports whether the category is a known value.
func (c TicketCategory) Valid() bool {
	switch c {
	case TicketCategoryCurriculum, TicketCategoryFacility, TicketCategoryPlacement, TicketCategoryOther:
		return true
	}
	return false
}

// Categories lists the fixed buckets in display order.
func Categories() []TicketCategory {
	return []TicketCategory{TicketCategoryCurriculum, TicketCategoryFacility, TicketCategoryPlacement, TicketCategoryOther}
}

// Priorities lists the fixed buckets in display order.
func Priorities() []TicketPriority {
	return []TicketPriority{TicketPriorityHigh, TicketPriorityMedium, TicketPriorityLow}
}

// MaxTitleLength bounds ticket titles.
const MaxTitleLength = 100

// Ticket is a single student-filed complaint. The ID is the human-readable
// ticket code. UserID and CreatedAt are set once at creation and never
// modified afterwards.
type Ticket struct {
	ID            string
	CreatedAt     time.Time
	UserID        string
	Title         string
	Description   string
	Category      TicketCategory
	Priority      TicketPriority
	Status        TicketStatus
	AssignedTo    *string
	AttachmentURL *string
}
