package jsonstore

import (
	"time"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// The on-disk layout is the literal serialized form of the portal records:
// snake_case keys, ISO-8601 timestamps. There is no schema version field.

type ticketRecord struct {
	ID            string  `json:"id"`
	CreatedAt     string  `json:"created_at"`
	UserID        string  `json:"user_id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Priority      string  `json:"priority"`
	Status        string  `json:"status"`
	AssignedTo    *string `json:"assigned_to,omitempty"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
}

type commentRecord struct {
	ID         string `json:"id"`
	TicketID   string `json:"ticket_id"`
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	Role       string `json:"role"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
	IsInternal bool   `json:"is_internal"`
}

type profileRecord struct {
	ID              string  `json:"id"`
	Email           string  `json:"email"`
	FullName        string  `json:"full_name"`
	Role            string  `json:"role"`
	PasswordHash    string  `json:"password_hash,omitempty"`
	BatchID         *string `json:"batch_id,omitempty"`
	AdmissionNumber *string `json:"admission_number,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Domain          *string `json:"domain,omitempty"`
	JoiningDate     *string `json:"joining_date,omitempty"`
	AvatarURL       *string `json:"avatar_url,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

func ticketToRecord(t *domain.Ticket) ticketRecord {
	return ticketRecord{
		ID:            t.ID,
		CreatedAt:     t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UserID:        t.UserID,
		Title:         t.Title,
		Description:   t.Description,
		Category:      string(t.Category),
		Priority:      string(t.Priority),
		Status:        string(t.Status),
		AssignedTo:    t.AssignedTo,
		AttachmentURL: t.AttachmentURL,
	}
}

func ticketFromRecord(r ticketRecord) domain.Ticket {
	return domain.Ticket{
		ID:            r.ID,
		CreatedAt:     parseTime(r.CreatedAt),
		UserID:        r.UserID,
		Title:         r.Title,
		Description:   r.Description,
		Category:      domain.TicketCategory(r.Category),
		Priority:      domain.TicketPriority(r.Priority),
		Status:        domain.TicketStatus(r.Status),
		AssignedTo:    r.AssignedTo,
		AttachmentURL: r.AttachmentURL,
	}
}

func commentToRecord(c *domain.TicketComment) commentRecord {
	return commentRecord{
		ID:         c.ID,
		TicketID:   c.TicketID,
		UserID:     c.UserID,
		UserName:   c.UserName,
		Role:       string(c.Role),
		Content:    c.Content,
		CreatedAt:  c.CreatedAt.UTC().Format(time.RFC3339Nano),
		IsInternal: c.IsInternal,
	}
}

func commentFromRecord(r commentRecord) domain.TicketComment {
	return domain.TicketComment{
		ID:         r.ID,
		TicketID:   r.TicketID,
		UserID:     r.UserID,
		UserName:   r.UserName,
		Role:       domain.Role(r.Role),
		Content:    r.Content,
		CreatedAt:  parseTime(r.CreatedAt),
		IsInternal: r.IsInternal,
	}
}

func profileToRecord(p *domain.Profile) profileRecord {
	return profileRecord{
		ID:              p.ID,
		Email:           p.Email,
		FullName:        p.FullName,
		Role:            string(p.Role),
		PasswordHash:    p.PasswordHash,
		BatchID:         p.BatchID,
		AdmissionNumber: p.AdmissionNumber,
		Phone:           p.Phone,
		Domain:          p.Domain,
		JoiningDate:     p.JoiningDate,
		AvatarURL:       p.AvatarURL,
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func profileFromRecord(r profileRecord) domain.Profile {
	return domain.Profile{
		ID:              r.ID,
		Email:           r.Email,
		FullName:        r.FullName,
		Role:            domain.Role(r.Role),
		PasswordHash:    r.PasswordHash,
		BatchID:         r.BatchID,
		AdmissionNumber: r.AdmissionNumber,
		Phone:           r.Phone,
		Domain:          r.Domain,
		JoiningDate:     r.JoiningDate,
		AvatarURL:       r.AvatarURL,
		CreatedAt:       parseTime(r.CreatedAt),
		UpdatedAt:       parseTime(r.UpdatedAt),
	}
}

func parseTime(val string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, val)
	if err != nil {
		return time.Time{}
	}
	return t
}
