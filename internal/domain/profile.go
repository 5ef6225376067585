package domain

import "time"

// Role distinguishes students from portal staff.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// Profile is the identity and contact record for a portal user. Role is
// immutable after creation; the student-only fields stay empty for admins.
type Profile struct {
	ID              string
	Email           string
	FullName        string
	Role            Role
	PasswordHash    string
	BatchID         *string
	AdmissionNumber *string
	Phone           *string
	Domain          *string
	JoiningDate     *string
	AvatarURL       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
