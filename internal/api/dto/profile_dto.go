package dto

import "github.com/spec-kit/complaint-portal/internal/domain"

// RegisterRequest payload.
type RegisterRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	FullName string      `json:"full_name"`
	Role     domain.Role `json:"role"`
}

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the signed token and the caller's profile.
type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresAt string          `json:"expires_at"`
	Profile   ProfileResponse `json:"profile"`
}

// ProfileResponse is the wire form of a profile. The password hash never
// leaves the service.
type ProfileResponse struct {
	ID              string      `json:"id"`
	Email           string      `json:"email"`
	FullName        string      `json:"full_name"`
	Role            domain.Role `json:"role"`
	BatchID         *string     `json:"batch_id,omitempty"`
	AdmissionNumber *string     `json:"admission_number,omitempty"`
	Phone           *string     `json:"phone,omitempty"`
	Domain          *string     `json:"domain,omitempty"`
	JoiningDate     *string     `json:"joining_date,omitempty"`
	AvatarURL       *string     `json:"avatar_url,omitempty"`
}

// UpdateProfileRequest carries the mutable profile fields. Absent fields are
// left untouched.
type UpdateProfileRequest struct {
	FullName        *string `json:"full_name"`
	BatchID         *string `json:"batch_id"`
	AdmissionNumber *string `json:"admission_number"`
	Phone           *string `json:"phone"`
	Domain          *string `json:"domain"`
	JoiningDate     *string `json:"joining_date"`
	AvatarURL       *string `json:"avatar_url"`
}
