package jsonstore

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/repository"
	"github.com/spec-kit/complaint-portal/pkg/util"
)

// ProfileRepository implements repository.ProfileRepository over the store.
//
// Profile creation is mirrored to disk (signup must survive a restart), but
// Update deliberately merges in memory only: profile edits vanish on reload.
// That matches the portal's observed behavior and is documented as a known
// data-loss gap of this backend.
type ProfileRepository struct {
	store *Store
}

// GetByID finds a profile by id.
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.profiles {
		if r.store.profiles[i].ID == id {
			profile := r.store.profiles[i]
			return &profile, nil
		}
	}
	return nil, util.ErrNotFound
}

// GetByEmail finds a profile by email, case-insensitively.
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.profiles {
		if strings.EqualFold(r.store.profiles[i].Email, email) {
			profile := r.store.profiles[i]
			return &profile, nil
		}
	}
	return nil, util.ErrNotFound
}

// List returns a copy of every profile.
func (r *ProfileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	profiles := make([]domain.Profile, len(r.store.profiles))
	copy(profiles, r.store.profiles)
	return profiles, nil
}

// Create appends the profile and rewrites the mirror file.
func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.profiles {
		if strings.EqualFold(r.store.profiles[i].Email, profile.Email) {
			return util.NewConflict("email already registered", nil)
		}
	}
	r.store.profiles = append(r.store.profiles, *profile)
	r.store.persistProfiles()
	return nil
}

// Update merges the given fields into the matching profile. In-memory only.
func (r *ProfileRepository) Update(ctx context.Context, id string, updates repository.ProfileUpdates) (*domain.Profile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.profiles {
		if r.store.profiles[i].ID != id {
			continue
		}
		p := &r.store.profiles[i]
		if updates.FullName != nil {
			p.FullName = *updates.FullName
		}
		if updates.BatchID != nil {
			p.BatchID = updates.BatchID
		}
		if updates.AdmissionNumber != nil {
			p.AdmissionNumber = updates.AdmissionNumber
		}
		if updates.Phone != nil {
			p.Phone = updates.Phone
		}
		if updates.Domain != nil {
			p.Domain = updates.Domain
		}
		if updates.JoiningDate != nil {
			p.JoiningDate = updates.JoiningDate
		}
		if updates.AvatarURL != nil {
			p.AvatarURL = updates.AvatarURL
		}
		p.UpdatedAt = time.Now()
		profile := *p
		return &profile, nil
	}
	return nil, util.ErrNotFound
}
