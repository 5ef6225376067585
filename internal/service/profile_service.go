package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/repository"
	"github.com/spec-kit/complaint-portal/pkg/util"
)

// ProfileService exposes profile retrieval and the restricted-field update.
type ProfileService struct {
	profiles   repository.ProfileRepository
	logger     *zap.Logger
	retryDelay time.Duration
}

// NewProfileService constructs the service.
func NewProfileService(profiles repository.ProfileRepository, logger *zap.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, logger: logger, retryDelay: time.Second}
}

// GetProfile fetches a profile by id. A missing row is retried exactly once
// after a fixed delay: right after signup the profile may not be visible to
// this reader yet.
func (s *ProfileService) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, id)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, util.ErrNotFound) {
		return nil, err
	}

	s.logger.Info("profile not found, retrying once", zap.String("profile_id", id))
	select {
	case <-time.After(s.retryDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	profile, err = s.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			s.logger.Warn("profile still not found after retry", zap.String("profile_id", id))
		}
		return nil, err
	}
	return profile, nil
}

// UpdateProfile merges the allowed fields into the profile. Role and email
// never change through this path.
func (s *ProfileService) UpdateProfile(ctx context.Context, id string, updates repository.ProfileUpdates) (*domain.Profile, error) {
	return s.profiles.Update(ctx, id, updates)
}

// ListProfiles returns every profile, used by the admin dashboard to resolve
// student names.
func (s *ProfileService) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles.List(ctx)
}
