package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/repository"
	"github.com/spec-kit/complaint-portal/pkg/util"
)

// delayedProfileRepo misses the first N lookups, modelling a profile row that
// is not yet visible right after signup.
type delayedProfileRepo struct {
	profile *domain.Profile
	misses  int
	calls   int
}

func (r *delayedProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	r.calls++
	if r.calls <= r.misses {
		return nil, util.ErrNotFound
	}
	if r.profile == nil || r.profile.ID != id {
		return nil, util.ErrNotFound
	}
	return r.profile, nil
}

func (r *delayedProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return nil, util.ErrNotFound
}

func (r *delayedProfileRepo) List(ctx context.Context) ([]domain.Profile, error) {
	if r.profile == nil {
		return nil, nil
	}
	return []domain.Profile{*r.profile}, nil
}

func (r *delayedProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	r.profile = profile
	return nil
}

func (r *delayedProfileRepo) Update(ctx context.Context, id string, updates repository.ProfileUpdates) (*domain.Profile, error) {
	if r.profile == nil || r.profile.ID != id {
		return nil, util.ErrNotFound
	}
	if updates.FullName != nil {
		r.profile.FullName = *updates.FullName
	}
	return r.profile, nil
}

func newRetryProfileService(repo repository.ProfileRepository) *ProfileService {
	svc := NewProfileService(repo, zap.NewNop())
	svc.retryDelay = time.Millisecond
	return svc
}

func TestGetProfileRetriesOnceOnMiss(t *testing.T) {
	repo := &delayedProfileRepo{
		profile: &domain.Profile{ID: "p1", FullName: "Arjun"},
		misses:  1,
	}
	svc := newRetryProfileService(repo)

	profile, err := svc.GetProfile(context.Background(), "p1")
	if err != nil {
		t.Fatalf("expected retry to recover, got %v", err)
	}
	if profile.ID != "p1" {
		t.Fatalf("wrong profile: %+v", profile)
	}
	if repo.calls != 2 {
		t.Fatalf("expected exactly 2 lookups, got %d", repo.calls)
	}
}

func TestGetProfileGivesUpAfterOneRetry(t *testing.T) {
	repo := &delayedProfileRepo{misses: 10}
	svc := newRetryProfileService(repo)

	if _, err := svc.GetProfile(context.Background(), "p1"); !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if repo.calls != 2 {
		t.Fatalf("expected exactly 2 lookups, got %d", repo.calls)
	}
}

func TestGetProfileRetryHonoursContext(t *testing.T) {
	repo := &delayedProfileRepo{misses: 10}
	svc := NewProfileService(repo, zap.NewNop())
	svc.retryDelay = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.GetProfile(ctx, "p1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}
