package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/repository"
	"github.com/spec-kit/complaint-portal/pkg/util"
)

// ProfileRepository is the Postgres-backed profile store.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository instantiates the repository.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

const profileColumns = `id, email, full_name, role, password_hash, batch_id, admission_number, phone, domain, joining_date, avatar_url, created_at, updated_at`

func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	const query = `
        INSERT INTO profiles (id, email, full_name, role, password_hash, batch_id, admission_number, phone, domain, joining_date, avatar_url)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		profile.ID,
		profile.Email,
		profile.FullName,
		profile.Role,
		profile.PasswordHash,
		profile.BatchID,
		profile.AdmissionNumber,
		profile.Phone,
		profile.Domain,
		profile.JoiningDate,
		profile.AvatarURL,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE id=$1`, profileColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE LOWER(email)=LOWER($1)`, profileColumns)
	return r.fetchSingle(ctx, query, email)
}

func (r *ProfileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles ORDER BY created_at`, profileColumns)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Profile{}
	for rows.Next() {
		profile, err := scanProfile(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *profile)
	}
	return result, rows.Err()
}

// Update merges only the provided fields. Role and email cannot change.
func (r *ProfileRepository) Update(ctx context.Context, id string, updates repository.ProfileUpdates) (*domain.Profile, error) {
	sets := []string{}
	args := []any{}
	add := func(column string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}

	if updates.FullName != nil {
		add("full_name", *updates.FullName)
	}
	if updates.BatchID != nil {
		add("batch_id", updates.BatchID)
	}
	if updates.AdmissionNumber != nil {
		add("admission_number", updates.AdmissionNumber)
	}
	if updates.Phone != nil {
		add("phone", updates.Phone)
	}
	if updates.Domain != nil {
		add("domain", updates.Domain)
	}
	if updates.JoiningDate != nil {
		add("joining_date", updates.JoiningDate)
	}
	if updates.AvatarURL != nil {
		add("avatar_url", updates.AvatarURL)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}
	sets = append(sets, "updated_at=NOW()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE profiles SET %s WHERE id=$%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), profileColumns)
	return r.fetchSingle(ctx, query, args...)
}

func (r *ProfileRepository) fetchSingle(ctx context.Context, query string, args ...any) (*domain.Profile, error) {
	profile, err := scanProfile(r.pool.QueryRow(ctx, query, args...).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}

func scanProfile(scan func(dest ...any) error) (*domain.Profile, error) {
	var profile domain.Profile
	if err := scan(
		&profile.ID,
		&profile.Email,
		&profile.FullName,
		&profile.Role,
		&profile.PasswordHash,
		&profile.BatchID,
		&profile.AdmissionNumber,
		&profile.Phone,
		&profile.Domain,
		&profile.JoiningDate,
		&profile.AvatarURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}
