package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domain"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// PostgresProfileRepository implements ProfileRepository using PostgreSQL.
type PostgresProfileRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository.
func NewPostgresProfileRepository(pool *pgxpool.Pool) *PostgresProfileRepository {
	return &PostgresProfileRepository{pool: pool}
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	if err := row.Scan(&p.ID, &p.Username, &p.Email, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// Get returns one profile.
func (r *PostgresProfileRepository) Get(ctx context.Context, id string) (*domain.Profile, error) {
	p, err := scanProfile(r.pool.QueryRow(ctx, `
		SELECT id::text, username, email, avatar_url, created_at, updated_at
		FROM profiles WHERE id = $1::uuid`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound("profile not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// EmailByUsername resolves the e-mail of a username, case-insensitively.
func (r *PostgresProfileRepository) EmailByUsername(ctx context.Context, username string) (string, bool, error) {
	var email string
	err := r.pool.QueryRow(ctx,
		`SELECT email FROM profiles WHERE lower(username) = lower($1)`, username).Scan(&email)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup username: %w", err)
	}
	return email, email != "", nil
}

// UsernameExists reports whether a profile other than excludeID uses username.
func (r *PostgresProfileRepository) UsernameExists(ctx context.Context, username, excludeID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM profiles
			WHERE lower(username) = lower($1) AND id IS DISTINCT FROM NULLIF($2, '')::uuid
		)`, username, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return exists, nil
}

// Create inserts a profile. An existing profile with the same id is kept.
func (r *PostgresProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO profiles (id, username, email, avatar_url)
		VALUES ($1::uuid, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`, p.ID, p.Username, p.Email, p.AvatarURL)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// Update applies the non-nil fields of u.
func (r *PostgresProfileRepository) Update(ctx context.Context, id string, u domain.ProfileUpdate) (*domain.Profile, error) {
	p, err := scanProfile(r.pool.QueryRow(ctx, `
		UPDATE profiles SET
			username   = COALESCE($2, username),
			avatar_url = COALESCE($3, avatar_url),
			updated_at = NOW()
		WHERE id = $1::uuid
		RETURNING id::text, username, email, avatar_url, created_at, updated_at`,
		id, u.Username, u.AvatarURL))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFoundAfterMutation
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return p, nil
}
