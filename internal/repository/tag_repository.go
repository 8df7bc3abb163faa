package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domain"
)

// PostgresTagRepository implements TagRepository using PostgreSQL.
type PostgresTagRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTagRepository creates a new PostgresTagRepository.
func NewPostgresTagRepository(pool *pgxpool.Pool) *PostgresTagRepository {
	return &PostgresTagRepository{pool: pool}
}

func collectTags(rows pgx.Rows) ([]domain.Tag, error) {
	defer rows.Close()
	tags := make([]domain.Tag, 0)
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Slug, &t.Name, &t.Color); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	return tags, nil
}

// List returns every tag ordered by name.
func (r *PostgresTagRepository) List(ctx context.Context) ([]domain.Tag, error) {
	rows, err := r.pool.Query(ctx, `SELECT id::text, slug, name, color FROM tags ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	return collectTags(rows)
}

// IDBySlug resolves a tag slug.
func (r *PostgresTagRepository) IDBySlug(ctx context.Context, slug string) (string, bool, error) {
	var id string
	err := r.pool.QueryRow(ctx, `SELECT id::text FROM tags WHERE slug = $1`, slug).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup tag: %w", err)
	}
	return id, true, nil
}

// GetByIDs returns the tags with the given ids in the order of ids.
// Unknown ids are skipped.
func (r *PostgresTagRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return []domain.Tag{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT t.id::text, t.slug, t.name, t.color
		FROM unnest($1::text[]) WITH ORDINALITY AS want(id, ord)
		JOIN tags t ON t.id::text = want.id
		ORDER BY want.ord`, ids)
	if err != nil {
		return nil, fmt.Errorf("query tags by id: %w", err)
	}
	return collectTags(rows)
}
