package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domain"
)

// PostgresPostRepository implements PostRepository using PostgreSQL.
type PostgresPostRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPostRepository creates a new PostgresPostRepository.
func NewPostgresPostRepository(pool *pgxpool.Pool) *PostgresPostRepository {
	return &PostgresPostRepository{pool: pool}
}

const postColumns = `
	p.id::text, p.slug, p.title, p.content, p.excerpt, p.status, p.published_at,
	p.published_tz, p.show_attachments, p.cover_url, p.attachments, p.reading_minutes,
	p.tags::text[], p.author_id::text, p.created_at, p.updated_at`

const authorEmbed = `
	CASE WHEN pr.id IS NULL THEN NULL
	     ELSE json_build_object('id', pr.id, 'username', pr.username, 'avatar_url', pr.avatar_url)
	END`

const tagLinksEmbed = `
	COALESCE((
		SELECT json_agg(json_build_object(
			'post_id', tp.post_id,
			'tag_id', tp.tag_id,
			'tag', CASE WHEN t.id IS NULL THEN NULL
			            ELSE json_build_object('id', t.id, 'slug', t.slug, 'name', t.name, 'color', t.color)
			       END
		) ORDER BY tp.position, tp.tag_id)
		FROM tags_posts tp
		LEFT JOIN tags t ON t.id = tp.tag_id
		WHERE tp.post_id = p.id
	), '[]'::json)`

var orderClauses = map[domain.SortOrder]string{
	domain.SortPublishedDesc: "ORDER BY p.published_at DESC NULLS LAST, p.created_at DESC",
	domain.SortPublishedAsc:  "ORDER BY p.published_at ASC NULLS LAST, p.created_at ASC",
	domain.SortCreatedDesc:   "ORDER BY p.created_at DESC",
}

// scanPost scans postColumns, optionally followed by the author embed and
// the tag links embed, in that order.
func scanPost(row pgx.Row, withAuthor, withLinks bool) (*domain.Post, error) {
	var p domain.Post
	dest := []any{
		&p.ID, &p.Slug, &p.Title, &p.Content, &p.Excerpt, &p.Status, &p.PublishedAt,
		&p.PublishedTZ, &p.ShowAttachments, &p.CoverURL, &p.Attachments, &p.ReadingMinutes,
		&p.Tags, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
	}
	if withAuthor {
		dest = append(dest, &p.Author)
	}
	if withLinks {
		dest = append(dest, &p.TagLinks)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	p.Attachments = nonNil(p.Attachments)
	p.Tags = nonNil(p.Tags)
	return &p, nil
}

// buildListQuery renders the listing SQL for q.
func buildListQuery(q PostQuery) (string, []any) {
	f := &filter{}
	if q.Status != "" {
		f.Eq("p.status", q.Status)
	}
	if q.AuthorID != "" {
		f.add("p.author_id = ?::uuid", q.AuthorID)
	}
	if q.Keyword != "" {
		f.ILikeAny(q.Keyword, "p.title", "p.content", "p.excerpt")
	}
	if q.TagID != "" {
		f.Contains("p.tags", "uuid", q.TagID)
	}
	if q.StartDate != nil {
		f.Gte("p.published_at", *q.StartDate)
	}
	if q.EndDate != nil {
		f.Lte("p.published_at", *q.EndDate)
	}
	where, args := f.Where(1)

	order, ok := orderClauses[q.Sort]
	if !ok {
		order = orderClauses[domain.SortPublishedDesc]
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM posts p
		LEFT JOIN profiles pr ON pr.id = p.author_id
		%s
		%s`, postColumns, authorEmbed, tagLinksEmbed, where, order)
	return query, args
}

// List returns the posts matching q with author and tag links embedded.
func (r *PostgresPostRepository) List(ctx context.Context, q PostQuery) ([]domain.Post, error) {
	query, args := buildListQuery(q)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows, true, true)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

func (r *PostgresPostRepository) getOne(ctx context.Context, where string, arg any) (*domain.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM posts p
		LEFT JOIN profiles pr ON pr.id = p.author_id
		WHERE %s`, postColumns, authorEmbed, where)

	p, err := scanPost(r.pool.QueryRow(ctx, query, arg), true, false)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

// GetBySlug returns one post with its author embedded.
func (r *PostgresPostRepository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	return r.getOne(ctx, "p.slug = $1", slug)
}

// GetByID returns one post with its author embedded.
func (r *PostgresPostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	return r.getOne(ctx, "p.id = $1::uuid", id)
}

// SlugExists reports whether another post already uses slug.
func (r *PostgresPostRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM posts WHERE slug = $1 AND id IS DISTINCT FROM NULLIF($2, '')::uuid
		)`, slug, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return exists, nil
}

// replaceTags rewrites the join rows of a post inside tx.
func replaceTags(ctx context.Context, tx pgx.Tx, postID string, tagIDs []string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM tags_posts WHERE post_id = $1::uuid`, postID); err != nil {
		return fmt.Errorf("delete tag links: %w", err)
	}
	if len(tagIDs) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO tags_posts (post_id, tag_id, position)
		SELECT $1::uuid, t.id::uuid, t.ord::int
		FROM unnest($2::text[]) WITH ORDINALITY AS t(id, ord)
		ON CONFLICT (post_id, tag_id) DO NOTHING`, postID, tagIDs)
	if err != nil {
		return fmt.Errorf("insert tag links: %w", err)
	}
	return nil
}

// Create inserts a post and its tag links in one transaction.
func (r *PostgresPostRepository) Create(ctx context.Context, p *domain.Post, tagIDs []string) (*domain.Post, error) {
	if tagIDs == nil {
		tagIDs = []string{}
	}
	attachments := p.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	created, err := scanPost(tx.QueryRow(ctx, `
		INSERT INTO posts AS p (slug, title, content, excerpt, status, published_at, published_tz,
			show_attachments, cover_url, attachments, reading_minutes, tags, author_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12::text[]::uuid[], $13::uuid)
		RETURNING `+postColumns,
		p.Slug, p.Title, p.Content, p.Excerpt, p.Status, p.PublishedAt, p.PublishedTZ,
		p.ShowAttachments, p.CoverURL, attachments, p.ReadingMinutes, tagIDs, p.AuthorID,
	), false, false)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFoundAfterMutation
	}
	if isUniqueViolation(err) {
		return nil, domain.ErrSlugExists
	}
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	if err := replaceTags(ctx, tx, created.ID, tagIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return created, nil
}

// Update writes a post owned by p.AuthorID; tag links are replaced in the
// same transaction when tagIDs is non-nil.
func (r *PostgresPostRepository) Update(ctx context.Context, p *domain.Post, tagIDs []string) (*domain.Post, error) {
	attachments := p.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	updated, err := scanPost(tx.QueryRow(ctx, `
		UPDATE posts AS p SET
			slug = $3, title = $4, content = $5, excerpt = $6, status = $7, published_at = $8,
			published_tz = $9, show_attachments = $10, cover_url = $11, attachments = $12,
			reading_minutes = $13,
			tags = CASE WHEN $14::boolean THEN $15::text[]::uuid[] ELSE p.tags END,
			updated_at = NOW()
		WHERE p.id = $1::uuid AND p.author_id = $2::uuid
		RETURNING `+postColumns,
		p.ID, p.AuthorID,
		p.Slug, p.Title, p.Content, p.Excerpt, p.Status, p.PublishedAt,
		p.PublishedTZ, p.ShowAttachments, p.CoverURL, attachments,
		p.ReadingMinutes,
		tagIDs != nil, nonNil(tagIDs),
	), false, false)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFoundAfterMutation
	}
	if isUniqueViolation(err) {
		return nil, domain.ErrSlugExists
	}
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	if tagIDs != nil {
		if err := replaceTags(ctx, tx, updated.ID, tagIDs); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, nil
}

// Delete removes a post owned by authorID.
func (r *PostgresPostRepository) Delete(ctx context.Context, id, authorID string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM posts WHERE id = $1::uuid AND author_id = $2::uuid`, id, authorID)
	if err != nil {
		return 0, fmt.Errorf("delete post: %w", err)
	}
	return tag.RowsAffected(), nil
}

// SetAttachments persists the attachment list of a post owned by authorID.
func (r *PostgresPostRepository) SetAttachments(ctx context.Context, id, authorID string, attachments []string) (*domain.Post, error) {
	p, err := scanPost(r.pool.QueryRow(ctx, `
		UPDATE posts AS p SET attachments = $3, updated_at = NOW()
		WHERE p.id = $1::uuid AND p.author_id = $2::uuid
		RETURNING `+postColumns, id, authorID, nonNil(attachments)), false, false)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFoundAfterMutation
	}
	if err != nil {
		return nil, fmt.Errorf("update attachments: %w", err)
	}
	return p, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
