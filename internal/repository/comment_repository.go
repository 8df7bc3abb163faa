package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domain"
)

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

const commentSelect = `
	SELECT c.id::text, c.post_id::text, c.author_id::text, c.content, c.status, c.created_at,
		CASE WHEN pr.id IS NULL THEN NULL
		     ELSE json_build_object('id', pr.id, 'username', pr.username, 'avatar_url', pr.avatar_url)
		END
	FROM comments c
	LEFT JOIN profiles pr ON pr.id = c.author_id`

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var c domain.Comment
	if err := row.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Content, &c.Status, &c.CreatedAt, &c.Author); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByPost returns the comments of a post in creation order. An empty
// status returns every comment.
func (r *PostgresCommentRepository) ListByPost(ctx context.Context, postID, status string) ([]domain.Comment, error) {
	f := (&filter{}).add("c.post_id = ?::uuid", postID)
	if status != "" {
		f.Eq("c.status", status)
	}
	where, args := f.Where(1)

	rows, err := r.pool.Query(ctx, commentSelect+"\n"+where+"\nORDER BY c.created_at ASC", args...)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}

// Get returns one comment.
func (r *PostgresCommentRepository) Get(ctx context.Context, id string) (*domain.Comment, error) {
	c, err := scanComment(r.pool.QueryRow(ctx, commentSelect+"\nWHERE c.id = $1::uuid", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return c, nil
}

// Create inserts a comment and returns it with its author embedded.
func (r *PostgresCommentRepository) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO comments (post_id, author_id, content, status)
		VALUES ($1::uuid, $2::uuid, $3, $4)
		RETURNING id::text`, c.PostID, c.AuthorID, c.Content, c.Status).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFoundAfterMutation
	}
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return r.Get(ctx, id)
}

// UpdateStatus moves a comment to status.
func (r *PostgresCommentRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.Comment, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE comments SET status = $2 WHERE id = $1::uuid`, id, status)
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFoundAfterMutation
	}
	return r.Get(ctx, id)
}
