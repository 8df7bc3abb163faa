package repository

import (
	"context"
	"time"

	"blog-backend/internal/domain"
)

// PostQuery is a post listing with every filter resolved to column values.
// Zero values mean "no filter".
type PostQuery struct {
	Status    string
	Keyword   string
	TagID     string
	AuthorID  string
	StartDate *time.Time
	EndDate   *time.Time
	Sort      domain.SortOrder
}

// PostRepository defines methods for post data access.
type PostRepository interface {
	List(ctx context.Context, q PostQuery) ([]domain.Post, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	// Create inserts the post and its tag associations atomically.
	Create(ctx context.Context, p *domain.Post, tagIDs []string) (*domain.Post, error)
	// Update writes the post when it belongs to p.AuthorID. Tag associations
	// are replaced atomically when tagIDs is non-nil.
	Update(ctx context.Context, p *domain.Post, tagIDs []string) (*domain.Post, error)
	// Delete removes the post when it belongs to authorID and reports how
	// many rows were affected.
	Delete(ctx context.Context, id, authorID string) (int64, error)
	SetAttachments(ctx context.Context, id, authorID string, attachments []string) (*domain.Post, error)
}

// TagRepository defines methods for tag data access.
type TagRepository interface {
	List(ctx context.Context) ([]domain.Tag, error)
	// IDBySlug reports false when no tag has the slug.
	IDBySlug(ctx context.Context, slug string) (string, bool, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.Tag, error)
}

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	ListByPost(ctx context.Context, postID, status string) ([]domain.Comment, error)
	Get(ctx context.Context, id string) (*domain.Comment, error)
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Comment, error)
}

// ProfileRepository defines methods for profile data access.
type ProfileRepository interface {
	Get(ctx context.Context, id string) (*domain.Profile, error)
	// EmailByUsername reports false when no profile has the username.
	EmailByUsername(ctx context.Context, username string) (string, bool, error)
	UsernameExists(ctx context.Context, username, excludeID string) (bool, error)
	Create(ctx context.Context, p *domain.Profile) error
	Update(ctx context.Context, id string, u domain.ProfileUpdate) (*domain.Profile, error)
}
