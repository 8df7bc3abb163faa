package service

import (
	"context"

	"blog-backend/internal/domain"
)

// PostServiceInterface defines the interface for post operations.
// Used for dependency injection and mocking in tests.
type PostServiceInterface interface {
	ListPosts(ctx context.Context, f domain.PostFilter) ([]domain.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (*domain.Post, error)
	ListMyPosts(ctx context.Context) ([]domain.Post, error)
	ListTags(ctx context.Context) ([]domain.Tag, error)
	CreatePost(ctx context.Context, in *domain.PostInput) (*domain.Post, error)
	UpdatePost(ctx context.Context, id string, in *domain.PostInput) (*domain.Post, error)
	DeletePost(ctx context.Context, id string) error
	DeleteAttachment(ctx context.Context, postID, url string) (*domain.Post, error)
}

// CommentServiceInterface defines the interface for comment operations.
// Used for dependency injection and mocking in tests.
type CommentServiceInterface interface {
	FetchComments(ctx context.Context, postID string) ([]domain.Comment, error)
	CreateComment(ctx context.Context, postID, content string) (*domain.Comment, error)
	ListForModeration(ctx context.Context, postID string) ([]domain.Comment, error)
	Moderate(ctx context.Context, commentID, status string) (*domain.Comment, error)
}

var (
	_ PostServiceInterface    = (*PostService)(nil)
	_ CommentServiceInterface = (*CommentService)(nil)
)
