package service

import (
	"context"
	"log/slog"
	"strings"

	"blog-backend/internal/domain"
	"blog-backend/internal/gateway"
	"blog-backend/internal/logger"
	"blog-backend/internal/repository"
	"blog-backend/internal/validator"
)

// CommentOptions configures a CommentService.
type CommentOptions struct {
	// Moderation creates comments pending instead of approved.
	Moderation bool
}

// CommentService reads, writes and moderates comments.
type CommentService struct {
	comments  repository.CommentRepository
	posts     repository.PostRepository
	validator *validator.Validator
	opts      CommentOptions
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	comments repository.CommentRepository,
	posts repository.PostRepository,
	v *validator.Validator,
	opts CommentOptions,
) *CommentService {
	return &CommentService{comments: comments, posts: posts, validator: v, opts: opts}
}

// FetchComments returns the approved comments of a post, oldest first. A
// post the caller may not read yields ErrPostNotFound.
func (s *CommentService) FetchComments(ctx context.Context, postID string) ([]domain.Comment, error) {
	if err := s.readablePost(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByPost(ctx, postID, domain.CommentApproved)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch comments",
			slog.String("post_id", postID),
			slog.String("error", err.Error()))
		return nil, err
	}
	return comments, nil
}

// CreateComment adds a comment by the acting user to a post they may read.
func (s *CommentService) CreateComment(ctx context.Context, postID, content string) (*domain.Comment, error) {
	actor, ok := gateway.ActorFromContext(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}

	status := domain.CommentApproved
	if s.opts.Moderation {
		status = domain.CommentPending
	}
	c := &domain.Comment{
		PostID:   postID,
		AuthorID: actor.UserID,
		Content:  strings.TrimSpace(content),
		Status:   status,
	}
	if err := s.validator.ValidateComment(c); err != nil {
		return nil, validator.AsDomainError(err)
	}
	if err := s.readablePost(ctx, postID); err != nil {
		return nil, err
	}

	created, err := s.comments.Create(ctx, c)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create comment",
			slog.String("post_id", postID),
			slog.String("error", err.Error()))
		return nil, err
	}
	return created, nil
}

// ListForModeration returns every comment of a post, whatever its status.
// Only the post's author may call it.
func (s *CommentService) ListForModeration(ctx context.Context, postID string) ([]domain.Comment, error) {
	if _, err := s.ownPost(ctx, postID); err != nil {
		return nil, err
	}
	return s.comments.ListByPost(ctx, postID, "")
}

// Moderate moves a comment to approved or rejected. Only the author of the
// commented post may moderate.
func (s *CommentService) Moderate(ctx context.Context, commentID, status string) (*domain.Comment, error) {
	if err := s.validator.ValidateModeration(status); err != nil {
		return nil, validator.AsDomainError(err)
	}

	c, err := s.comments.Get(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownPost(ctx, c.PostID); err != nil {
		return nil, err
	}
	if !domain.CanTransition(c.Status, status) {
		return nil, domain.Validationf("comment cannot move from %s to %s", c.Status, status)
	}

	updated, err := s.comments.UpdateStatus(ctx, commentID, status)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to moderate comment",
			slog.String("comment_id", commentID),
			slog.String("error", err.Error()))
		return nil, err
	}
	return updated, nil
}

func (s *CommentService) ownPost(ctx context.Context, postID string) (*domain.Post, error) {
	actor, ok := gateway.ActorFromContext(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p.AuthorID != actor.UserID {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

// readablePost fails with ErrPostNotFound unless the caller may read the
// post.
func (s *CommentService) readablePost(ctx context.Context, postID string) error {
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	actor, _ := gateway.ActorFromContext(ctx)
	if !p.VisibleTo(actor.UserID) {
		return domain.ErrPostNotFound
	}
	return nil
}
