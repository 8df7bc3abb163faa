package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"blog-backend/internal/domain"
	"blog-backend/internal/gateway"
	"blog-backend/internal/logger"
	"blog-backend/internal/metrics"
	"blog-backend/internal/repository"
	"blog-backend/internal/textutil"
	"blog-backend/internal/validator"
)

const (
	// ExcerptLength is the length of a derived excerpt.
	ExcerptLength = 200

	coverDir      = "covers"
	attachmentDir = "attachments"
)

// TagPolicy decides what a listing does when its tag slug matches no tag.
type TagPolicy string

const (
	// TagPolicyIgnore drops the tag filter and lists as if none was given.
	TagPolicyIgnore TagPolicy = "ignore"
	// TagPolicyEmpty returns an empty listing.
	TagPolicyEmpty  TagPolicy = "empty"
)

// PostOptions configures a PostService.
type PostOptions struct {
	TagPolicy TagPolicy
	// UploadRollback removes the blobs of a failed mutation.
	UploadRollback bool
}

// PostService implements listing, fetching and writing posts.
type PostService struct {
	posts     repository.PostRepository
	tags      repository.TagRepository
	store     gateway.ObjectStore
	validator *validator.Validator
	opts      PostOptions
	now       func() time.Time
}

// NewPostService creates a new PostService.
func NewPostService(
	posts repository.PostRepository,
	tags repository.TagRepository,
	store gateway.ObjectStore,
	v *validator.Validator,
	opts PostOptions,
) *PostService {
	if opts.TagPolicy == "" {
		opts.TagPolicy = TagPolicyIgnore
	}
	return &PostService{
		posts:     posts,
		tags:      tags,
		store:     store,
		validator: v,
		opts:      opts,
		now:       time.Now,
	}
}

// ListPosts returns the posts matching f, each with its tags resolved from
// the association rows.
func (s *PostService) ListPosts(ctx context.Context, f domain.PostFilter) ([]domain.Post, error) {
	q := repository.PostQuery{
		Status:    f.Status,
		Keyword:   strings.TrimSpace(f.Keyword),
		AuthorID:  f.AuthorID,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Sort:      f.Sort,
	}

	if slug := strings.TrimSpace(f.TagSlug); slug != "" {
		id, found, err := s.tags.IDBySlug(ctx, slug)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to resolve tag",
				slog.String("tag", slug),
				slog.String("error", err.Error()))
			return nil, err
		}
		switch {
		case found:
			q.TagID = id
		case s.opts.TagPolicy == TagPolicyEmpty:
			return []domain.Post{}, nil
		}
	}

	posts, err := s.posts.List(ctx, q)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list posts", slog.String("error", err.Error()))
		return nil, err
	}
	for i := range posts {
		posts[i].TagsInfo = domain.ResolveTags(posts[i].TagLinks)
	}
	return posts, nil
}

// GetPostBySlug returns one post with its author and the tags named by its
// tag id list.
func (s *PostService) GetPostBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	p, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	p.TagsInfo = []domain.Tag{}
	if len(p.Tags) > 0 {
		tags, err := s.tags.GetByIDs(ctx, p.Tags)
		if err != nil {
			logger.WarnContext(ctx, "Failed to load post tags",
				slog.String("post_id", p.ID),
				slog.String("error", err.Error()))
		} else {
			p.TagsInfo = tags
		}
	}
	return p, nil
}

// ListMyPosts returns every post of the acting user, newest first.
func (s *PostService) ListMyPosts(ctx context.Context) ([]domain.Post, error) {
	actor, ok := gateway.ActorFromContext(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	posts, err := s.posts.List(ctx, repository.PostQuery{AuthorID: actor.UserID, Sort: domain.SortCreatedDesc})
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].TagsInfo = domain.ResolveTags(posts[i].TagLinks)
	}
	return posts, nil
}

// ListTags returns all tags ordered by name.
func (s *PostService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	return s.tags.List(ctx)
}

// normalize fills the derived fields of in and validates it.
func (s *PostService) normalize(in *domain.PostInput) error {
	if in.Slug != "" {
		in.Slug = textutil.EnsureSlug(in.Slug)
	} else {
		in.Slug = textutil.SlugifyTransliterated(in.Title)
	}
	if strings.TrimSpace(in.Excerpt) == "" {
		in.Excerpt = textutil.Excerpt(in.Content, ExcerptLength)
	}
	if in.Status == "" {
		in.Status = domain.StatusDraft
	}
	if in.Status == domain.StatusPublished && in.PublishedAt == nil {
		now := s.now()
		in.PublishedAt = &now
	}
	return validator.AsDomainError(s.validator.ValidatePost(in))
}

// preparedFiles holds the validated files of one mutation.
type preparedFiles struct {
	cover       *preparedFile
	attachments []preparedFile
}

func prepareFiles(in *domain.PostInput) (preparedFiles, error) {
	var out preparedFiles
	if in.Cover != nil {
		f, err := prepareImage(*in.Cover, textutil.MaxCoverMB)
		if err != nil {
			return out, err
		}
		out.cover = &f
	}
	for _, a := range in.AttachmentFiles {
		f, err := prepareImage(a, textutil.MaxAttachmentMB)
		if err != nil {
			return out, err
		}
		out.attachments = append(out.attachments, f)
	}
	return out, nil
}

// upload stores the prepared files of userID and returns the resulting
// cover URL and attachment list, starting from the values already on the
// post.
func (s *PostService) upload(ctx context.Context, batch *uploadBatch, userID string, files preparedFiles, cover *string, attachments []string) (*string, []string, error) {
	attachments = slices.Clone(attachments)
	if attachments == nil {
		attachments = []string{}
	}
	if files.cover != nil {
		u, err := batch.put(ctx, coverDir+"/"+userID, *files.cover)
		if err != nil {
			return nil, nil, err
		}
		cover = &u
	}
	for _, f := range files.attachments {
		u, err := batch.put(ctx, attachmentDir+"/"+userID, f)
		if err != nil {
			return nil, nil, err
		}
		attachments = append(attachments, u)
	}
	return cover, attachments, nil
}

// keptFiles returns the stored cover and attachments an update starts from.
// URLs that are not stored on existing are never carried over.
func keptFiles(existing *domain.Post, in *domain.PostInput) (*string, []string) {
	cover := existing.CoverURL
	if in.CoverURL != nil && *in.CoverURL == "" {
		cover = nil
	}
	attachments := existing.Attachments
	if in.Attachments != nil {
		attachments = make([]string, 0, len(in.Attachments))
		for _, a := range in.Attachments {
			if slices.Contains(existing.Attachments, a) && !slices.Contains(attachments, a) {
				attachments = append(attachments, a)
			}
		}
	}
	return cover, attachments
}

func toPost(in *domain.PostInput, authorID string, cover *string, attachments []string) *domain.Post {
	return &domain.Post{
		Slug:            in.Slug,
		Title:           in.Title,
		Content:         in.Content,
		Excerpt:         in.Excerpt,
		Status:          in.Status,
		PublishedAt:     in.PublishedAt,
		PublishedTZ:     in.PublishedTZ,
		ShowAttachments: in.ShowAttachments,
		CoverURL:        cover,
		Attachments:     attachments,
		ReadingMinutes:  textutil.EstimateReadingMinutes(in.Content),
		AuthorID:        authorID,
	}
}

// CreatePost validates in, uploads its files and inserts the post together
// with its tag associations.
func (s *PostService) CreatePost(ctx context.Context, in *domain.PostInput) (p *domain.Post, err error) {
	start := time.Now()
	defer func() {
		metrics.ObservePostMutation("create", metrics.Result(err), time.Since(start).Seconds())
	}()

	actor, ok := gateway.ActorFromContext(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	if err := s.normalize(in); err != nil {
		return nil, err
	}

	exists, err := s.posts.SlugExists(ctx, in.Slug, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrSlugExists
	}

	files, err := prepareFiles(in)
	if err != nil {
		return nil, err
	}

	batch := newUploadBatch(s.store, gateway.BucketPosts, s.opts.UploadRollback)
	cover, attachments, err := s.upload(ctx, batch, actor.UserID, files, nil, nil)
	if err != nil {
		return nil, batch.fail(ctx, err)
	}

	tagIDs := in.Tags
	if tagIDs == nil {
		tagIDs = []string{}
	}
	created, err := s.posts.Create(ctx, toPost(in, actor.UserID, cover, attachments), tagIDs)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create post",
			slog.String("slug", in.Slug),
			slog.String("error", err.Error()))
		return nil, batch.fail(ctx, err)
	}
	return created, nil
}

// UpdatePost rewrites a post of the acting user. Stored cover and
// attachments are kept unless in drops them or new files are supplied; tags
// are replaced only when in.Tags is non-nil.
func (s *PostService) UpdatePost(ctx context.Context, id string, in *domain.PostInput) (p *domain.Post, err error) {
	start := time.Now()
	defer func() {
		metrics.ObservePostMutation("update", metrics.Result(err), time.Since(start).Seconds())
	}()

	actor, ok := gateway.ActorFromContext(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}

	existing, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != actor.UserID {
		return nil, domain.ErrNotFoundAfterMutation
	}

	if in.Slug == "" {
		in.Slug = existing.Slug
	}
	if err := s.normalize(in); err != nil {
		return nil, err
	}
	if in.Slug != existing.Slug {
		exists, err := s.posts.SlugExists(ctx, in.Slug, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrSlugExists
		}
	}

	files, err := prepareFiles(in)
	if err != nil {
		return nil, err
	}

	batch := newUploadBatch(s.store, gateway.BucketPosts, s.opts.UploadRollback)
	keptCover, keptAttachments := keptFiles(existing, in)
	cover, attachments, err := s.upload(ctx, batch, actor.UserID, files, keptCover, keptAttachments)
	if err != nil {
		return nil, batch.fail(ctx, err)
	}

	post := toPost(in, actor.UserID, cover, attachments)
	post.ID = id
	updated, err := s.posts.Update(ctx, post, in.Tags)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update post",
			slog.String("post_id", id),
			slog.String("error", err.Error()))
		return nil, batch.fail(ctx, err)
	}
	return updated, nil
}

// DeletePost removes a post of the acting user. A post that is missing or
// owned by someone else yields ErrPostNotFound.
func (s *PostService) DeletePost(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() {
		metrics.ObservePostMutation("delete", metrics.Result(err), time.Since(start).Seconds())
	}()

	actor, ok := gateway.ActorFromContext(ctx)
	if !ok {
		return domain.ErrNotAuthenticated
	}
	n, err := s.posts.Delete(ctx, id, actor.UserID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete post",
			slog.String("post_id", id),
			slog.String("error", err.Error()))
		return err
	}
	if n == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// DeleteAttachment removes url from a post's attachments and then deletes
// the blob. A url that is not one of the post's attachments yields
// ErrAttachmentNotFound. A failed blob deletion is logged and does not fail
// the call.
func (s *PostService) DeleteAttachment(ctx context.Context, postID, url string) (p *domain.Post, err error) {
	start := time.Now()
	defer func() {
		metrics.ObservePostMutation("delete_attachment", metrics.Result(err), time.Since(start).Seconds())
	}()

	actor, ok := gateway.ActorFromContext(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != actor.UserID {
		return nil, domain.ErrPostNotFound
	}

	if !slices.Contains(post.Attachments, url) {
		return nil, domain.ErrAttachmentNotFound
	}

	remaining := slices.DeleteFunc(slices.Clone(post.Attachments), func(a string) bool { return a == url })
	updated, err := s.posts.SetAttachments(ctx, postID, actor.UserID, remaining)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update attachments",
			slog.String("post_id", postID),
			slog.String("error", err.Error()))
		return nil, err
	}

	objectPath, ok := s.store.ObjectPath(gateway.BucketPosts, url)
	if !ok {
		logger.WarnContext(ctx, "Attachment URL is outside the posts bucket",
			slog.String("post_id", postID),
			slog.String("url", url))
		return updated, nil
	}
	if err := s.store.Remove(ctx, gateway.BucketPosts, objectPath); err != nil {
		logger.WarnContext(ctx, "Failed to delete attachment blob",
			slog.String("post_id", postID),
			slog.String("path", objectPath),
			slog.String("error", err.Error()))
	}
	return updated, nil
}

