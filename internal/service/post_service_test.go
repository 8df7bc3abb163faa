package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domain"
	"blog-backend/internal/gateway"
	"blog-backend/internal/mocks"
	"blog-backend/internal/repository"
	"blog-backend/internal/service"
	"blog-backend/internal/validator"
)

type postFixture struct {
	posts *mocks.MockPostRepository
	tags  *mocks.MockTagRepository
	store *flakyStore
	svc   *service.PostService
}

func newPostFixture(t *testing.T, opts service.PostOptions) *postFixture {
	f := &postFixture{
		posts: mocks.NewMockPostRepository(t),
		tags:  mocks.NewMockTagRepository(t),
		store: &flakyStore{ObjectStore: newMemoryStore()},
	}
	f.svc = service.NewPostService(f.posts, f.tags, f.store, validator.NewValidator(), opts)
	return f
}

func (f *postFixture) objectCount() int {
	return f.store.ObjectStore.(interface{ ObjectCount(string) int }).ObjectCount(gateway.BucketPosts)
}

func TestPostService_ListPosts(t *testing.T) {
	ctx := context.Background()
	goTag := domain.Tag{ID: "t-go", Slug: "go", Name: "Go"}

	t.Run("resolves tags and trims keyword", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{})

		f.tags.EXPECT().IDBySlug(mock.Anything, "go").Return("t-go", true, nil)
		f.posts.EXPECT().
			List(mock.Anything, repository.PostQuery{Status: domain.StatusPublished, Keyword: "gin", TagID: "t-go", Sort: domain.SortPublishedAsc}).
			Return([]domain.Post{{
				Slug:     "a",
				TagLinks: []domain.TagLink{{TagID: "t-go", Tag: &goTag}, {TagID: "gone"}},
			}}, nil)

		posts, err := f.svc.ListPosts(ctx, domain.PostFilter{
			TagSlug: "go",
			Keyword: "  gin ",
			Status:  domain.StatusPublished,
			Sort:    domain.SortPublishedAsc,
		})

		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, []domain.Tag{goTag}, posts[0].TagsInfo)
	})

	t.Run("blank keyword is no filter", func(t *testing.T) {
		for _, kw := range []string{"", "   ", "\t"} {
			f := newPostFixture(t, service.PostOptions{})
			f.posts.EXPECT().List(mock.Anything, repository.PostQuery{Status: domain.StatusPublished}).Return([]domain.Post{}, nil)

			_, err := f.svc.ListPosts(ctx, domain.PostFilter{Keyword: kw, Status: domain.StatusPublished})
			require.NoError(t, err)
		}
	})

	t.Run("unknown tag is ignored by default", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{})
		f.tags.EXPECT().IDBySlug(mock.Anything, "nope").Return("", false, nil)
		f.posts.EXPECT().List(mock.Anything, repository.PostQuery{Status: domain.StatusPublished}).
			Return([]domain.Post{{Slug: "a"}, {Slug: "b"}}, nil)

		posts, err := f.svc.ListPosts(ctx, domain.PostFilter{TagSlug: "nope", Status: domain.StatusPublished})
		require.NoError(t, err)
		assert.Len(t, posts, 2)
	})

	t.Run("unknown tag yields nothing under the empty policy", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{TagPolicy: service.TagPolicyEmpty})
		f.tags.EXPECT().IDBySlug(mock.Anything, "nope").Return("", false, nil)

		posts, err := f.svc.ListPosts(ctx, domain.PostFilter{TagSlug: "nope"})
		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})

	t.Run("read failure propagates", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{})
		boom := errors.New("relation \"posts\" does not exist")
		f.posts.EXPECT().List(mock.Anything, mock.Anything).Return(nil, boom)

		_, err := f.svc.ListPosts(ctx, domain.PostFilter{})
		assert.ErrorIs(t, err, boom)
	})
}

func TestPostService_GetPostBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves the tag id list", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{})
		f.posts.EXPECT().GetBySlug(mock.Anything, "hello").Return(&domain.Post{ID: "p1", Tags: []string{"t1"}}, nil)
		f.tags.EXPECT().GetByIDs(mock.Anything, []string{"t1"}).Return([]domain.Tag{{ID: "t1", Name: "Go"}}, nil)

		p, err := f.svc.GetPostBySlug(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, []domain.Tag{{ID: "t1", Name: "Go"}}, p.TagsInfo)
	})

	t.Run("no tags yields an empty list", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{})
		f.posts.EXPECT().GetBySlug(mock.Anything, "hello").Return(&domain.Post{ID: "p1", Tags: []string{}}, nil)

		p, err := f.svc.GetPostBySlug(ctx, "hello")
		require.NoError(t, err)
		assert.NotNil(t, p.TagsInfo)
		assert.Empty(t, p.TagsInfo)
	})

	t.Run("tag lookup failure is not fatal", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{})
		f.posts.EXPECT().GetBySlug(mock.Anything, "hello").Return(&domain.Post{ID: "p1", Tags: []string{"t1"}}, nil)
		f.tags.EXPECT().GetByIDs(mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

		p, err := f.svc.GetPostBySlug(ctx, "hello")
		require.NoError(t, err)
		assert.Empty(t, p.TagsInfo)
	})

	t.Run("not found", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{})
		f.posts.EXPECT().GetBySlug(mock.Anything, "missing").Return(nil, domain.ErrPostNotFound)

		_, err := f.svc.GetPostBySlug(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrPostNotFound)
	})
}

func TestPostService_ListMyPosts(t *testing.T) {
	f := newPostFixture(t, service.PostOptions{})

	_, err := f.svc.ListMyPosts(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	f.posts.EXPECT().
		List(mock.Anything, repository.PostQuery{AuthorID: testUserID, Sort: domain.SortCreatedDesc}).
		Return([]domain.Post{{Slug: "mine", Status: domain.StatusDraft}}, nil)

	posts, err := f.svc.ListMyPosts(actorCtx())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.NotNil(t, posts[0].TagsInfo)
}

func TestPostService_CreatePost(t *testing.T) {
	newInput := func() *domain.PostInput {
		return &domain.PostInput{
			Title:   "Go 语言入门",
			Content: "<p>" + strings.Repeat("字", 800) + "</p>",
			Status:  domain.StatusDraft,
			Tags:    []string{"0b0f6c52-3a1d-4f3e-8f7a-2c1b9d4e5a60"},
		}
	}
	echo := func(_ context.Context, p *domain.Post, _ []string) (*domain.Post, error) {
		created := *p
		created.ID = "new-id"
		return &created, nil
	}

	t.Run("requires an acting user", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{})
		_, err := f.svc.CreatePost(context.Background(), newInput())
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	})

	t.Run("derives slug, excerpt and reading time", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{UploadRollback: true})
		f.posts.EXPECT().SlugExists(mock.Anything, "go-yu-yan-ru-men", "").Return(false, nil)
		f.posts.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Post"), []string{"0b0f6c52-3a1d-4f3e-8f7a-2c1b9d4e5a60"}).
			RunAndReturn(echo)

		p, err := f.svc.CreatePost(actorCtx(), newInput())
		require.NoError(t, err)
		assert.Equal(t, "go-yu-yan-ru-men", p.Slug)
		assert.Equal(t, 2, p.ReadingMinutes)
		assert.Equal(t, testUserID, p.AuthorID)
		assert.True(t, strings.HasSuffix(p.Excerpt, "..."))
		assert.NotContains(t, p.Excerpt, "<p>")
		assert.Nil(t, p.PublishedAt)
		assert.Equal(t, []string{}, p.Attachments)
	})

	t.Run("publishing stamps published_at", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{})
		f.posts.EXPECT().SlugExists(mock.Anything, mock.Anything, "").Return(false, nil)
		f.posts.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(echo)

		in := newInput()
		in.Status = domain.StatusPublished
		before := time.Now()
		p, err := f.svc.CreatePost(actorCtx(), in)
		require.NoError(t, err)
		require.NotNil(t, p.PublishedAt)
		assert.False(t, p.PublishedAt.Before(before))
	})

	t.Run("slug collision performs no insert", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{})
		f.posts.EXPECT().SlugExists(mock.Anything, "go-yu-yan-ru-men", "").Return(true, nil)

		in := newInput()
		in.Cover = pngUpload("cover.png")
		_, err := f.svc.CreatePost(actorCtx(), in)
		assert.ErrorIs(t, err, domain.ErrSlugExists)
		assert.Zero(t, f.objectCount())
	})

	t.Run("validation failure carries field details", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{})
		in := newInput()
		in.Content = ""

		_, err := f.svc.CreatePost(actorCtx(), in)
		var de *domain.Error
		require.ErrorAs(t, err, &de)
		assert.Equal(t, domain.CodeValidation, de.Code)
		assert.Equal(t, "content_required", de.Details.(map[string]string)["content"])
	})

	t.Run("file checks run before any upload", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(in *domain.PostInput)
			wantErr error
		}{
			{
				name: "cover is not an image",
				mutate: func(in *domain.PostInput) {
					in.Cover = textUpload("cover.png")
				},
				wantErr: domain.ErrInvalidFileType,
			},
			{
				name: "cover too large",
				mutate: func(in *domain.PostInput) {
					in.Cover = pngUpload("cover.png")
					in.Cover.Size = 6 * 1024 * 1024
				},
				wantErr: domain.ErrFileTooLarge,
			},
			{
				name: "second attachment too large",
				mutate: func(in *domain.PostInput) {
					big := pngUpload("b.png")
					big.Size = 9 * 1024 * 1024
					in.AttachmentFiles = []domain.Upload{*pngUpload("a.png"), *big}
				},
				wantErr: domain.ErrFileTooLarge,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newPostFixture(t, service.PostOptions{})
				f.posts.EXPECT().SlugExists(mock.Anything, mock.Anything, "").Return(false, nil)

				in := newInput()
				tt.mutate(in)
				_, err := f.svc.CreatePost(actorCtx(), in)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, f.store.uploads)
			})
		}
	})

	t.Run("uploads cover and attachments", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{UploadRollback: true})
		f.posts.EXPECT().SlugExists(mock.Anything, mock.Anything, "").Return(false, nil)
		f.posts.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(echo)

		in := newInput()
		in.Cover = pngUpload("Cover.PNG")
		in.AttachmentFiles = []domain.Upload{*pngUpload("a.png"), *pngUpload("b.png")}

		p, err := f.svc.CreatePost(actorCtx(), in)
		require.NoError(t, err)
		require.NotNil(t, p.CoverURL)
		assert.True(t, strings.HasPrefix(*p.CoverURL, "http://storage.test/object/public/posts/covers/"+testUserID+"/"))
		assert.True(t, strings.HasSuffix(*p.CoverURL, ".png"))
		require.Len(t, p.Attachments, 2)
		for _, a := range p.Attachments {
			assert.Contains(t, a, "/posts/attachments/"+testUserID+"/")
		}
		assert.Equal(t, 3, f.objectCount())
	})

	t.Run("failed upload rolls back earlier blobs", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{UploadRollback: true})
		f.store.failAt = 2
		f.posts.EXPECT().SlugExists(mock.Anything, mock.Anything, "").Return(false, nil)

		in := newInput()
		in.Cover = pngUpload("cover.png")
		in.AttachmentFiles = []domain.Upload{*pngUpload("a.png")}

		_, err := f.svc.CreatePost(actorCtx(), in)
		assert.ErrorIs(t, err, errTransport)
		assert.Len(t, f.store.removed, 1)
		assert.Zero(t, f.objectCount())
	})

	t.Run("without rollback the partial upload is reported", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{UploadRollback: false})
		f.store.failAt = 3
		f.posts.EXPECT().SlugExists(mock.Anything, mock.Anything, "").Return(false, nil)

		in := newInput()
		in.AttachmentFiles = []domain.Upload{*pngUpload("a.png"), *pngUpload("b.png"), *pngUpload("c.png")}

		_, err := f.svc.CreatePost(actorCtx(), in)
		var partial *service.PartialUploadError
		require.ErrorAs(t, err, &partial)
		assert.Equal(t, gateway.BucketPosts, partial.Bucket)
		assert.Len(t, partial.Paths, 2)
		assert.ErrorIs(t, err, errTransport)
		assert.Equal(t, 2, f.objectCount())
	})

	t.Run("database failure removes uploaded blobs", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{UploadRollback: true})
		f.posts.EXPECT().SlugExists(mock.Anything, mock.Anything, "").Return(false, nil)
		boom := errors.New("insert tag links: foreign key violation")
		f.posts.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(nil, boom)

		in := newInput()
		in.Cover = pngUpload("cover.png")

		_, err := f.svc.CreatePost(actorCtx(), in)
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, f.objectCount())
	})

	t.Run("failed rollback still surfaces the original error", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{UploadRollback: true})
		f.store.failAt = 2
		f.store.failRm = true
		f.posts.EXPECT().SlugExists(mock.Anything, mock.Anything, "").Return(false, nil)

		in := newInput()
		in.AttachmentFiles = []domain.Upload{*pngUpload("a.png"), *pngUpload("b.png")}

		_, err := f.svc.CreatePost(actorCtx(), in)
		assert.ErrorIs(t, err, errTransport)
		var partial *service.PartialUploadError
		require.ErrorAs(t, err, &partial)
		assert.Len(t, partial.Paths, 1)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	storedCover := "http://storage.test/object/public/posts/covers/u/c.png"
	existing := &domain.Post{
		ID:       "p1",
		Slug:     "old-slug",
		AuthorID: testUserID,
		CoverURL: &storedCover,
		Attachments: []string{
			"http://storage.test/object/public/posts/attachments/x.png",
			"http://storage.test/object/public/posts/attachments/y.png",
		},
	}
	echo := func(_ context.Context, p *domain.Post, _ []string) (*domain.Post, error) {
		out := *p
		return &out, nil
	}
	input := func() *domain.PostInput {
		return &domain.PostInput{
			Title:   "Updated",
			Content: "body",
			Status:  domain.StatusDraft,
		}
	}

	t.Run("keeps stored files and leaves tags untouched when absent", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{UploadRollback: true})
		f.posts.EXPECT().GetByID(mock.Anything, "p1").Return(existing, nil)
		f.posts.EXPECT().Update(mock.Anything, mock.Anything, []string(nil)).RunAndReturn(echo)

		in := input()
		in.AttachmentFiles = []domain.Upload{*pngUpload("new.png")}
		p, err := f.svc.UpdatePost(actorCtx(), "p1", in)
		require.NoError(t, err)
		assert.Equal(t, "old-slug", p.Slug)
		assert.Equal(t, "p1", p.ID)
		require.NotNil(t, p.CoverURL)
		assert.Equal(t, storedCover, *p.CoverURL)
		require.Len(t, p.Attachments, 3)
		assert.Equal(t, existing.Attachments, p.Attachments[:2])
	})

	t.Run("no file fields at all keeps cover and attachments", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{})
		f.posts.EXPECT().GetByID(mock.Anything, "p1").Return(existing, nil)
		f.posts.EXPECT().Update(mock.Anything, mock.Anything, []string(nil)).RunAndReturn(echo)

		p, err := f.svc.UpdatePost(actorCtx(), "p1", input())
		require.NoError(t, err)
		require.NotNil(t, p.CoverURL)
		assert.Equal(t, storedCover, *p.CoverURL)
		assert.Equal(t, existing.Attachments, p.Attachments)
		assert.Zero(t, f.objectCount())
	})

	t.Run("listed attachments keep only stored urls", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{})
		f.posts.EXPECT().GetByID(mock.Anything, "p1").Return(existing, nil)
		f.posts.EXPECT().Update(mock.Anything, mock.Anything, []string(nil)).RunAndReturn(echo)

		dropCover := ""
		in := input()
		in.CoverURL = &dropCover
		in.Attachments = []string{
			existing.Attachments[1],
			"http://storage.test/object/public/posts/covers/victim/c.png",
			existing.Attachments[1],
		}
		p, err := f.svc.UpdatePost(actorCtx(), "p1", in)
		require.NoError(t, err)
		assert.Nil(t, p.CoverURL)
		assert.Equal(t, []string{existing.Attachments[1]}, p.Attachments)
	})

	t.Run("a cover url other than the stored one is not written", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{})
		f.posts.EXPECT().GetByID(mock.Anything, "p1").Return(existing, nil)
		f.posts.EXPECT().Update(mock.Anything, mock.Anything, []string(nil)).RunAndReturn(echo)

		foreign := "http://storage.test/object/public/posts/covers/victim/c.png"
		in := input()
		in.CoverURL = &foreign
		p, err := f.svc.UpdatePost(actorCtx(), "p1", in)
		require.NoError(t, err)
		require.NotNil(t, p.CoverURL)
		assert.Equal(t, storedCover, *p.CoverURL)
	})

	t.Run("empty tag list clears associations", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{})
		f.posts.EXPECT().GetByID(mock.Anything, "p1").Return(existing, nil)
		f.posts.EXPECT().Update(mock.Anything, mock.Anything, []string{}).RunAndReturn(echo)

		in := input()
		in.Tags = []string{}
		_, err := f.svc.UpdatePost(actorCtx(), "p1", in)
		require.NoError(t, err)
	})

	t.Run("changed slug is normalized and checked", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{})
		f.posts.EXPECT().GetByID(mock.Anything, "p1").Return(existing, nil)
		f.posts.EXPECT().SlugExists(mock.Anything, "taken-slug", "p1").Return(true, nil)

		in := input()
		in.Slug = "Taken Slug"
		_, err := f.svc.UpdatePost(actorCtx(), "p1", in)
		assert.ErrorIs(t, err, domain.ErrSlugExists)
	})

	t.Run("someone else's post", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{})
		other := *existing
		other.AuthorID = "someone-else"
		f.posts.EXPECT().GetByID(mock.Anything, "p1").Return(&other, nil)

		_, err := f.svc.UpdatePost(actorCtx(), "p1", input())
		assert.ErrorIs(t, err, domain.ErrNotFoundAfterMutation)
	})

	t.Run("zero rows updated", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{})
		f.posts.EXPECT().GetByID(mock.Anything, "p1").Return(existing, nil)
		f.posts.EXPECT().Update(mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrNotFoundAfterMutation)

		_, err := f.svc.UpdatePost(actorCtx(), "p1", input())
		assert.ErrorIs(t, err, domain.ErrNotFoundAfterMutation)
	})
}

func TestPostService_DeletePost(t *testing.T) {
	tests := []struct {
		name    string
		rows    int64
		repoErr error
		wantErr error
	}{
		{"own post", 1, nil, nil},
		{"missing or foreign post", 0, nil, domain.ErrPostNotFound},
		{"database error", 0, errors.New("conn closed"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPostFixture(t, service.PostOptions{})
			f.posts.EXPECT().Delete(mock.Anything, "p1", testUserID).Return(tt.rows, tt.repoErr)

			err := f.svc.DeletePost(actorCtx(), "p1")
			switch {
			case tt.repoErr != nil:
				assert.ErrorIs(t, err, tt.repoErr)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.NoError(t, err)
			}
		})
	}

	t.Run("requires an acting user", func(t *testing.T) {
		f := newPostFixture(t, service.PostOptions{})
		assert.ErrorIs(t, f.svc.DeletePost(context.Background(), "p1"), domain.ErrNotAuthenticated)
	})
}

func TestPostService_DeleteAttachment(t *testing.T) {
	setup := func(t *testing.T) (*postFixture, string, string) {
		f := newPostFixture(t, service.PostOptions{})
		ctx := actorCtx()
		require.NoError(t, f.store.Upload(ctx, gateway.BucketPosts, "attachments/u/a.png", strings.NewReader("a"), 1, "image/png"))
		require.NoError(t, f.store.Upload(ctx, gateway.BucketPosts, "attachments/u/b.png", strings.NewReader("b"), 1, "image/png"))
		return f, f.store.PublicURL(gateway.BucketPosts, "attachments/u/a.png"), f.store.PublicURL(gateway.BucketPosts, "attachments/u/b.png")
	}

	t.Run("removes the url and the blob", func(t *testing.T) {
		f, a, b := setup(t)
		f.posts.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Post{ID: "p1", AuthorID: testUserID, Attachments: []string{a, b}}, nil)
		f.posts.EXPECT().SetAttachments(mock.Anything, "p1", testUserID, []string{b}).
			Return(&domain.Post{ID: "p1", Attachments: []string{b}}, nil)

		p, err := f.svc.DeleteAttachment(actorCtx(), "p1", a)
		require.NoError(t, err)
		assert.Equal(t, []string{b}, p.Attachments)
		assert.Equal(t, []string{"attachments/u/a.png"}, f.store.removed)
		assert.Equal(t, 1, f.objectCount())
	})

	t.Run("blob removal failure is swallowed", func(t *testing.T) {
		f, a, b := setup(t)
		f.store.failRm = true
		f.posts.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Post{ID: "p1", AuthorID: testUserID, Attachments: []string{a, b}}, nil)
		f.posts.EXPECT().SetAttachments(mock.Anything, "p1", testUserID, []string{b}).
			Return(&domain.Post{ID: "p1", Attachments: []string{b}}, nil)

		_, err := f.svc.DeleteAttachment(actorCtx(), "p1", a)
		assert.NoError(t, err)
	})

	t.Run("a url that is not an attachment of the post is refused", func(t *testing.T) {
		f, a, b := setup(t)
		f.posts.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Post{ID: "p1", AuthorID: testUserID, Attachments: []string{a}}, nil)

		_, err := f.svc.DeleteAttachment(actorCtx(), "p1", b)
		assert.ErrorIs(t, err, domain.ErrAttachmentNotFound)
		assert.Empty(t, f.store.removed)
		assert.Equal(t, 2, f.objectCount())
	})

	t.Run("another user's cover cannot be removed through an own post", func(t *testing.T) {
		f, _, _ := setup(t)
		ctx := actorCtx()
		require.NoError(t, f.store.Upload(ctx, gateway.BucketPosts, "covers/victim/c.png", strings.NewReader("c"), 1, "image/png"))
		victim := f.store.PublicURL(gateway.BucketPosts, "covers/victim/c.png")
		f.posts.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Post{ID: "p1", AuthorID: testUserID}, nil)

		_, err := f.svc.DeleteAttachment(ctx, "p1", victim)
		assert.ErrorIs(t, err, domain.ErrAttachmentNotFound)
		assert.Empty(t, f.store.removed)
		assert.Equal(t, 3, f.objectCount())
	})

	t.Run("only the author may remove attachments", func(t *testing.T) {
		f, a, _ := setup(t)
		f.posts.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Post{ID: "p1", AuthorID: "other", Attachments: []string{a}}, nil)

		_, err := f.svc.DeleteAttachment(actorCtx(), "p1", a)
		assert.ErrorIs(t, err, domain.ErrPostNotFound)
		assert.Empty(t, f.store.removed)
	})
}
