package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domain"
	"blog-backend/internal/repository"
)

func TestPostgresCommentRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	profiles := repository.NewPostgresProfileRepository(testDB.Pool)
	posts := repository.NewPostgresPostRepository(testDB.Pool)
	comments := repository.NewPostgresCommentRepository(testDB.Pool)
	ctx := context.Background()

	author := createProfile(t, profiles, "alice")
	reader := createProfile(t, profiles, "bob")
	post, err := posts.Create(ctx, &domain.Post{Slug: "p", Title: "P", Content: "c", Status: domain.StatusDraft, AuthorID: author.ID}, nil)
	require.NoError(t, err)

	t.Run("create embeds author", func(t *testing.T) {
		c, err := comments.Create(ctx, &domain.Comment{PostID: post.ID, AuthorID: reader.ID, Content: "first", Status: domain.CommentApproved})
		require.NoError(t, err)
		assert.Equal(t, "first", c.Content)
		require.NotNil(t, c.Author)
		assert.Equal(t, "bob", c.Author.Username)
	})

	t.Run("list filters by status in creation order", func(t *testing.T) {
		pending, err := comments.Create(ctx, &domain.Comment{PostID: post.ID, AuthorID: reader.ID, Content: "second", Status: domain.CommentPending})
		require.NoError(t, err)

		approved, err := comments.ListByPost(ctx, post.ID, domain.CommentApproved)
		require.NoError(t, err)
		require.Len(t, approved, 1)
		assert.Equal(t, "first", approved[0].Content)

		all, err := comments.ListByPost(ctx, post.ID, "")
		require.NoError(t, err)
		assert.Len(t, all, 2)

		moved, err := comments.UpdateStatus(ctx, pending.ID, domain.CommentApproved)
		require.NoError(t, err)
		assert.Equal(t, domain.CommentApproved, moved.Status)
	})

	t.Run("missing comment", func(t *testing.T) {
		_, err := comments.Get(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, domain.ErrCommentNotFound)

		_, err = comments.UpdateStatus(ctx, "00000000-0000-0000-0000-000000000000", domain.CommentRejected)
		assert.ErrorIs(t, err, domain.ErrNotFoundAfterMutation)
	})
}
