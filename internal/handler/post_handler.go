package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domain"
	"blog-backend/internal/gateway"
	"blog-backend/internal/service"
)

// PostHandler serves the post and tag API.
type PostHandler struct {
	posts service.PostServiceInterface
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts service.PostServiceInterface) *PostHandler {
	return &PostHandler{posts: posts}
}

// ListPosts handles GET /api/v1/posts. Listings other than published are
// limited to the caller's own posts.
func (h *PostHandler) ListPosts(c *gin.Context) {
	f, err := parsePostFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if f.Status != domain.StatusPublished {
		actor, ok := gateway.ActorFromContext(c.Request.Context())
		if !ok {
			respondError(c, domain.ErrNotAuthenticated)
			return
		}
		f.AuthorID = actor.UserID
	}

	posts, err := h.posts.ListPosts(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// ListMyPosts handles GET /api/v1/my/posts.
func (h *PostHandler) ListMyPosts(c *gin.Context) {
	posts, err := h.posts.ListMyPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetBySlug handles GET /api/v1/slugs/:slug. Unpublished posts are only
// visible to their author.
func (h *PostHandler) GetBySlug(c *gin.Context) {
	p, err := h.posts.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !visible(c, p) {
		respondError(c, domain.ErrPostNotFound)
		return
	}
	c.JSON(http.StatusOK, p)
}

func visible(c *gin.Context, p *domain.Post) bool {
	actor, _ := gateway.ActorFromContext(c.Request.Context())
	return p.VisibleTo(actor.UserID)
}

// CreatePost handles POST /api/v1/posts (multipart).
func (h *PostHandler) CreatePost(c *gin.Context) {
	in, files, err := parsePostInput(c)
	if err != nil {
		respondError(c, err)
		return
	}
	defer files.Close()

	p, err := h.posts.CreatePost(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdatePost handles PUT /api/v1/posts/:id (multipart).
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	in, files, err := parsePostInput(c)
	if err != nil {
		respondError(c, err)
		return
	}
	defer files.Close()

	p, err := h.posts.UpdatePost(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeletePost handles DELETE /api/v1/posts/:id.
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.posts.DeletePost(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAttachment handles DELETE /api/v1/posts/:id/attachments?url=...
func (h *PostHandler) DeleteAttachment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	url := c.Query("url")
	if url == "" {
		badRequest(c, "url is required")
		return
	}

	p, err := h.posts.DeleteAttachment(c.Request.Context(), id, url)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListTags handles GET /api/v1/tags.
func (h *PostHandler) ListTags(c *gin.Context) {
	tags, err := h.posts.ListTags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}
