package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-backend/internal/domain"
	"blog-backend/internal/service"
)

// CommentHandler serves the comment API.
type CommentHandler struct {
	comments service.CommentServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// CreateCommentRequest is the body of POST /api/v1/comments.
type CreateCommentRequest struct {
	PostID  string `json:"post_id"`
	Content string `json:"content"`
}

// ModerateCommentRequest is the body of PATCH /api/v1/comments/:id.
type ModerateCommentRequest struct {
	Status string `json:"status"`
}

// ListComments handles GET /api/v1/comments?post_id=...&all=true. Without
// all only approved comments are listed; with it the post's author sees
// every comment for moderation.
func (h *CommentHandler) ListComments(c *gin.Context) {
	postID := c.Query("post_id")
	if _, err := uuid.Parse(postID); err != nil {
		badRequest(c, "post_id must be a valid UUID")
		return
	}
	all, _ := strconv.ParseBool(c.Query("all"))

	var (
		comments []domain.Comment
		err      error
	)
	if all {
		comments, err = h.comments.ListForModeration(c.Request.Context(), postID)
	} else {
		comments, err = h.comments.FetchComments(c.Request.Context(), postID)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment handles POST /api/v1/comments.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	comment, err := h.comments.CreateComment(c.Request.Context(), req.PostID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// ModerateComment handles PATCH /api/v1/comments/:id.
func (h *CommentHandler) ModerateComment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ModerateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	comment, err := h.comments.Moderate(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}
