package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domain"
	"blog-backend/internal/gateway"
	"blog-backend/internal/logger"
	"blog-backend/internal/middleware"
	"blog-backend/internal/service"
	"blog-backend/internal/textutil"
)

// PageHandler renders the view-model of each page of the site as JSON.
type PageHandler struct {
	posts    service.PostServiceInterface
	comments service.CommentServiceInterface
	timezone string
}

// NewPageHandler creates a new PageHandler. Dates are shown in timezone.
func NewPageHandler(posts service.PostServiceInterface, comments service.CommentServiceInterface, timezone string) *PageHandler {
	return &PageHandler{posts: posts, comments: comments, timezone: timezone}
}

// PostView is a post with its display strings.
type PostView struct {
	domain.Post
	PublishedDate    string `json:"published_date,omitempty"`
	PublishedDisplay string `json:"published_display,omitempty"`
}

func (h *PageHandler) view(p domain.Post) PostView {
	v := PostView{Post: p}
	if p.PublishedAt == nil {
		return v
	}
	tz := p.PublishedTZ
	if tz == "" {
		tz = h.timezone
	}
	display, err := textutil.ConvertToTimezone(*p.PublishedAt, tz)
	if err != nil {
		display, _ = textutil.ConvertToTimezone(*p.PublishedAt, h.timezone)
	}
	v.PublishedDate = textutil.FormatDate(*p.PublishedAt)
	v.PublishedDisplay = display
	return v
}

func (h *PageHandler) views(posts []domain.Post) []PostView {
	out := make([]PostView, len(posts))
	for i, p := range posts {
		out[i] = h.view(p)
	}
	return out
}

func currentUser(c *gin.Context) *domain.User {
	if s := middleware.StoreFromContext(c); s != nil {
		return s.User()
	}
	return nil
}

// tags loads the tag list for page sidebars. A failure leaves it empty.
func (h *PageHandler) tags(c *gin.Context) []domain.Tag {
	tags, err := h.posts.ListTags(c.Request.Context())
	if err != nil {
		logger.WarnContext(c.Request.Context(), "Failed to load tags", slog.String("error", err.Error()))
		return []domain.Tag{}
	}
	return tags
}

// Home handles GET /.
func (h *PageHandler) Home(c *gin.Context) {
	posts, err := h.posts.ListPosts(c.Request.Context(), domain.PostFilter{Status: domain.StatusPublished, Sort: domain.SortPublishedDesc})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"page":  "home",
		"user":  currentUser(c),
		"posts": h.views(posts),
		"tags":  h.tags(c),
	})
}

// Posts handles GET /posts with the same query as the listing API.
func (h *PageHandler) Posts(c *gin.Context) {
	f, err := parsePostFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}
	f.Status = domain.StatusPublished

	posts, err := h.posts.ListPosts(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	filter := gin.H{
		"tag":  f.TagSlug,
		"q":    strings.TrimSpace(f.Keyword),
		"sort": f.Sort,
	}
	c.JSON(http.StatusOK, gin.H{
		"page":   "posts",
		"user":   currentUser(c),
		"posts":  h.views(posts),
		"tags":   h.tags(c),
		"filter": filter,
	})
}

// Post handles GET /post/:slug.
func (h *PageHandler) Post(c *gin.Context) {
	p, err := h.posts.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !visible(c, p) {
		h.NotFound(c)
		return
	}

	comments, err := h.comments.FetchComments(c.Request.Context(), p.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	actor, _ := gateway.ActorFromContext(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"page":     "post",
		"user":     currentUser(c),
		"post":     h.view(*p),
		"comments": comments,
		"can_edit": actor.UserID != "" && actor.UserID == p.AuthorID,
	})
}

// EditPost handles GET /post/:slug/edit. Only the author may open it.
func (h *PageHandler) EditPost(c *gin.Context) {
	p, err := h.posts.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	actor, _ := gateway.ActorFromContext(c.Request.Context())
	if actor.UserID != p.AuthorID {
		h.NotFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"page": "edit_post",
		"user": currentUser(c),
		"post": h.view(*p),
		"tags": h.tags(c),
	})
}

// safeRedirect keeps post-login redirects on this site.
func safeRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}

// Login handles GET /login.
func (h *PageHandler) Login(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":     "login",
		"user":     currentUser(c),
		"redirect": safeRedirect(c.Query("redirect")),
	})
}

// Signup handles GET /signup.
func (h *PageHandler) Signup(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "signup", "user": currentUser(c)})
}

// Dashboard handles GET /dashboard: the user's posts counted by status.
func (h *PageHandler) Dashboard(c *gin.Context) {
	posts, err := h.posts.ListMyPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	counts := make(map[string]int, len(domain.ValidStatuses))
	for _, s := range domain.ValidStatuses {
		counts[s] = 0
	}
	for _, p := range posts {
		counts[p.Status]++
	}

	recent := posts
	if len(recent) > 5 {
		recent = recent[:5]
	}
	c.JSON(http.StatusOK, gin.H{
		"page":   "dashboard",
		"user":   currentUser(c),
		"counts": counts,
		"recent": h.views(recent),
	})
}

// MyPosts handles GET /my-posts.
func (h *PageHandler) MyPosts(c *gin.Context) {
	posts, err := h.posts.ListMyPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": "my_posts", "user": currentUser(c), "posts": h.views(posts)})
}

// Profile handles GET /profile.
func (h *PageHandler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "profile", "user": currentUser(c)})
}

// Account handles GET /account.
func (h *PageHandler) Account(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "account", "user": currentUser(c)})
}

// NotFound answers every unknown path.
func (h *PageHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"page": "not_found", "path": c.Request.URL.Path})
}
