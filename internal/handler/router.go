package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blog-backend/internal/auth"
	"blog-backend/internal/middleware"
	"blog-backend/internal/session"
)

// RouterConfig holds everything NewRouter mounts.
type RouterConfig struct {
	Health   *HealthHandler
	Pages    *PageHandler
	Posts    *PostHandler
	Comments *CommentHandler
	Auth     *AuthHandler

	Codec    *auth.CookieCodec
	Sessions *session.Registry
	Cookie   middleware.CookieOptions

	// RequestLogger, when set, is mounted after the request id middleware.
	RequestLogger gin.HandlerFunc
}

// Route is one entry of the route table.
type Route struct {
	Method  string
	Path    string
	Meta    middleware.RouteMeta
	Handler gin.HandlerFunc
}

var (
	page          = middleware.RouteMeta{Page: true}
	protectedPage = middleware.RouteMeta{Page: true, RequiresAuth: true}
	public        = middleware.RouteMeta{}
	protected     = middleware.RouteMeta{RequiresAuth: true}
)

// Routes returns the route table of the site and its API.
func (cfg RouterConfig) Routes() []Route {
	p, posts, comments, a := cfg.Pages, cfg.Posts, cfg.Comments, cfg.Auth
	return []Route{
		{http.MethodGet, "/", page, p.Home},
		{http.MethodGet, "/posts", page, p.Posts},
		{http.MethodGet, "/post/:slug", page, p.Post},
		{http.MethodGet, "/post/:slug/edit", protectedPage, p.EditPost},
		{http.MethodGet, "/login", page, p.Login},
		{http.MethodGet, "/signup", page, p.Signup},
		{http.MethodGet, "/dashboard", protectedPage, p.Dashboard},
		{http.MethodGet, "/my-posts", protectedPage, p.MyPosts},
		{http.MethodGet, "/profile", protectedPage, p.Profile},
		{http.MethodGet, "/account", protectedPage, p.Account},

		{http.MethodGet, "/api/v1/posts", public, posts.ListPosts},
		{http.MethodPost, "/api/v1/posts", protected, posts.CreatePost},
		{http.MethodPut, "/api/v1/posts/:id", protected, posts.UpdatePost},
		{http.MethodDelete, "/api/v1/posts/:id", protected, posts.DeletePost},
		{http.MethodDelete, "/api/v1/posts/:id/attachments", protected, posts.DeleteAttachment},
		{http.MethodGet, "/api/v1/my/posts", protected, posts.ListMyPosts},
		{http.MethodGet, "/api/v1/slugs/:slug", public, posts.GetBySlug},
		{http.MethodGet, "/api/v1/tags", public, posts.ListTags},

		{http.MethodGet, "/api/v1/comments", public, comments.ListComments},
		{http.MethodPost, "/api/v1/comments", protected, comments.CreateComment},
		{http.MethodPatch, "/api/v1/comments/:id", protected, comments.ModerateComment},

		{http.MethodPost, "/api/v1/auth/signin", public, a.SignIn},
		{http.MethodPost, "/api/v1/auth/signup", public, a.SignUp},
		{http.MethodPost, "/api/v1/auth/signout", public, a.SignOut},
		{http.MethodGet, "/api/v1/auth/session", public, a.Session},
		{http.MethodPut, "/api/v1/auth/password", protected, a.UpdatePassword},
		{http.MethodPatch, "/api/v1/auth/profile", protected, a.UpdateProfile},
		{http.MethodPost, "/api/v1/auth/avatar", protected, a.UploadAvatar},
	}
}

// NewRouter builds the gin engine. Probes and /metrics bypass sessions;
// every route of the table runs behind the session middleware and the
// route guard; unknown paths get the not-found page.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = maxMultipartMemory
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	if cfg.RequestLogger != nil {
		router.Use(cfg.RequestLogger)
	}

	router.GET("/health", cfg.Health.Health)
	router.GET("/ready", cfg.Health.Ready)
	router.GET("/live", cfg.Health.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	table := cfg.Routes()
	meta := make(middleware.Routes, len(table))
	for _, r := range table {
		meta[middleware.RouteKey(r.Method, r.Path)] = r.Meta
	}

	app := router.Group("",
		middleware.Session(cfg.Codec, cfg.Sessions, cfg.Cookie),
		middleware.RouteGuard(meta),
	)
	for _, r := range table {
		app.Handle(r.Method, r.Path, r.Handler)
	}
	router.NoRoute(cfg.Pages.NotFound)

	return router
}
