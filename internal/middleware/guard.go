package middleware

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domain"
	"blog-backend/internal/gateway"
	"blog-backend/internal/logger"
	"blog-backend/internal/metrics"
)

// LoginPath is where unauthenticated page navigation is sent.
const LoginPath = "/login"

// RouteMeta is the guard metadata of one route.
type RouteMeta struct {
	// RequiresAuth turns away requests without a signed-in user.
	RequiresAuth bool
	// Page answers rejections with a login redirect instead of a 401.
	Page bool
}

// Routes maps RouteKey(method, template) to route metadata.
type Routes map[string]RouteMeta

// RouteKey is the Routes key of a method and a gin route template.
func RouteKey(method, template string) string {
	return method + " " + template
}

// RouteGuard decides every request against routes. While the browser's
// Store is not initialized it waits for initialization first; a failed run
// is retried on the next request. The signed-in
// user, when there is one, is attached to the request context as the
// gateway actor.
func RouteGuard(routes Routes) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		meta := routes[RouteKey(c.Request.Method, c.FullPath())]

		var (
			actor  gateway.Actor
			signed bool
		)
		if store := StoreFromContext(c); store != nil {
			if !store.Initialized() {
				if err := store.Initialize(ctx); err != nil {
					logger.WarnContext(ctx, "Session initialization failed", slog.String("error", err.Error()))
				}
			}
			actor, signed = store.Snapshot().Actor()
		}

		if signed {
			c.Request = c.Request.WithContext(gateway.WithActor(ctx, actor))
		} else if meta.RequiresAuth {
			reject(c, meta)
			return
		}
		c.Next()
	}
}

func reject(c *gin.Context, meta RouteMeta) {
	if meta.Page {
		metrics.ObserveGuardRejection("page")
		c.Redirect(http.StatusFound, LoginPath+"?redirect="+url.QueryEscape(c.Request.URL.RequestURI()))
		c.Abort()
		return
	}
	metrics.ObserveGuardRejection("api")
	err := domain.ErrNotAuthenticated
	c.AbortWithStatusJSON(err.HTTPStatus(), gin.H{"error": err.Message, "code": err.Code})
}
