package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/auth"
	"blog-backend/internal/gateway"
	"blog-backend/internal/gateway/memory"
	kvmemory "blog-backend/internal/kv/memory"
	"blog-backend/internal/metrics"
	"blog-backend/internal/middleware"
	"blog-backend/internal/session"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const cookieName = "blog_session"

type harness struct {
	router   *gin.Engine
	codec    *auth.CookieCodec
	registry *session.Registry
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gw := memory.New(memory.Options{BcryptCost: bcrypt.MinCost})
	_, _, err := gw.SignUp(context.Background(), "alice@example.com", "secret1", nil)
	require.NoError(t, err)

	codec, err := auth.NewCookieCodec("", time.Hour)
	require.NoError(t, err)
	kv := kvmemory.New(0)
	registry := session.NewRegistry(gateway.NewConnector(gw, gateway.ClientOptions{}), kv, session.Deps{Objects: gw}, session.RegistryOptions{TTL: time.Hour})
	t.Cleanup(func() {
		registry.Close()
		_ = kv.Close()
	})

	routes := middleware.Routes{
		middleware.RouteKey(http.MethodGet, "/"):                    {Page: true},
		middleware.RouteKey(http.MethodGet, "/dashboard"):           {Page: true, RequiresAuth: true},
		middleware.RouteKey(http.MethodDelete, "/api/v1/posts/:id"): {RequiresAuth: true},
	}

	router := gin.New()
	router.Use(middleware.Session(codec, registry, middleware.CookieOptions{Name: cookieName}))
	router.Use(middleware.RouteGuard(routes))
	whoami := func(c *gin.Context) {
		actor, ok := gateway.ActorFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"signed_in": ok, "user_id": actor.UserID})
	}
	router.GET("/", whoami)
	router.GET("/dashboard", whoami)
	router.DELETE("/api/v1/posts/:id", whoami)
	router.POST("/signin", func(c *gin.Context) {
		store, _, err := middleware.OpenStore(c)
		require.NoError(t, err)
		_, err = store.SignIn(c.Request.Context(), "alice@example.com", "secret1")
		require.NoError(t, err)
		c.Status(http.StatusNoContent)
	})
	router.POST("/signout", func(c *gin.Context) {
		middleware.EndSession(c)
		c.Status(http.StatusNoContent)
	})

	return &harness{router: router, codec: codec, registry: registry}
}

func (h *harness) do(method, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestSession_AnonymousRequestsOpenNothing(t *testing.T) {
	h := newHarness(t)

	for i := 0; i < 20; i++ {
		w := h.do(http.MethodGet, "/")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())
	}
	assert.Equal(t, 0, h.registry.Len())
}

func TestSession_IssuesAndReusesCookie(t *testing.T) {
	h := newHarness(t)

	first := h.do(http.MethodPost, "/signin")
	require.Equal(t, http.StatusNoContent, first.Code)
	cookie := sessionCookie(t, first)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	id, err := h.codec.Open(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, 1, h.registry.Len())

	second := h.do(http.MethodGet, "/", cookie)
	assert.Empty(t, second.Result().Cookies())
	assert.Equal(t, 1, h.registry.Len())
	assert.NotNil(t, h.registry.Get(id))
}

func TestSession_ForgedCookieIsIgnored(t *testing.T) {
	h := newHarness(t)
	forged := &http.Cookie{Name: cookieName, Value: "v4.local.forged"}

	w := h.do(http.MethodGet, "/", forged)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"signed_in":false,"user_id":""}`, w.Body.String())
	assert.Equal(t, 0, h.registry.Len())

	w = h.do(http.MethodPost, "/signin", forged)
	require.Equal(t, http.StatusNoContent, w.Code)
	_, err := h.codec.Open(sessionCookie(t, w).Value)
	assert.NoError(t, err)
}

func TestEndSession(t *testing.T) {
	h := newHarness(t)
	cookie := sessionCookie(t, h.do(http.MethodPost, "/signin"))
	require.Equal(t, 1, h.registry.Len())

	w := h.do(http.MethodPost, "/signout", cookie)
	require.Equal(t, http.StatusNoContent, w.Code)
	expired := sessionCookie(t, w)
	assert.Empty(t, expired.Value)
	assert.Negative(t, expired.MaxAge)
	assert.Equal(t, 0, h.registry.Len())
}

func TestRouteGuard(t *testing.T) {
	t.Run("public page passes without a user", func(t *testing.T) {
		h := newHarness(t)
		w := h.do(http.MethodGet, "/")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"signed_in":false,"user_id":""}`, w.Body.String())
	})

	t.Run("protected page redirects to login with the original target", func(t *testing.T) {
		h := newHarness(t)
		before := testutil.ToFloat64(metrics.GuardRejectionsTotal.WithLabelValues("page"))

		w := h.do(http.MethodGet, "/dashboard?tab=drafts")

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login?redirect=%2Fdashboard%3Ftab%3Ddrafts", w.Header().Get("Location"))
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.GuardRejectionsTotal.WithLabelValues("page")))
	})

	t.Run("protected api answers 401", func(t *testing.T) {
		h := newHarness(t)
		w := h.do(http.MethodDelete, "/api/v1/posts/123")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "UNAUTHORIZED", body["code"])
	})

	t.Run("signed-in user passes and becomes the actor", func(t *testing.T) {
		h := newHarness(t)
		first := h.do(http.MethodPost, "/signin")
		require.Equal(t, http.StatusNoContent, first.Code)
		cookie := sessionCookie(t, first)

		w := h.do(http.MethodGet, "/dashboard", cookie)
		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			SignedIn bool   `json:"signed_in"`
			UserID   string `json:"user_id"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.SignedIn)
		assert.NotEmpty(t, body.UserID)
	})

	t.Run("session survives a dropped store", func(t *testing.T) {
		h := newHarness(t)
		first := h.do(http.MethodPost, "/signin")
		cookie := sessionCookie(t, first)
		id, err := h.codec.Open(cookie.Value)
		require.NoError(t, err)

		h.registry.Drop(id)

		w := h.do(http.MethodDelete, "/api/v1/posts/123", cookie)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
