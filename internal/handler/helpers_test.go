package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/gateway"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	authorID = "7d1c4a52-3b8e-4f0a-9a59-0c1f2b3d4e5f"
	otherID  = "0b6f1e2d-9c8a-4b7e-8f6d-5a4b3c2d1e0f"
	postID   = "4f9e8d7c-6b5a-4c3d-2e1f-0a9b8c7d6e5f"
)

// asUser attaches userID as the gateway actor, standing in for the route
// guard.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			ctx := gateway.WithActor(c.Request.Context(), gateway.Actor{UserID: userID, AccessToken: "token"})
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

func serve(router *gin.Engine, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func serveJSON(t *testing.T, router *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	return serve(router, method, target, bytes.NewReader(payload), "application/json")
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	return decode[ErrorResponse](t, w)
}

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func serveRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func ptr[T any](v T) *T { return &v }
