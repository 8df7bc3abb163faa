package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domain"
	"blog-backend/internal/gateway"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL+"/", "anon-key", time.Second)
	require.NoError(t, err)
	return c, srv
}

func TestNew_RequiresSettings(t *testing.T) {
	_, err := New("", "key", 0)
	assert.Error(t, err)
	_, err = New("https://x.supabase.co", "", 0)
	assert.Error(t, err)
}

func TestPasswordGrant(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@example.com", body["email"])
		assert.Equal(t, "secret", body["password"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "at",
			"refresh_token": "rt",
			"token_type":    "bearer",
			"expires_at":    1700000000,
			"user":          map[string]any{"id": "u1", "email": "a@example.com"},
		})
	})

	s, err := c.PasswordGrant(context.Background(), "a@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "at", s.AccessToken)
	assert.Equal(t, "rt", s.RefreshToken)
	assert.Equal(t, time.Unix(1700000000, 0), s.ExpiresAt)
	require.NotNil(t, s.User)
	assert.Equal(t, "u1", s.User.ID)
}

func TestPasswordGrant_ErrorKeepsGatewayMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"code":400,"error_code":"invalid_credentials","msg":"Invalid login credentials"}`)
	})

	_, err := c.PasswordGrant(context.Background(), "a@example.com", "bad")

	var ge *gateway.Error
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, http.StatusBadRequest, ge.Status)
	assert.Equal(t, "invalid_credentials", ge.Code)
	assert.Equal(t, "Invalid login credentials", ge.Message)
	assert.True(t, gateway.IsClientError(err))
}

func TestDecodeError_Shapes(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode string
		wantMsg  string
	}{
		{"legacy gotrue", 400, `{"error":"invalid_grant","error_description":"Invalid Refresh Token"}`, "invalid_grant", "Invalid Refresh Token"},
		{"storage", 404, `{"statusCode":"404","error":"not_found","message":"Object not found"}`, "not_found", "Object not found"},
		{"plain text", 502, `bad gateway`, "", "bad gateway"},
		{"empty", 503, ``, "", "Service Unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ge *gateway.Error
			require.True(t, errors.As(decodeError(tt.status, []byte(tt.body)), &ge))
			assert.Equal(t, tt.status, ge.Status)
			assert.Equal(t, tt.wantCode, ge.Code)
			assert.Equal(t, tt.wantMsg, ge.Message)
		})
	}
}

func TestSignUp_WithAndWithoutSession(t *testing.T) {
	var autoConfirm atomic.Bool
	autoConfirm.Store(true)
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"username": "writer"}, body["data"])

		if autoConfirm.Load() {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"access_token": "at", "refresh_token": "rt", "expires_in": 3600,
				"user": map[string]any{"id": "u1", "email": "a@example.com"},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "u2", "email": "b@example.com"})
	})

	user, session, err := c.SignUp(context.Background(), "a@example.com", "secret", map[string]any{"username": "writer"})
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "u1", user.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)

	autoConfirm.Store(false)
	user, session, err = c.SignUp(context.Background(), "b@example.com", "secret", map[string]any{"username": "writer"})
	require.NoError(t, err)
	assert.Nil(t, session)
	assert.Equal(t, "u2", user.ID)
}

func TestUserEndpoints_UseAccessToken(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{"id": "u1", "email": "a@example.com"})
		case http.MethodPut:
			var attrs domain.UserAttributes
			require.NoError(t, json.NewDecoder(r.Body).Decode(&attrs))
			assert.Equal(t, "new-secret", attrs.Password)
			_ = json.NewEncoder(w).Encode(map[string]any{"id": "u1", "email": "a@example.com"})
		}
	})

	u, err := c.User(context.Background(), "user-token")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	u, err = c.UpdateUser(context.Background(), "user-token", domain.UserAttributes{Password: "new-secret"})
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", u.Email)
}

func TestLogout(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/logout", r.URL.Path)
		assert.Equal(t, "Bearer at", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})
	require.NoError(t, c.Logout(context.Background(), "at"))
}

func TestStorage_UploadRemove(t *testing.T) {
	var uploaded, removed atomic.Bool
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/storage/v1/object/posts/covers/u1/1-abc.png":
			assert.Equal(t, "image/png", r.Header.Get("Content-Type"))
			assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
			b, _ := io.ReadAll(r.Body)
			assert.Equal(t, "png-bytes", string(b))
			uploaded.Store(true)
			_, _ = io.WriteString(w, `{"Key":"posts/covers/u1/1-abc.png"}`)
		case r.Method == http.MethodDelete && r.URL.Path == "/storage/v1/object/posts":
			var body map[string][]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, []string{"covers/u1/1-abc.png"}, body["prefixes"])
			removed.Store(true)
			_, _ = io.WriteString(w, `[]`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	ctx := gateway.WithActor(context.Background(), gateway.Actor{UserID: "u1", AccessToken: "user-token"})
	require.NoError(t, c.Upload(ctx, "posts", "covers/u1/1-abc.png", strings.NewReader("png-bytes"), 9, "image/png"))
	require.NoError(t, c.Remove(ctx, "posts", "covers/u1/1-abc.png"))
	assert.True(t, uploaded.Load())
	assert.True(t, removed.Load())

	require.NoError(t, c.Remove(ctx, "posts"))
}

func TestPublicURL_RoundTrip(t *testing.T) {
	c, err := New("https://proj.supabase.co", "anon", 0)
	require.NoError(t, err)

	u := c.PublicURL("posts", "attachments/u1/1 a.png")
	assert.Equal(t, "https://proj.supabase.co/storage/v1/object/public/posts/attachments/u1/1%20a.png", u)

	p, ok := c.ObjectPath("posts", u)
	require.True(t, ok)
	assert.Equal(t, "attachments/u1/1 a.png", p)

	_, ok = c.ObjectPath("avatars", u)
	assert.False(t, ok)
	_, ok = c.ObjectPath("posts", "https://elsewhere.example/x.png")
	assert.False(t, ok)
}
