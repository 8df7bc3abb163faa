package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/infrastructure/database"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	down := errors.New("connection refused")

	tests := []struct {
		name         string
		db           database.Pinger
		sessions     database.Pinger
		wantStatus   int
		wantReady    int
		wantServices map[string]string
	}{
		{
			name:         "healthy",
			db:           stubPinger{},
			sessions:     stubPinger{},
			wantStatus:   http.StatusOK,
			wantReady:    http.StatusOK,
			wantServices: map[string]string{"database": "healthy", "sessions": "healthy"},
		},
		{
			name:         "database down",
			db:           stubPinger{err: down},
			sessions:     stubPinger{},
			wantStatus:   http.StatusServiceUnavailable,
			wantReady:    http.StatusServiceUnavailable,
			wantServices: map[string]string{"database": "unhealthy", "sessions": "healthy"},
		},
		{
			name:         "session backend down",
			db:           stubPinger{},
			sessions:     stubPinger{err: down},
			wantStatus:   http.StatusServiceUnavailable,
			wantReady:    http.StatusServiceUnavailable,
			wantServices: map[string]string{"database": "healthy", "sessions": "unhealthy"},
		},
		{
			name:         "no session backend",
			db:           stubPinger{},
			wantStatus:   http.StatusOK,
			wantReady:    http.StatusOK,
			wantServices: map[string]string{"database": "healthy", "sessions": "healthy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.db, tt.sessions)
			router := gin.New()
			router.GET("/health", h.Health)
			router.GET("/ready", h.Ready)
			router.GET("/live", h.Live)

			w := serve(router, http.MethodGet, "/health", nil, "")
			require.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantServices, decode[HealthResponse](t, w).Services)

			assert.Equal(t, tt.wantReady, serve(router, http.MethodGet, "/ready", nil, "").Code)
			assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/live", nil, "").Code)
		})
	}
}
