package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"blog-backend/internal/metrics"
)

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Metrics())
	router.GET("/post/:slug", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"slug": c.Param("slug")}) })
	router.POST("/api/v1/posts", func(c *gin.Context) { c.Status(http.StatusCreated) })
	router.GET("/metrics", func(c *gin.Context) { c.String(http.StatusOK, "# metrics") })

	tests := []struct {
		name   string
		method string
		target string
		route  string
		status string
	}{
		{"labels by route template", http.MethodGet, "/post/hello-world", "/post/:slug", "200"},
		{"post request", http.MethodPost, "/api/v1/posts", "/api/v1/posts", "201"},
		{"unmatched path", http.MethodGet, "/wp-admin.php", unmatchedRoute, "404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := metrics.HTTPRequestsTotal.WithLabelValues(tt.method, tt.route, tt.status)
			before := testutil.ToFloat64(counter)
			inFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
			assert.Equal(t, inFlight, testutil.ToFloat64(metrics.HTTPRequestsInFlight))
		})
	}

	t.Run("skips the metrics endpoint", func(t *testing.T) {
		counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/metrics", "200")
		before := testutil.ToFloat64(counter)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, before, testutil.ToFloat64(counter))
	})
}
