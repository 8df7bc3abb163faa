// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, posts, uploads, auth, and database operations.
package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"blog-backend/internal/logger"
)

const (
	namespace = "blog_backend"

	// Result label values shared by the counters below.
	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Post metrics - track post writes by operation and outcome
	PostMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "posts",
			Name:      "mutations_total",
			Help:      "Total number of post mutations by operation and result",
		},
		[]string{"operation", "result"},
	)

	PostMutationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "posts",
			Name:      "mutation_duration_seconds",
			Help:      "Post mutation duration in seconds, uploads included",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation"},
	)

	// Upload metrics - track blobs written to the object store
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "uploads",
			Name:      "total",
			Help:      "Total number of file uploads by bucket and result",
		},
		[]string{"bucket", "result"},
	)

	UploadBytesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "uploads",
			Name:      "bytes_total",
			Help:      "Total bytes successfully uploaded by bucket",
		},
		[]string{"bucket"},
	)

	UploadRollbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "uploads",
			Name:      "rollbacks_total",
			Help:      "Total number of upload batches rolled back by bucket and result",
		},
		[]string{"bucket", "result"},
	)

	// Auth metrics - track sign-ins, gateway auth events and guarded navigation
	SignInAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "sign_in_attempts_total",
			Help:      "Total number of sign-in attempts by result",
		},
		[]string{"result"},
	)

	AuthEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "events_total",
			Help:      "Total number of auth state change events by type",
		},
		[]string{"event"},
	)

	GuardRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "guard_rejections_total",
			Help:      "Total number of unauthenticated requests to protected routes by kind (page redirect or api 401)",
		},
		[]string{"kind"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "active_sessions",
			Help:      "Number of browser session stores held in memory",
		},
	)

	// Database metrics - pool connections by state (total, idle, in_use, constructing, max)
	DBConnectionPoolSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Database connection pool stats",
		},
		[]string{"state"},
	)
)

// PoolStats is the part of *pgxpool.Stat the collector reads.
type PoolStats interface {
	TotalConns() int32
	IdleConns() int32
	AcquiredConns() int32
	ConstructingConns() int32
	MaxConns() int32
}

// PoolStatsProvider returns a fresh snapshot of pool statistics.
type PoolStatsProvider interface {
	Stat() PoolStats
}

type pgxPoolAdapter struct {
	pool *pgxpool.Pool
}

func (a *pgxPoolAdapter) Stat() PoolStats {
	return a.pool.Stat()
}

// PoolStatsCollector copies pool statistics into DBConnectionPoolSize on a
// fixed interval.
type PoolStatsCollector struct {
	provider PoolStatsProvider
	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewPoolStatsCollector creates a collector for pool.
func NewPoolStatsCollector(pool *pgxpool.Pool) *PoolStatsCollector {
	return NewPoolStatsCollectorWithProvider(&pgxPoolAdapter{pool: pool})
}

// NewPoolStatsCollectorWithProvider creates a collector reading provider.
func NewPoolStatsCollectorWithProvider(provider PoolStatsProvider) *PoolStatsCollector {
	return &PoolStatsCollector{provider: provider, stop: make(chan struct{})}
}

// Start collects once immediately and then every interval until Stop.
func (c *PoolStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		c.collect()
		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stop:
				return
			}
		}
	}()
}

func (c *PoolStatsCollector) collect() {
	stats := c.provider.Stat()
	for state, v := range map[string]int32{
		"total":        stats.TotalConns(),
		"idle":         stats.IdleConns(),
		"in_use":       stats.AcquiredConns(),
		"constructing": stats.ConstructingConns(),
		"max":          stats.MaxConns(),
	} {
		DBConnectionPoolSize.WithLabelValues(state).Set(float64(v))
	}
}

// Stop ends collection and waits for the collecting goroutine. It may be
// called more than once.
func (c *PoolStatsCollector) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
	c.wg.Wait()
}

// Result maps an error to a result label value.
func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}

// ObservePostMutation records the outcome and duration of a post write.
func ObservePostMutation(operation, result string, durationSeconds float64) {
	PostMutationsTotal.WithLabelValues(operation, result).Inc()
	PostMutationDuration.WithLabelValues(operation).Observe(durationSeconds)
}

// ObserveUpload records one upload. Bytes are only counted on success.
func ObserveUpload(bucket, result string, bytes int64) {
	UploadsTotal.WithLabelValues(bucket, result).Inc()
	if result == ResultSuccess && bytes > 0 {
		UploadBytesTotal.WithLabelValues(bucket).Add(float64(bytes))
	}
}

// ObserveUploadRollback records the cleanup of a failed upload batch.
func ObserveUploadRollback(bucket, result string) {
	UploadRollbacksTotal.WithLabelValues(bucket, result).Inc()
}

// ObserveSignIn records a sign-in attempt.
func ObserveSignIn(result string) {
	SignInAttemptsTotal.WithLabelValues(result).Inc()
}

// ObserveAuthEvent records an auth state change delivered by the gateway.
func ObserveAuthEvent(event string) {
	AuthEventsTotal.WithLabelValues(event).Inc()
}

// ObserveGuardRejection records a request turned away by the route guard.
func ObserveGuardRejection(kind string) {
	GuardRejectionsTotal.WithLabelValues(kind).Inc()
}

// Timer measures one operation for a histogram.
type Timer struct {
	start time.Time
}

// NewTimer starts a Timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the time elapsed since NewTimer.
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(time.Since(t.start).Seconds())
}

// LogHealthCheckMetrics logs the pool statistics seen by a health check.
func LogHealthCheckMetrics(ctx context.Context, pool *pgxpool.Pool) {
	stats := pool.Stat()
	logger.DebugContext(ctx, "Database pool stats",
		slog.Int("total_conns", int(stats.TotalConns())),
		slog.Int("idle_conns", int(stats.IdleConns())),
		slog.Int("acquired_conns", int(stats.AcquiredConns())),
		slog.Int64("acquire_count", stats.AcquireCount()),
		slog.Int64("canceled_acquire_count", stats.CanceledAcquireCount()),
		slog.Duration("acquire_duration", stats.AcquireDuration()),
	)
}
