package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/auth"
	"blog-backend/internal/config"
	"blog-backend/internal/domain"
	"blog-backend/internal/gateway"
	"blog-backend/internal/gateway/memory"
	"blog-backend/internal/gateway/supabase"
	"blog-backend/internal/handler"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/internal/kv"
	_ "blog-backend/internal/kv/memory"
	_ "blog-backend/internal/kv/redis"
	"blog-backend/internal/logger"
	"blog-backend/internal/metrics"
	"blog-backend/internal/middleware"
	"blog-backend/internal/ratelimit"
	"blog-backend/internal/repository"
	"blog-backend/internal/service"
	"blog-backend/internal/session"
	"blog-backend/internal/validator"
)

const (
	sessionIdleTimeout   = 30 * time.Minute
	tokenRefreshInterval = time.Minute
	limiterIdle          = 10 * time.Minute
)

// backend is the hosted auth provider together with its object storage.
type backend interface {
	gateway.Provider
	gateway.ObjectStore
}

func newBackend(cfg *config.Config, profiles repository.ProfileRepository) (backend, error) {
	if cfg.GatewayDriver == "memory" {
		logger.Warn("Using the in-memory gateway; accounts and uploads are lost on restart")
		return memory.New(memory.Options{
			BaseURL: "http://localhost:" + cfg.ServerPort + "/storage",
			OnSignUp: func(ctx context.Context, u *domain.User) error {
				username, _ := u.UserMetadata["username"].(string)
				return profiles.Create(ctx, &domain.Profile{ID: u.ID, Username: username, Email: u.Email})
			},
		}), nil
	}
	return supabase.New(cfg.GatewayURL, cfg.GatewayAnonKey, cfg.GatewayTimeout)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Configure(cfg.LogLevel)

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		URL:               cfg.DatabaseURL(),
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	postRepo := repository.NewPostgresPostRepository(pool)
	tagRepo := repository.NewPostgresTagRepository(pool)
	commentRepo := repository.NewPostgresCommentRepository(pool)
	profileRepo := repository.NewPostgresProfileRepository(pool)

	// Hosted backend
	gw, err := newBackend(cfg, profileRepo)
	if err != nil {
		logger.Fatal("Failed to create gateway",
			slog.String("driver", cfg.GatewayDriver),
			slog.String("error", err.Error()))
	}
	connector := gateway.NewConnector(gw, gateway.ClientOptions{
		RefreshInterval: tokenRefreshInterval,
		Logger:          logger.WithFields(slog.String("component", "gateway")),
		Observe: func(e gateway.AuthEvent) {
			metrics.ObserveAuthEvent(string(e))
		},
	})

	// Browser sessions
	sessionKV, err := kv.NewStoreFromConfig(kv.Config{
		Backend:  kv.Backend(cfg.SessionBackend),
		RedisURL: cfg.RedisURL,
	})
	if err != nil {
		logger.Fatal("Failed to create session store",
			slog.String("backend", cfg.SessionBackend),
			slog.String("error", err.Error()))
	}
	defer sessionKV.Close()

	if cfg.SessionKey == "" {
		logger.Warn("SESSION_KEY is not set; session cookies will not survive a restart")
	}
	codec, err := auth.NewCookieCodec(cfg.SessionKey, cfg.SessionTTL)
	if err != nil {
		logger.Fatal("Failed to create cookie codec",
			slog.String("error", err.Error()))
	}

	// Initialize validator
	v := validator.NewValidator()

	registry := session.NewRegistry(connector, sessionKV, session.Deps{
		Profiles:  profileRepo,
		Objects:   gw,
		Validator: v,
	}, session.RegistryOptions{
		TTL:         cfg.SessionTTL,
		IdleTimeout: sessionIdleTimeout,
	})

	// Initialize services
	postService := service.NewPostService(postRepo, tagRepo, gw, v, service.PostOptions{
		TagPolicy:      service.TagPolicy(cfg.TagFilterPolicy),
		UploadRollback: cfg.UploadRollback,
	})
	commentService := service.NewCommentService(commentRepo, postRepo, v, service.CommentOptions{
		Moderation: cfg.CommentModeration,
	})

	limiter := ratelimit.New(cfg.SignInRatePerSecond, cfg.SignInBurst, limiterIdle)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.RouterConfig{
		Health:   handler.NewHealthHandler(pool, sessionKV),
		Pages:    handler.NewPageHandler(postService, commentService, cfg.DisplayTimezone),
		Posts:    handler.NewPostHandler(postService),
		Comments: handler.NewCommentHandler(commentService),
		Auth:     handler.NewAuthHandler(limiter),
		Codec:    codec,
		Sessions: registry,
		Cookie: middleware.CookieOptions{
			Name:   cfg.SessionCookieName,
			Secure: cfg.SessionCookieSecure,
		},
		RequestLogger: gin.Logger(),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("gateway", cfg.GatewayDriver),
			slog.String("sessions", cfg.SessionBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	// Stop background work once no request can reach it
	logger.Info("Closing session registry")
	registry.Close()
	limiter.Stop()

	logger.Info("Server exited")
}
