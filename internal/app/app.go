package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/leitner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/leitner-backend/internal/adapter/postgres/card"
	"github.com/heartmarshall/leitner-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/leitner-backend/internal/auth"
	"github.com/heartmarshall/leitner-backend/internal/config"
	authsvc "github.com/heartmarshall/leitner-backend/internal/service/auth"
	"github.com/heartmarshall/leitner-backend/internal/service/study"
	"github.com/heartmarshall/leitner-backend/internal/transport/middleware"
	"github.com/heartmarshall/leitner-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and serves the REST API until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	return Serve(ctx, cfg, NewLogger(cfg.Log))
}

// Serve connects to the database, wires repositories, services and handlers,
// and runs the HTTP server. Cancelling ctx triggers a graceful shutdown
// bounded by server.shutdown_timeout.
func Serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Study.Timezone),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	// Repositories
	cardRepo := card.New(pool)
	userRepo := user.New(pool)
	txManager := postgres.NewTxManager(pool)

	// Services
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, userRepo, jwtManager, cfg.Auth)
	studyService := study.NewService(logger, cardRepo, txManager, study.Config{
		Location:           cfg.Study.Location,
		ActivityWindowDays: cfg.Study.ActivityWindowDays,
		QuizSize:           cfg.Study.QuizSize,
		MasteredLimit:      cfg.Study.MasteredLimit,
		MasteredLimitMax:   cfg.Study.MasteredLimitMax,
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := newRouter(routerDeps{
		Config:     cfg,
		Logger:     logger,
		Health:     rest.NewHealthHandler(pool, Version),
		Flashcards: rest.NewFlashcardHandler(studyService, logger, locationBase(cfg.API)),
		Auth:       rest.NewAuthHandler(authService, logger),
		Tokens:     authService,
		Limiter:    limiter,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// locationBase joins the public base URL and API base path used for
// Location headers.
func locationBase(api config.APIConfig) string {
	return strings.TrimRight(api.BaseURL, "/") + strings.TrimRight(api.BasePath, "/")
}
