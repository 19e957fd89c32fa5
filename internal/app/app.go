// Package app assembles the store, repositories, services and router into a runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/noah-isme/saarthi-api/internal/generator"
	"github.com/noah-isme/saarthi-api/internal/handler"
	"github.com/noah-isme/saarthi-api/internal/repository"
	"github.com/noah-isme/saarthi-api/internal/router"
	"github.com/noah-isme/saarthi-api/internal/service"
	"github.com/noah-isme/saarthi-api/internal/store"
	"github.com/noah-isme/saarthi-api/pkg/config"
)

// Options carries collaborators that differ between production and tests.
type Options struct {
	// Redis is optional; nil disables the analytics cache.
	Redis *redis.Client
	// Responder and Questioner default to the template generators.
	Responder  generator.ResponseGenerator
	Questioner generator.QuestionGenerator
	// HashCost overrides the bcrypt cost when positive.
	HashCost int
}

// App is a fully wired API server.
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	Store   *store.Store
	Engine  *gin.Engine
	Metrics *service.MetricsService

	cache *repository.CacheRepository
	ready atomic.Bool
}

// New wires every component over a fresh store and seeds demo accounts when configured.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts Options) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	a := &App{Config: cfg, Logger: logger, Store: store.New(), Metrics: service.NewMetricsService()}
	validate := validator.New()

	userRepo := repository.NewUserRepository(a.Store)
	chatRepo := repository.NewChatRepository(a.Store)
	assessmentRepo := repository.NewAssessmentRepository(a.Store)
	attemptRepo := repository.NewStudentAssessmentRepository(a.Store)
	progressRepo := repository.NewStudentProgressRepository(a.Store)
	interventionRepo := repository.NewInterventionRepository(a.Store)
	a.cache = repository.NewCacheRepository(opts.Redis, logger)

	cacheSvc := service.NewCacheService(a.cache, a.Metrics, cfg.Analytics.CacheTTL, logger, a.cache.Enabled())
	userSvc := service.NewUserService(userRepo, validate, logger).WithCache(cacheSvc)
	if opts.HashCost > 0 {
		userSvc.WithHashCost(opts.HashCost)
	}
	authSvc := service.NewAuthService(userRepo, validate, logger, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})
	chatSvc := service.NewChatService(chatRepo, opts.Responder, validate, a.Metrics, logger, cfg.Chat.HistoryLimit)
	assessmentSvc := service.NewAssessmentService(assessmentRepo, opts.Questioner, validate, a.Metrics, logger)
	attemptSvc := service.NewStudentAssessmentService(attemptRepo, validate, logger)
	progressSvc := service.NewProgressService(progressRepo, cacheSvc, validate, logger)
	interventionSvc := service.NewInterventionService(interventionRepo, cacheSvc, validate, logger)
	analyticsSvc := service.NewAnalyticsService(userRepo, progressRepo, interventionRepo, a.Store, cacheSvc, a.Metrics, logger, cfg.Analytics.CacheTTL)
	exportSvc := service.NewExportService(analyticsSvc, logger)

	if cfg.SeedDemoData {
		if err := service.SeedDemo(ctx, userSvc, logger); err != nil {
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
	}

	a.Engine = router.New(router.Options{
		APIPrefix:      cfg.APIPrefix,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		EnableDocs:     cfg.Env != config.EnvProduction,
		Logger:         logger,
		Metrics:        a.Metrics,
		Tokens:         authSvc,
	}, router.Handlers{
		Users:         handler.NewUserHandler(userSvc),
		Auth:          handler.NewAuthHandler(authSvc),
		Chat:          handler.NewChatHandler(chatSvc),
		Assessments:   handler.NewAssessmentHandler(assessmentSvc),
		Students:      handler.NewStudentHandler(attemptSvc, progressSvc),
		Interventions: handler.NewInterventionHandler(interventionSvc),
		Analytics:     handler.NewAnalyticsHandler(analyticsSvc, exportSvc),
		Metrics:       handler.NewMetricsHandler(a.Metrics, a.ready.Load),
	})

	a.ready.Store(true)
	return a, nil
}

// Serve listens on addr until ctx is cancelled, then drains in-flight requests
// within the configured shutdown timeout.
func (a *App) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: a.Engine}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("server starting", zap.String("addr", addr), zap.String("env", a.Config.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.ready.Store(false)
	a.Logger.Info("server shutting down", zap.Duration("timeout", a.Config.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

// Close releases external connections.
func (a *App) Close() error {
	return a.cache.Close()
}
