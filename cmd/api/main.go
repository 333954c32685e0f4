package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dealerhub/sales-api/internal/application/service"
	"github.com/dealerhub/sales-api/internal/config"
	domainRepo "github.com/dealerhub/sales-api/internal/domain/repository"
	"github.com/dealerhub/sales-api/internal/infrastructure/database"
	"github.com/dealerhub/sales-api/internal/infrastructure/repository"
	"github.com/dealerhub/sales-api/internal/presentation/http/handler"
	"github.com/dealerhub/sales-api/internal/presentation/http/middleware"
	"github.com/dealerhub/sales-api/internal/presentation/http/routes"
	"github.com/dealerhub/sales-api/pkg/logger"
	"github.com/dealerhub/sales-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const idempotencyCleanupInterval = time.Hour

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.App.Env, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if cfg.App.Env == "production" || !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug, zlog)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.AutoMigrate(db, zlog); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	if err := database.SeedDefaultData(db, &cfg.Seed, zlog); err != nil {
		zlog.Warn("failed to seed default data", zap.Error(err))
	}

	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.App.Name,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	customerService := service.NewCustomerService(customerRepo)
	quotationService := service.NewQuotationService(quotationRepo, customerRepo)
	taskService := service.NewTaskService(taskRepo, customerRepo)
	optionService := service.NewOptionService(cfg.Catalog.VehicleModels, cfg.Catalog.Showrooms)
	leaderboardService := service.NewLeaderboardService(quotationRepo, userRepo)

	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService, jwtManager.AccessTokenExpiry()),
		Customer:    handler.NewCustomerHandler(customerService),
		Quotation:   handler.NewQuotationHandler(quotationService),
		Task:        handler.NewTaskHandler(taskService),
		Option:      handler.NewOptionHandler(optionService),
		Leaderboard: handler.NewLeaderboardHandler(leaderboardService),
	}

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfigFrom(&cfg.RateLimit))
	defer rateLimiter.Close()

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		RateLimiter:     rateLimiter,
		Logger:          zlog,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go purgeIdempotencyKeys(ctx, idempotencyRepo, zlog)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("starting server",
			zap.String("app", cfg.App.Name),
			zap.String("env", cfg.App.Env),
			zap.String("port", port),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("server shutdown failed", zap.Error(err))
	}
}

// purgeIdempotencyKeys deletes expired idempotency keys until ctx is done
func purgeIdempotencyKeys(ctx context.Context, repo domainRepo.IdempotencyRepository, zlog *zap.Logger) {
	ticker := time.NewTicker(idempotencyCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := repo.DeleteExpired(ctx, now)
			if err != nil {
				zlog.Warn("failed to purge idempotency keys", zap.Error(err))
				continue
			}
			if n > 0 {
				zlog.Info("purged idempotency keys", zap.Int64("count", n))
			}
		}
	}
}
