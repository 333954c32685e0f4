package routes

import (
	"net/http"

	"github.com/dealerhub/sales-api/internal/config"
	"github.com/dealerhub/sales-api/internal/domain/entity"
	domainRepo "github.com/dealerhub/sales-api/internal/domain/repository"
	"github.com/dealerhub/sales-api/internal/presentation/http/handler"
	"github.com/dealerhub/sales-api/internal/presentation/http/middleware"
	"github.com/dealerhub/sales-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Customer    *handler.CustomerHandler
	Quotation   *handler.QuotationHandler
	Task        *handler.TaskHandler
	Option      *handler.OptionHandler
	Leaderboard *handler.LeaderboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	RateLimiter     *middleware.RateLimiter
	Logger          *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.RecoveryMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		// Public routes are limited per client IP
		public := v1.Group("")
		public.Use(deps.RateLimiter.Middleware())
		registerAuthRoutes(public, h)

		// Protected routes are limited per user
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(deps.RateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	protected.GET("/profile", h.Auth.Profile)

	idempotent := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo:   deps.IdempotencyRepo,
		Logger: deps.Logger,
	})

	registerCustomerRoutes(protected, h, idempotent)
	registerQuotationRoutes(protected, h, idempotent)
	registerTaskRoutes(protected, h, idempotent)
	registerOptionRoutes(protected, h)
	registerLeaderboardRoutes(protected, h)
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers, idempotent gin.HandlerFunc) {
	customers := protected.Group("/customers")
	customers.Use(middleware.RequirePermission(entity.PermissionManageCustomers))
	{
		customers.GET("", h.Customer.List)
		customers.POST("", idempotent, h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerQuotationRoutes(protected *gin.RouterGroup, h *Handlers, idempotent gin.HandlerFunc) {
	quotations := protected.Group("/quotations")
	quotations.Use(middleware.RequirePermission(entity.PermissionManageQuotations))
	{
		quotations.GET("", h.Quotation.List)
		// Creation replays the stored response for a retried Idempotency-Key
		quotations.POST("", idempotent, h.Quotation.Create)
		quotations.POST("/preview", h.Quotation.Preview)
		quotations.GET("/:id", h.Quotation.Get)
		quotations.PUT("/:id", idempotent, h.Quotation.Update)
		quotations.PUT("/:id/status", h.Quotation.UpdateStatus)
		quotations.DELETE("/:id", h.Quotation.Delete)
	}
}

func registerTaskRoutes(protected *gin.RouterGroup, h *Handlers, idempotent gin.HandlerFunc) {
	tasks := protected.Group("/tasks")
	tasks.Use(middleware.RequirePermission(entity.PermissionManageTasks))
	{
		tasks.GET("", h.Task.List)
		tasks.GET("/sections", h.Task.Sections)
		tasks.POST("", idempotent, h.Task.Create)
		tasks.GET("/:id", h.Task.Get)
		tasks.PUT("/:id", h.Task.Update)
		tasks.DELETE("/:id", h.Task.Delete)
	}
}

func registerOptionRoutes(protected *gin.RouterGroup, h *Handlers) {
	options := protected.Group("/options")
	{
		options.GET("", h.Option.List)
		options.GET("/:name", h.Option.Get)
	}
}

func registerLeaderboardRoutes(protected *gin.RouterGroup, h *Handlers) {
	leaderboard := protected.Group("/leaderboard")
	leaderboard.Use(middleware.RequirePermission(entity.PermissionViewLeaderboard))
	{
		leaderboard.GET("", h.Leaderboard.Get)
	}
}
