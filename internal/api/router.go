package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/altfolio/portfolio-api/internal/api/handler"
	"github.com/altfolio/portfolio-api/internal/api/middleware"
	"github.com/altfolio/portfolio-api/internal/core/domain"
	"github.com/altfolio/portfolio-api/internal/core/service"
	"github.com/altfolio/portfolio-api/internal/infrastructure/config"
	mongodb "github.com/altfolio/portfolio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/altfolio/portfolio-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portfolio"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	investmentRepo := mongodb.NewInvestmentRepository(db)
	summaryCache := redisdb.NewSummaryCache(rdb, cfg.Cache.SummaryTTL)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour, log)
	simulator := service.NewSimulator(cfg.SimulationSeed)
	investmentService := service.NewInvestmentService(investmentRepo, userRepo, summaryCache, simulator, log)

	authHandler := handler.NewAuthHandler(authService)
	investmentHandler := handler.NewInvestmentHandler(investmentService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Investment routes (authenticated, known roles only) ---
	v1 := e.Group("/v1", authMiddleware, middleware.RBAC(domain.RoleAdmin, domain.RoleViewer))
	v1.GET("/investments", investmentHandler.List)
	v1.POST("/investments", investmentHandler.Create)
	v1.GET("/investments/:id", investmentHandler.Get)
	v1.PUT("/investments/:id", investmentHandler.Update)
	v1.DELETE("/investments/:id", investmentHandler.Delete)
	v1.GET("/portfolio/summary", investmentHandler.Summary)
	v1.GET("/portfolio/simulation", investmentHandler.Simulate)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
