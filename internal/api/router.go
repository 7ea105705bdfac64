package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/learnhub/accounts-api/internal/api/handler"
	"github.com/learnhub/accounts-api/internal/api/middleware"
	"github.com/learnhub/accounts-api/internal/core/service"
	mongodb "github.com/learnhub/accounts-api/internal/infrastructure/db/mongo"
	redisdb "github.com/learnhub/accounts-api/internal/infrastructure/db/redis"
	"github.com/learnhub/accounts-api/internal/pkg/config"
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
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	enrollmentRepo := mongodb.NewEnrollmentRepository(db)
	denylist := redisdb.NewTokenDenylist(rdb)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, cfg.RefreshGraceMultiplier, denylist)
	accountService := service.NewAccountService(accountRepo, enrollmentRepo, service.NewBcryptHasher(0), tokenService)

	authHandler := handler.NewAuthHandler(accountService)
	userHandler := handler.NewUserHandler(accountService)
	guard := middleware.Auth(tokenService, accountRepo)

	// --- Probes and metrics (no auth required) ---
	e.GET("/ping", handler.NewPingHandler().Ping)
	e.GET("/health/ready", handler.NewReadinessHandler(db, rdb).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout, guard)
	// Refresh stays outside the guard: it must accept tokens the guard
	// already considers expired, as long as the grace window holds.
	auth.POST("/refresh", authHandler.Refresh)

	// --- User routes ---
	users := e.Group("/users", guard)
	users.GET("/me", userHandler.Me)
	users.PUT("/me", userHandler.UpdateMe)
	users.GET("", userHandler.Index, middleware.RequireAdmin())
	users.GET("/:id", userHandler.Show, middleware.RequireAdmin())
	users.DELETE("/:id", userHandler.Destroy, middleware.RequireAdmin())

	return e
}
