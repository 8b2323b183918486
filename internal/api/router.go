package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/useraccounts/user-management/internal/api/handler"
	"github.com/useraccounts/user-management/internal/api/metrics"
	"github.com/useraccounts/user-management/internal/api/middleware"
	"github.com/useraccounts/user-management/internal/core/domain"
	"github.com/useraccounts/user-management/internal/core/service"
	"github.com/useraccounts/user-management/internal/infrastructure/config"
	mongodb "github.com/useraccounts/user-management/internal/infrastructure/db/mongo"
	redisdb "github.com/useraccounts/user-management/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes registered. Every
// dependency is constructed here from the injected config and connections;
// no component reads ambient state.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("users"))

	// --- Dependencies ---
	repo := mongodb.NewUserRepository(db)
	cache := redisdb.NewUserCache(rdb, cfg.Auth.IdentityCacheTTL())
	hasher := metrics.NewInstrumentedHasher(service.NewBcryptHasher(cfg.Auth.BcryptCost, cfg.Auth.HasherWorkers))
	tokens := service.NewJWTTokenService(cfg.Auth.AccessSecret, cfg.Auth.RefreshSecret, cfg.Auth.AccessTTL(), cfg.Auth.RefreshTTL())
	accessControl := service.NewAccessControl(tokens, repo, cache, log)
	userService := service.NewUserService(repo, hasher, tokens, cache, log)

	userHandler := handler.NewUserHandler(userService)
	authRequired := middleware.Auth(accessControl)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	adminOrDev := middleware.RBAC(domain.RoleAdmin, domain.RoleDev)

	// --- User routes ---
	users := e.Group("/users")
	users.POST("/register", userHandler.Register)
	users.POST("/auth", userHandler.Auth)
	users.POST("/refresh", userHandler.Refresh)
	users.GET("/me", userHandler.Me, authRequired)
	users.GET("/list", userHandler.List, authRequired, adminOrDev)
	users.GET("/:id", userHandler.GetByID)
	users.PUT("/:id", userHandler.Update, authRequired, adminOnly)
	users.DELETE("/:id", userHandler.Delete, authRequired, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
