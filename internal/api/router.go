package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bazaarly/marketplace-system/internal/api/handler"
	"github.com/bazaarly/marketplace-system/internal/api/middleware"
	"github.com/bazaarly/marketplace-system/internal/core/domain"
	"github.com/bazaarly/marketplace-system/internal/core/ports"
	"github.com/bazaarly/marketplace-system/internal/core/service"
	"github.com/bazaarly/marketplace-system/internal/infrastructure/config"
	mongodb "github.com/bazaarly/marketplace-system/internal/infrastructure/db/mongo"
	redisdb "github.com/bazaarly/marketplace-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The notifier is constructed and started by the caller so the worker
// lifecycle stays with the process, not the router.
func NewRouter(db *mongo.Database, rdb *redis.Client, notifier ports.Notifier, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Stores ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	verifications := redisdb.NewVerificationStore(rdb)
	revocations := redisdb.NewRevocationList(rdb)

	// --- Services ---
	registrationService := service.NewRegistrationService(userRepo, notifier, log)
	authService := service.NewAuthService(userRepo, verifications, revocations, cfg.JWTSecret, cfg.TokenTTL, log)
	productService := service.NewProductService(productRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(registrationService, authService)
	userHandler := handler.NewUserHandler(userRepo)
	productHandler := handler.NewProductHandler(productService)
	dashboardHandler := handler.NewDashboardHandler(userRepo)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))
	e.Use(middleware.Session(cfg.JWTSecret, revocations))

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/signin", authHandler.Signin)
	e.POST("/auth/signout", authHandler.Signout, middleware.RequireAuth())
	e.GET("/auth/verify", authHandler.Verify)

	// --- API boundaries ---
	v1 := e.Group("/v1")
	v1.GET("/me", userHandler.Me, middleware.RequireAuth())
	v1.GET("/users", userHandler.List, middleware.RequireRole(domain.RoleAdmin))
	v1.PATCH("/delivery/availability", userHandler.UpdateAvailability, middleware.RequireRole(domain.RoleDelivery))
	v1.GET("/products", productHandler.List)
	v1.POST("/products", productHandler.Create, middleware.RequireRole(domain.RoleVendor))
	v1.GET("/vendor/products", productHandler.ListMine, middleware.RequireRole(domain.RoleVendor))

	// --- Page boundaries ---
	dash := e.Group("/dashboard")
	dash.GET("/customer", dashboardHandler.Home, middleware.RequireRolePage(domain.RoleCustomer))
	dash.GET("/admin", dashboardHandler.Home, middleware.RequireRolePage(domain.RoleAdmin))
	dash.GET("/vendor", dashboardHandler.Home, middleware.RequireRolePage(domain.RoleVendor))
	dash.GET("/delivery", dashboardHandler.Home, middleware.RequireRolePage(domain.RoleDelivery))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
