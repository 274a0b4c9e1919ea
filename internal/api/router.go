package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/threadline/catalog-api/internal/api/handler"
	"github.com/threadline/catalog-api/internal/api/middleware"
	"github.com/threadline/catalog-api/internal/core/ports"
	"github.com/threadline/catalog-api/internal/core/service"
	"github.com/threadline/catalog-api/internal/infrastructure/config"
	mongodb "github.com/threadline/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/threadline/catalog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, which disables login throttling.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	var limiter ports.LoginLimiter
	if rdb != nil {
		limiter = redisdb.NewLoginLimiter(rdb, cfg.LoginMaxAttempts)
	}

	adminRepo := mongodb.NewAdminRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	imageStore := mongodb.NewImageStore(db)

	authService := service.NewAuthService(adminRepo, limiter, cfg.JWTSecret, log)
	catalogService := service.NewCatalogService(productRepo, imageStore, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(catalogService)
	imageHandler := handler.NewImageHandler(catalogService)

	requireToken := middleware.Auth(cfg.JWTSecret)
	requireAdmin := middleware.RequireAdmin()

	// --- Auth ---
	e.POST("/admin/login", authHandler.Login)

	// --- Catalog ---
	e.GET("/products", productHandler.List)
	e.POST("/products", productHandler.Create, requireToken, requireAdmin)
	e.PUT("/products/:id", productHandler.Update, requireToken, requireAdmin)
	e.DELETE("/products/:id", productHandler.Delete, requireToken, requireAdmin)

	// --- Images (reference URI target) ---
	e.GET("/images/:id", imageHandler.Get)

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
