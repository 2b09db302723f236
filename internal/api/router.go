package api

import (
	"context"
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/ratewise/store-ratings-api/docs"
	"github.com/ratewise/store-ratings-api/internal/api/handler"
	"github.com/ratewise/store-ratings-api/internal/api/middleware"
	"github.com/ratewise/store-ratings-api/internal/core/domain"
	"github.com/ratewise/store-ratings-api/internal/core/service"
	"github.com/ratewise/store-ratings-api/internal/infrastructure/config"
	"github.com/ratewise/store-ratings-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/ratewise/store-ratings-api/internal/infrastructure/db/redis"
	"github.com/ratewise/store-ratings-api/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with every route registered. The audit
// dispatcher's workers are bound to ctx and drain until it is cancelled.
func NewRouter(ctx context.Context, cfg *config.Config, db *sql.DB, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ratings"))

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(db)
	storeRepo := postgres.NewStoreRepository(db)
	ratingRepo := postgres.NewRatingRepository(db)
	auditRepo := postgres.NewAuditRepository(db)

	// --- Audit pipeline ---
	auditSvc := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditSvc, log)
	dispatcher.Start(ctx)

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret, 0)
	limiter := redisinfra.NewLoginLimiter(rdb)
	authSvc := service.NewAuthService(userRepo, tokens, limiter, dispatcher, cfg.BcryptCost, log)
	ratingSvc := service.NewRatingService(ratingRepo, storeRepo, dispatcher, log)
	storeSvc := service.NewStoreService(storeRepo, ratingRepo, dispatcher, log)
	userSvc := service.NewUserService(userRepo, dispatcher, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authSvc)
	storeHandler := handler.NewStoreHandler(storeSvc, ratingSvc)
	userHandler := handler.NewUserHandler(userSvc, authSvc, ratingSvc)
	ownerHandler := handler.NewOwnerHandler(storeSvc)
	adminHandler := handler.NewAdminHandler(userSvc, storeSvc)

	authn := middleware.Auth(tokens)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Public catalog, rating submission behind auth ---
	stores := e.Group("/api/stores")
	stores.GET("", storeHandler.List)
	stores.GET("/:id", storeHandler.Get)
	stores.GET("/:id/ratings", storeHandler.Ratings)
	stores.POST("/:id/rate", storeHandler.Rate, authn, middleware.RequireRole(domain.RoleUser))

	// --- End-user routes ---
	user := e.Group("/api/user", authn, middleware.RequireRole(domain.RoleUser))
	user.GET("/profile", userHandler.Profile)
	user.PUT("/profile", userHandler.UpdateProfile)
	user.PUT("/change-password", userHandler.ChangePassword)
	user.GET("/ratings", userHandler.Ratings)

	// --- Store-owner routes ---
	owner := e.Group("/api/store-owner", authn, middleware.RequireRole(domain.RoleStoreOwner))
	owner.GET("/store", ownerHandler.Store)
	owner.POST("/store", ownerHandler.Create)
	owner.PUT("/store", ownerHandler.Update)
	owner.GET("/ratings", ownerHandler.Ratings)

	// --- Admin routes ---
	admin := e.Group("/api/admin", authn, middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/users", adminHandler.Users)
	admin.GET("/stores", adminHandler.Stores)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.DELETE("/stores/:id", adminHandler.DeleteStore)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
