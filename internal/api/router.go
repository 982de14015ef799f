package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spoonstory/podcast-platform/internal/api/handler"
	"github.com/spoonstory/podcast-platform/internal/api/middleware"
	"github.com/spoonstory/podcast-platform/internal/core/ports"
	"github.com/spoonstory/podcast-platform/internal/core/service"
	mongodb "github.com/spoonstory/podcast-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/spoonstory/podcast-platform/internal/infrastructure/db/redis"
)

// Config carries the router's tunables.
type Config struct {
	JWTSecret       string
	TokenTTL        time.Duration
	RateLimitMax    int64
	RateLimitWindow time.Duration
	// UploadDir is the content directory served under /uploads.
	UploadDir string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, files ports.FileStore, cfg Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.BodyLimit("100M"))
	e.Use(middleware.SecureHeaders())
	e.Use(echoprometheus.NewMiddleware("podcast"))

	limiter := redisdb.NewFixedWindowLimiter(rdb, cfg.RateLimitMax, cfg.RateLimitWindow)
	e.Use(middleware.RateLimit(limiter, log))

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	series := mongodb.NewSeriesRepository(db)
	episodes := mongodb.NewEpisodeRepository(db)
	history := mongodb.NewHistoryRepository(db)
	likes := mongodb.NewLikeRepository(db)

	authService := service.NewAuthService(users, cfg.JWTSecret, cfg.TokenTTL, log)
	seriesService := service.NewSeriesService(series, episodes, likes, users, files, log)
	episodeService := service.NewEpisodeService(episodes, series, users, files, log)
	historyService := service.NewHistoryService(history, episodes, log)

	authHandler := handler.NewAuthHandler(authService)
	seriesHandler := handler.NewSeriesHandler(seriesService)
	episodeHandler := handler.NewEpisodeHandler(episodeService)
	uploadHandler := handler.NewUploadHandler(seriesService)
	historyHandler := handler.NewHistoryHandler(historyService)

	requireAuth := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Series ---
	e.POST("/series", seriesHandler.Create, requireAuth)
	e.GET("/series", seriesHandler.List)
	e.GET("/series/:id", seriesHandler.Get)
	e.PUT("/series/:id", seriesHandler.Update, requireAuth)
	e.DELETE("/series/:id", seriesHandler.Delete, requireAuth)

	// --- Episodes ---
	e.POST("/episodes", episodeHandler.Create, requireAuth)
	e.GET("/episodes", episodeHandler.List)
	e.GET("/episodes/:id", episodeHandler.Get)
	e.PUT("/episodes/:id", episodeHandler.Update, requireAuth)
	e.DELETE("/episodes/:id", episodeHandler.Delete, requireAuth)

	// --- Uploads & listening history ---
	e.POST("/upload/thumbnail", uploadHandler.Thumbnail, requireAuth)
	e.POST("/listening-history", historyHandler.Record, requireAuth)

	// Uploaded content is served straight from the content directory.
	e.Static("/uploads", cfg.UploadDir+"/uploads")

	// --- Health probes & metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
