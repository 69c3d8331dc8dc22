// @title Durable Fastener CMS API
// @version 1.0
// @description Catalogue, careers and site content API for Durable Fastener Pvt. Ltd.
// @host localhost:8081
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	category_cache "github.com/durable-fastener/durable-cms-backend/cache"
	"github.com/durable-fastener/durable-cms-backend/config"
	_ "github.com/durable-fastener/durable-cms-backend/docs"
	"github.com/durable-fastener/durable-cms-backend/metrics"
	"github.com/durable-fastener/durable-cms-backend/middleware"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/routes/cms_routes"
	"github.com/durable-fastener/durable-cms-backend/routes/storefront_routes"
	"github.com/durable-fastener/durable-cms-backend/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	cfg := config.Load()
	logger := config.InitLogger(cfg.Logger, cfg.Server.AppEnv)
	defer logger.Sync()

	if err := config.InitDB(cfg.Database, cfg.IsProduction()); err != nil {
		logger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer config.CloseDB()

	if err := models.AutoMigrate(config.CmsGorm); err != nil {
		logger.Fatal("Migration failed", zap.Error(err))
	}

	if err := config.ConnectRedis(cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, admin rate limiting disabled", zap.Error(err))
	}
	defer config.CloseRedis()

	jwtService, err := services.NewJWTService(cfg.JWT.Secret)
	if err != nil {
		logger.Fatal("JWT_SECRET environment variable not set", zap.Error(err))
	}

	deps := services.Deps{
		DB:    config.CmsGorm,
		Cache: category_cache.New(category_cache.TTL),
		JWT:   jwtService,
	}

	if cfg.Cloudinary.CloudName != "" {
		store, err := services.NewCloudinaryStore(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret, cfg.Cloudinary.Folder)
		if err != nil {
			logger.Fatal("Failed to initialize Cloudinary", zap.Error(err))
		}
		deps.Store = store
	} else {
		logger.Warn("Cloudinary not configured, uploads disabled")
	}

	if cfg.Gemini.APIKey != "" {
		ctx, cancel := config.WithTimeout()
		recommender, err := services.NewGeminiRecommender(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		cancel()
		if err != nil {
			logger.Warn("Gemini unavailable, finder uses keyword matching", zap.Error(err))
		} else {
			deps.Recommender = recommender
		}
	}

	svc := services.New(deps)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}))

	api := router.Group("/api/v1")

	// Admin CMS (at /api/v1/admin prefix)
	adminGroup := api.Group("/admin")
	if config.RedisClient != nil {
		adminGroup.Use(middleware.RateLimiter(config.RedisClient, cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	protected := cms_routes.SetupAdminRoutes(adminGroup, config.CmsGorm, svc)
	cms_routes.SetupCategoryRoutes(protected, svc)
	cms_routes.SetupProductRoutes(protected, svc)
	cms_routes.SetupJobRoutes(protected, svc)
	cms_routes.SetupContentRoutes(protected, svc)

	// Public website
	var publicLimit []gin.HandlerFunc
	if config.RedisClient != nil {
		publicLimit = append(publicLimit, middleware.RateLimiter(config.RedisClient, cfg.PublicRateLimit.Requests, cfg.PublicRateLimit.Window))
	}
	storefront_routes.SetupStorefrontRoutes(api, svc, publicLimit...)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	go cleanupSessions(svc.Sessions)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server is running", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
	logger.Info("Server stopped")
}

// cleanupSessions prunes expired admin sessions once an hour.
func cleanupSessions(sessions *services.AdminSessionService) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		ctx, cancel := config.WithCustomTimeout(time.Minute)
		if _, err := sessions.CleanupExpiredSessions(ctx); err != nil {
			config.Log.Warn("[session.cleanup] failed", zap.Error(err))
		}
		cancel()
	}
}
