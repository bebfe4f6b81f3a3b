package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio/database"
	"portfolio/docs"
	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/controllers"
	"portfolio/internal/logger"
	"portfolio/internal/metrics"
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Error loading configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Portfolio API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	db, err := database.ConnectDatabase(cfg.Database, logger.Gorm(log, 500*time.Millisecond))
	if err != nil {
		log.Fatal("database unavailable", zap.Error(err))
	}
	if err := database.MigrateDatabase(db); err != nil {
		log.Fatal("failed to run database migrations", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	database.MonitorDBConnections(ctx, db, 10*time.Second)

	// Views are still counted without Redis, just not de-duplicated.
	var views cache.ViewDeduper = cache.NoopViewDeduper{}
	if cfg.Redis.URL != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Warn("redis unavailable, view de-duplication disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			views = cache.NewRedisViewDeduper(redisClient, cfg.Redis.ViewDedupeWindow)
			log.Info("connected to redis", zap.Duration("view_dedupe_window", cfg.Redis.ViewDedupeWindow))
		}
	}

	auth, err := middleware.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	if err != nil {
		log.Fatal("admin authentication is not configured", zap.Error(err))
	}

	gin.SetMode(cfg.Server.Mode)
	router := newRouter(cfg, db, auth, views, log)

	server := &http.Server{
		Addr:           ":" + cfg.Server.Port,
		Handler:        router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info("server starting",
			zap.String("port", cfg.Server.Port),
			zap.String("docs", "http://localhost:"+cfg.Server.Port+"/swagger/index.html"),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newRouter(cfg config.Config, db *gorm.DB, auth *middleware.Authenticator, views cache.ViewDeduper, log *zap.Logger) *gin.Engine {
	articleRepo := repository.NewArticleRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	siteSettingRepo := repository.NewSiteSettingRepository(db)

	articleController := controllers.NewArticleController(articleRepo, views)
	projectController := controllers.NewProjectController(projectRepo)
	messageController := controllers.NewMessageController(messageRepo)
	siteConfigController := controllers.NewSiteConfigController(siteSettingRepo)
	authController := controllers.NewAuthController(auth, controllers.AdminCredentials{
		Username:     cfg.Auth.AdminUsername,
		PasswordHash: cfg.Auth.AdminPasswordHash,
	}, cfg.Auth.SecureCookie)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(log), metrics.Middleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Portfolio API is running",
			"version": docs.SwaggerInfo.Version,
		})
	})
	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := database.Ping(ctx, db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": true})
	})
	router.GET("/metrics", metrics.Handler())

	cacheControl := cfg.HTTP.CacheControl
	routes.RegisterArticleRoutes(router, articleController, auth, cacheControl)
	routes.RegisterProjectRoutes(router, projectController, auth, cacheControl)
	routes.RegisterMessageRoutes(router, messageController, auth)
	routes.RegisterSiteConfigRoutes(router, siteConfigController, auth, cacheControl)
	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterSwaggerRoutes(router)

	routes.RegisterCollectionRoutes(router, "nav", controllers.NewCollectionController[models.NavItem](
		"navigation item", repository.NewCollectionRepository[models.NavItem](db, "sort_order ASC, id ASC")), auth, cacheControl)
	routes.RegisterCollectionRoutes(router, "skills", controllers.NewCollectionController[models.Skill](
		"skill", repository.NewCollectionRepository[models.Skill](db, "sort_order ASC, id ASC", "category"), "category"), auth, cacheControl)
	routes.RegisterCollectionRoutes(router, "experience", controllers.NewCollectionController[models.Experience](
		"experience", repository.NewCollectionRepository[models.Experience](db, "sort_order ASC, start_date DESC")), auth, cacheControl)
	routes.RegisterCollectionRoutes(router, "education", controllers.NewCollectionController[models.Education](
		"education", repository.NewCollectionRepository[models.Education](db, "sort_order ASC, start_date DESC")), auth, cacheControl)
	routes.RegisterCollectionRoutes(router, "timeline", controllers.NewCollectionController[models.TimelineEvent](
		"timeline event", repository.NewCollectionRepository[models.TimelineEvent](db, "event_date DESC, sort_order ASC", "category"), "category"), auth, cacheControl)

	return router
}
