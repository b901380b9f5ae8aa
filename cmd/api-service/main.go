package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-news-aggregator/internal/api/config"
	delivery "golang-news-aggregator/internal/api/delivery/http"
	_ "golang-news-aggregator/internal/api/docs"
	"golang-news-aggregator/internal/api/repository"
	"golang-news-aggregator/internal/api/service"
	"golang-news-aggregator/pkg/logger"
	"golang-news-aggregator/pkg/postgres"
	"golang-news-aggregator/pkg/redis"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the API service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting API Service", logger.Field("name", cfg.App.Name))

	// Initialize database
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize Redis when response caching is enabled
	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisCfg := redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		}
		redisClient, err = redis.NewClient(redisCfg)
		if err != nil {
			appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
		}
		defer redisClient.Close()
	}

	// Initialize repositories
	outletRepo := repository.NewNewsOutletRepository(db.DB)
	authorRepo := repository.NewAuthorRepository(db.DB)
	articleRepo := repository.NewArticleRepository(db.DB)
	eventRepo := repository.NewEventRepository(db.DB)
	scrapingLogRepo := repository.NewScrapingLogRepository(db.DB)

	// Initialize services
	outletSvc := service.NewOutletService(outletRepo, appLogger)
	authorSvc := service.NewAuthorService(authorRepo, appLogger)
	articleSvc := service.NewArticleService(articleRepo, appLogger)
	eventSvc := service.NewEventService(eventRepo, redisClient, cfg.Cache.EventDetailTTL, appLogger)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Initialize handlers and routes
	apiV1 := e.Group("/api/v1")

	outletHandler := delivery.NewOutletHandler(outletSvc, appLogger)
	outletHandler.RegisterRoutes(apiV1.Group("/outlets"))

	authorHandler := delivery.NewAuthorHandler(authorSvc, appLogger)
	authorHandler.RegisterRoutes(apiV1.Group("/authors"))
	authorHandler.RegisterAssociationRoutes(apiV1.Group("/associations"))

	articleHandler := delivery.NewArticleHandler(articleSvc, appLogger)
	articleHandler.RegisterRoutes(apiV1.Group("/articles"))
	articleHandler.RegisterFactRoutes(apiV1.Group("/article-facts"))

	eventHandler := delivery.NewEventHandler(eventSvc, appLogger)
	eventHandler.RegisterRoutes(apiV1.Group("/events"))
	eventHandler.RegisterFactRoutes(apiV1.Group("/event-facts"))
	eventHandler.RegisterSourceRoutes(apiV1.Group("/event-fact-sources"))

	scrapingLogHandler := delivery.NewScrapingLogHandler(scrapingLogRepo, appLogger)
	scrapingLogHandler.RegisterRoutes(apiV1.Group("/scraping-logs"))

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title News Aggregator API
// @version 1.0
// @description REST API over the news aggregation store: outlets, authors, articles, facts and events.
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "api-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-api.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing api-service CLI: %s\n", err)
		os.Exit(1)
	}
}
