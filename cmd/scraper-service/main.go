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

	"golang-news-aggregator/internal/scraper/config"
	"golang-news-aggregator/internal/scraper/extractor"
	"golang-news-aggregator/internal/scraper/facts"
	"golang-news-aggregator/internal/scraper/feed"
	"golang-news-aggregator/internal/scraper/repository"
	"golang-news-aggregator/internal/scraper/service"
	"golang-news-aggregator/internal/scraper/sitemap"
	"golang-news-aggregator/pkg/logger"
	"golang-news-aggregator/pkg/postgres"
	"golang-news-aggregator/pkg/telegram"
	"golang-news-aggregator/pkg/utils"

	"github.com/spf13/cobra"
	"google.golang.org/genai"
)

var (
	configPath         string
	startFlag          string
	endFlag            string
	csvFileFlag        string
	checkpointFileFlag string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Run one sitemap-driven batch over the configured window",
	Run: func(cmd *cobra.Command, args []string) {
		runBatch(false)
	},
}

var collectNewsCmd = &cobra.Command{
	Use:   "collect-news",
	Short: "Discover recent articles from the configured RSS feeds and ingest them",
	Run: func(cmd *cobra.Command, args []string) {
		runBatch(true)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reset the database and fill it with demo outlets, articles and events",
	Run:   runSeed,
}

// bootstrap loads configuration, builds the logger and opens the database.
func bootstrap() (*config.Config, *logger.Logger, *postgres.DB) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

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

	return cfg, appLogger, db
}

// newAIRepository builds the configured fact-extraction provider. An empty
// provider returns nil, which makes the projector fall back to paragraph
// splitting.
func newAIRepository(cfg *config.Config, appLogger *logger.Logger) repository.AIRepository {
	switch cfg.AI.Provider {
	case "gemini":
		genAiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey: cfg.Gemini.APIKey,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini AI client", logger.ErrorField(err))
		}
		repo, err := repository.NewGeminiAIRepository(cfg, appLogger, genAiClient)
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini AI repository", logger.ErrorField(err))
		}
		return repo
	case "openai":
		return repository.NewOpenAIRepository(cfg, appLogger)
	case "", "none":
		return nil
	default:
		appLogger.Fatal("Invalid AI provider specified in config", logger.StringField("provider", cfg.AI.Provider))
		return nil
	}
}

func runBatch(fromFeeds bool) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger, db := bootstrap()
	defer func() { _ = appLogger.Sync() }()
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	appLogger.Info("Starting Scraper Service",
		logger.StringField("site", cfg.Scraper.SiteName),
		logger.Field("from_feeds", fromFeeds))

	opts := service.RunOptions{
		ManifestFile:   csvFileFlag,
		CheckpointFile: checkpointFileFlag,
	}
	if startFlag != "" {
		t, err := utils.ParseFlexibleTime(startFlag)
		if err != nil {
			appLogger.Fatal("Invalid --start value", logger.ErrorField(err))
		}
		opts.Start = t
	}
	if endFlag != "" {
		t, err := utils.ParseFlexibleTime(endFlag)
		if err != nil {
			appLogger.Fatal("Invalid --end value", logger.ErrorField(err))
		}
		opts.End = t
	}

	timeout := cfg.Scraper.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	httpClient := &http.Client{Timeout: timeout}

	// Repositories
	outletRepo := repository.NewNewsOutletRepository(db.DB)
	authorRepo := repository.NewAuthorRepository(db.DB)
	articleRepo := repository.NewArticleRepository(db.DB)
	eventRepo := repository.NewEventRepository(db.DB)
	scrapingLogRepo := repository.NewScrapingLogRepository(db.DB)
	aiRepo := newAIRepository(cfg, appLogger)

	var notifier telegram.Notifier
	if cfg.Telegram.Enabled {
		n, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
		notifier = n
	}

	// Pipeline
	reader := sitemap.NewReader(cfg.Scraper.SitemapIndexURL, httpClient, appLogger)
	ext := extractor.New(appLogger, timeout)
	projector := facts.NewProjector(appLogger, eventRepo, aiRepo)
	svc := service.NewIngestionService(cfg, appLogger, reader, ext, projector,
		outletRepo, authorRepo, articleRepo, scrapingLogRepo, notifier)

	if fromFeeds {
		feedReader := feed.NewReader(appLogger)
		rows, err := feedReader.Discover(ctx, cfg.Scraper.Feeds, cfg.Scraper.SiteName, opts.Start, opts.End)
		if err != nil {
			appLogger.Fatal("Feed discovery failed", logger.ErrorField(err))
		}
		opts.Rows = rows
	}

	summary, err := svc.Run(ctx, opts)
	if err != nil {
		appLogger.Fatal("Batch run failed", logger.ErrorField(err))
	}

	appLogger.Info("Batch run finished",
		logger.IntField("urls", summary.URLs),
		logger.IntField("processed", summary.Processed),
		logger.IntField("created", summary.Created),
		logger.IntField("updated", summary.Updated),
		logger.IntField("skipped", summary.Skipped),
		logger.IntField("failed", summary.Failed))
}

func runSeed(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, appLogger, db := bootstrap()
	defer func() { _ = appLogger.Sync() }()
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	seeder := service.NewSeedService(db.DB, appLogger)
	if err := seeder.Seed(ctx); err != nil {
		appLogger.Fatal("Seeding failed", logger.ErrorField(err))
	}
	appLogger.Info("Database seeded")
}

func main() {
	rootCmd := &cobra.Command{Use: "scraper-service"}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-scraper.yaml", "Path to the configuration file")

	for _, c := range []*cobra.Command{scrapeCmd, collectNewsCmd} {
		c.Flags().StringVar(&startFlag, "start", "", "Window start (RFC3339 or YYYY-MM-DD); defaults to the last checkpointed end")
		c.Flags().StringVar(&endFlag, "end", "", "Window end (RFC3339 or YYYY-MM-DD); defaults to now")
		c.Flags().StringVar(&csvFileFlag, "csv-file", "", "Override the manifest CSV path")
		c.Flags().StringVar(&checkpointFileFlag, "checkpoint-file", "", "Override the checkpoint file path")
	}

	rootCmd.AddCommand(scrapeCmd, collectNewsCmd, seedCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing scraper-service CLI: %s\n", err)
		os.Exit(1)
	}
}
