package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang-news-aggregator/internal/entity"
	"golang-news-aggregator/internal/scraper/checkpoint"
	"golang-news-aggregator/internal/scraper/config"
	"golang-news-aggregator/internal/scraper/extractor"
	"golang-news-aggregator/internal/scraper/facts"
	"golang-news-aggregator/internal/scraper/manifest"
	"golang-news-aggregator/internal/scraper/repository"
	"golang-news-aggregator/internal/scraper/sitemap"
	"golang-news-aggregator/pkg/logger"
	"golang-news-aggregator/pkg/telegram"
	"golang-news-aggregator/pkg/utils"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
	"gorm.io/datatypes"
)

// RunOptions parameterizes one batch run. Zero Start/End fall back to the
// outlet's scraping log, then to the last 24 hours. Empty file paths fall
// back to the configured defaults.
type RunOptions struct {
	Start          time.Time
	End            time.Time
	ManifestFile   string
	CheckpointFile string
	// Rows pre-seeds the manifest (used by feed-based discovery); when
	// nil the sitemap is enumerated instead.
	Rows []manifest.Row
}

// RunSummary reports what one batch run did.
type RunSummary struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	URLs       int       `json:"urls"`
	Processed  int       `json:"processed"`
	Created    int       `json:"created"`
	Updated    int       `json:"updated"`
	Skipped    int       `json:"skipped"`
	Failed     int       `json:"failed"`
	Categories []string  `json:"categories"`
}

// IngestionService drives the end-to-end batch: enumerate the sitemap
// window, persist the URL manifest, then process rows from the checkpoint
// forward.
type IngestionService interface {
	Run(ctx context.Context, opts RunOptions) (*RunSummary, error)
}

// NewIngestionService wires the pipeline together. notifier may be nil.
func NewIngestionService(
	cfg *config.Config,
	log *logger.Logger,
	reader sitemap.Reader,
	ext extractor.Extractor,
	projector facts.Projector,
	outletRepo repository.NewsOutletRepository,
	authorRepo repository.AuthorRepository,
	articleRepo repository.ArticleRepository,
	scrapingLogRepo repository.ScrapingLogRepository,
	notifier telegram.Notifier,
) IngestionService {
	rpm := cfg.Scraper.MaxRequestsPerMinute
	if rpm <= 0 {
		rpm = 60
	}
	return &ingestionService{
		cfg:             cfg,
		logger:          log,
		reader:          reader,
		extractor:       ext,
		projector:       projector,
		outletRepo:      outletRepo,
		authorRepo:      authorRepo,
		articleRepo:     articleRepo,
		scrapingLogRepo: scrapingLogRepo,
		notifier:        notifier,
		limiter:         rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1),
		seenURLs:        cache.New(30*time.Minute, 10*time.Minute),
	}
}

type ingestionService struct {
	cfg             *config.Config
	logger          *logger.Logger
	reader          sitemap.Reader
	extractor       extractor.Extractor
	projector       facts.Projector
	outletRepo      repository.NewsOutletRepository
	authorRepo      repository.AuthorRepository
	articleRepo     repository.ArticleRepository
	scrapingLogRepo repository.ScrapingLogRepository
	notifier        telegram.Notifier
	limiter         *rate.Limiter
	seenURLs        *cache.Cache
}

// Run executes one batch. Transient failures (unreachable URL, missing
// extraction fields) skip the row and still advance the checkpoint, so a
// permanently broken URL cannot wedge the batch. Storage and AI parsing
// errors abort the run; the checkpoint then points at the last completed
// row, which is the correct resume position.
func (s *ingestionService) Run(ctx context.Context, opts RunOptions) (*RunSummary, error) {
	outlet, err := s.outletRepo.GetOrCreate(ctx, s.cfg.Scraper.SiteName, s.cfg.Scraper.SiteURL)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve outlet: %w", err)
	}

	start, end, err := s.resolveWindow(ctx, outlet, opts)
	if err != nil {
		return nil, err
	}

	manifestFile := opts.ManifestFile
	if manifestFile == "" {
		manifestFile = s.cfg.Scraper.ManifestFile
	}
	checkpointFile := opts.CheckpointFile
	if checkpointFile == "" {
		checkpointFile = s.cfg.Scraper.CheckpointFile
	}

	summary := &RunSummary{Start: start, End: end}

	rows := opts.Rows
	if rows == nil {
		rows, err = s.collectURLs(ctx, outlet.Name, start, end)
		if err != nil {
			return nil, err
		}
	}
	if err := manifest.Write(manifestFile, rows); err != nil {
		return nil, err
	}
	summary.URLs = len(rows)
	summary.Categories = categoriesOf(rows)

	s.logger.Info("URL manifest written",
		logger.StringField("manifest", manifestFile),
		logger.IntField("urls", len(rows)),
		logger.TimeField("start", start),
		logger.TimeField("end", end),
	)

	if len(rows) > 0 {
		if err := s.processRows(ctx, outlet, rows, checkpointFile, summary); err != nil {
			return summary, err
		}
	}

	if err := s.recordRun(ctx, outlet, start, end, summary); err != nil {
		return summary, err
	}

	s.notify(outlet.Name, summary)
	return summary, nil
}

func (s *ingestionService) resolveWindow(ctx context.Context, outlet *entity.NewsOutlet, opts RunOptions) (time.Time, time.Time, error) {
	if !opts.Start.IsZero() && !opts.End.IsZero() {
		return opts.Start.UTC(), opts.End.UTC(), nil
	}

	end := time.Now().UTC()
	if !opts.End.IsZero() {
		end = opts.End.UTC()
	}

	if !opts.Start.IsZero() {
		return opts.Start.UTC(), end, nil
	}

	last, err := s.scrapingLogRepo.FindByOutlet(ctx, outlet.ID)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to read scraping log: %w", err)
	}
	if last != nil {
		return last.EndDate.UTC(), end, nil
	}
	return end.Add(-24 * time.Hour), end, nil
}

func (s *ingestionService) collectURLs(ctx context.Context, site string, start, end time.Time) ([]manifest.Row, error) {
	entries, err := s.reader.ReadIndex(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to read sitemap index: %w", err)
	}

	var rows []manifest.Row
	for _, entry := range entries {
		pages, err := s.reader.ReadPage(ctx, entry.URL, start, end)
		if err != nil {
			s.logger.Warn("Skipping unreadable sitemap page",
				logger.ErrorField(err),
				logger.StringField("sitemap", entry.URL),
			)
			continue
		}
		for _, page := range pages {
			if _, dup := s.seenURLs.Get(page.URL); dup {
				continue
			}
			s.seenURLs.Set(page.URL, struct{}{}, cache.DefaultExpiration)
			rows = append(rows, manifest.Row{
				Site:     site,
				Category: entry.Category,
				URL:      page.URL,
				LastMod:  page.LastMod,
			})
		}
	}
	return rows, nil
}

func (s *ingestionService) processRows(ctx context.Context, outlet *entity.NewsOutlet, rows []manifest.Row, checkpointFile string, summary *RunSummary) error {
	last, err := checkpoint.Read(checkpointFile)
	if err != nil {
		return err
	}
	s.logger.Info("Resuming from checkpoint", logger.IntField("row", last), logger.StringField("checkpoint", checkpointFile))

	for i, row := range rows {
		rowNum := i + 1
		if rowNum <= last {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}

		if err := s.processRow(ctx, outlet, row, summary); err != nil {
			return err
		}
		summary.Processed++

		if err := checkpoint.Write(checkpointFile, rowNum); err != nil {
			return err
		}
	}
	return nil
}

func (s *ingestionService) processRow(ctx context.Context, outlet *entity.NewsOutlet, row manifest.Row, summary *RunSummary) error {
	data, err := s.extractor.Extract(ctx, row.URL)
	if err != nil {
		s.logger.Warn("Skipping unreachable article", logger.ErrorField(err), logger.StringField("url", row.URL))
		summary.Failed++
		return nil
	}

	if data.Title == "" || data.BodyText == "" {
		s.logger.Warn("Skipping article without extractable content", logger.StringField("url", row.URL))
		summary.Skipped++
		return nil
	}

	article := &entity.Article{
		Site:          outlet.Name,
		Category:      row.Category,
		URL:           row.URL,
		Title:         utils.CleanToValidUTF8(data.Title),
		PublishedTime: row.LastMod,
		ModifiedTime:  row.LastMod,
		ArticleText:   data.BodyText,
	}
	if data.PublishedTime != nil {
		article.PublishedTime = *data.PublishedTime
	}
	if data.ModifiedTime != nil {
		article.ModifiedTime = *data.ModifiedTime
	}

	if data.AuthorName != "" {
		author, err := s.authorRepo.GetOrCreate(ctx, utils.CleanToValidUTF8(data.AuthorName))
		if err != nil {
			return fmt.Errorf("failed to resolve author %q: %w", data.AuthorName, err)
		}
		article.AuthorID = &author.ID
	}

	created, err := s.articleRepo.Upsert(ctx, article)
	if err != nil {
		return fmt.Errorf("failed to upsert article %s: %w", row.URL, err)
	}

	if created {
		summary.Created++
		if err := s.projector.Project(ctx, article); err != nil {
			return err
		}
	} else {
		summary.Updated++
	}
	return nil
}

func (s *ingestionService) recordRun(ctx context.Context, outlet *entity.NewsOutlet, start, end time.Time, summary *RunSummary) error {
	stats, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal run summary: %w", err)
	}

	log := &entity.ScrapingLog{
		OutletID:    outlet.ID,
		StartDate:   start,
		EndDate:     end,
		LastScraped: time.Now().UTC(),
		Categories:  summary.Categories,
		Stats:       datatypes.JSON(stats),
	}
	if err := s.scrapingLogRepo.Upsert(ctx, log); err != nil {
		return fmt.Errorf("failed to record scraping log: %w", err)
	}
	return nil
}

func (s *ingestionService) notify(site string, summary *RunSummary) {
	if s.notifier == nil {
		return
	}
	msg := fmt.Sprintf(
		"*%s scrape finished*\nWindow: %s to %s\nURLs: %d, created: %d, updated: %d, skipped: %d, failed: %d",
		site,
		summary.Start.Format(time.RFC3339),
		summary.End.Format(time.RFC3339),
		summary.URLs, summary.Created, summary.Updated, summary.Skipped, summary.Failed,
	)
	if err := s.notifier.SendMessage(msg); err != nil {
		s.logger.Warn("Failed to send run summary notification", logger.ErrorField(err))
	}
}

func categoriesOf(rows []manifest.Row) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, row := range rows {
		if row.Category == "" || seen[row.Category] {
			continue
		}
		seen[row.Category] = true
		categories = append(categories, row.Category)
	}
	return categories
}
