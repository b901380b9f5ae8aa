package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"golang-news-aggregator/internal/entity"
	"golang-news-aggregator/internal/scraper/checkpoint"
	"golang-news-aggregator/internal/scraper/config"
	"golang-news-aggregator/internal/scraper/dto"
	"golang-news-aggregator/internal/scraper/manifest"
	"golang-news-aggregator/internal/scraper/sitemap"
	"golang-news-aggregator/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return log
}

func testConfig() *config.Config {
	return &config.Config{
		Scraper: config.Scraper{
			SiteName:             "Example News",
			SiteURL:              "https://example.com",
			MaxRequestsPerMinute: 600000,
		},
	}
}

type fakeSitemapReader struct {
	index []sitemap.IndexEntry
	pages map[string][]sitemap.PageEntry
}

func (f *fakeSitemapReader) ReadIndex(ctx context.Context, start, end time.Time) ([]sitemap.IndexEntry, error) {
	return f.index, nil
}

func (f *fakeSitemapReader) ReadPage(ctx context.Context, pageURL string, start, end time.Time) ([]sitemap.PageEntry, error) {
	pages, ok := f.pages[pageURL]
	if !ok {
		return nil, errors.New("unreadable page")
	}
	return pages, nil
}

type fakeExtractor struct {
	pages map[string]*dto.ArticleData
	calls []string
}

func (f *fakeExtractor) Extract(ctx context.Context, url string) (*dto.ArticleData, error) {
	f.calls = append(f.calls, url)
	data, ok := f.pages[url]
	if !ok {
		return nil, errors.New("connection refused")
	}
	return data, nil
}

type fakeProjector struct {
	projected []string
	err       error
}

func (f *fakeProjector) Project(ctx context.Context, article *entity.Article) error {
	if f.err != nil {
		return f.err
	}
	f.projected = append(f.projected, article.URL)
	return nil
}

type fakeOutletRepo struct{}

func (f *fakeOutletRepo) GetOrCreate(ctx context.Context, name, url string) (*entity.NewsOutlet, error) {
	return &entity.NewsOutlet{ID: 1, Name: name, URL: url}, nil
}

type fakeAuthorRepo struct {
	names []string
}

func (f *fakeAuthorRepo) GetOrCreate(ctx context.Context, name string) (*entity.Author, error) {
	f.names = append(f.names, name)
	return &entity.Author{ID: uint(len(f.names)), Name: name}, nil
}

type fakeArticleRepo struct {
	stored map[string]bool
	err    error
}

func (f *fakeArticleRepo) Upsert(ctx context.Context, article *entity.Article) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.stored == nil {
		f.stored = make(map[string]bool)
	}
	created := !f.stored[article.URL]
	f.stored[article.URL] = true
	return created, nil
}

func (f *fakeArticleRepo) ExistsByURL(ctx context.Context, url string) (bool, error) {
	return f.stored[url], nil
}

type fakeScrapingLogRepo struct {
	last *entity.ScrapingLog
}

func (f *fakeScrapingLogRepo) FindByOutlet(ctx context.Context, outletID uint) (*entity.ScrapingLog, error) {
	return f.last, nil
}

func (f *fakeScrapingLogRepo) Upsert(ctx context.Context, log *entity.ScrapingLog) error {
	f.last = log
	return nil
}

type fixture struct {
	svc         IngestionService
	extractor   *fakeExtractor
	projector   *fakeProjector
	articles    *fakeArticleRepo
	authors     *fakeAuthorRepo
	scrapingLog *fakeScrapingLogRepo
}

func newFixture(t *testing.T, reader *fakeSitemapReader, pages map[string]*dto.ArticleData) *fixture {
	t.Helper()
	if reader == nil {
		reader = &fakeSitemapReader{}
	}
	f := &fixture{
		extractor:   &fakeExtractor{pages: pages},
		projector:   &fakeProjector{},
		articles:    &fakeArticleRepo{},
		authors:     &fakeAuthorRepo{},
		scrapingLog: &fakeScrapingLogRepo{},
	}
	f.svc = NewIngestionService(testConfig(), newTestLogger(t), reader, f.extractor, f.projector,
		&fakeOutletRepo{}, f.authors, f.articles, f.scrapingLog, nil)
	return f
}

func testRows(n int) []manifest.Row {
	rows := make([]manifest.Row, 0, n)
	base := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		rows = append(rows, manifest.Row{
			Site:     "Example News",
			Category: "world",
			URL:      articleURL(i),
			LastMod:  base.Add(time.Duration(i) * time.Hour),
		})
	}
	return rows
}

func articleURL(i int) string {
	return "https://example.com/articles/" + string(rune('a'+i))
}

func articleData(i int) *dto.ArticleData {
	return &dto.ArticleData{
		Title:      "Article " + string(rune('a'+i)),
		AuthorName: "Jane Reporter",
		BodyText:   "Something happened.\nIt mattered.",
	}
}

func runOptions(dir string, rows []manifest.Row) RunOptions {
	return RunOptions{
		Start:          time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:            time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		ManifestFile:   filepath.Join(dir, "urls.csv"),
		CheckpointFile: filepath.Join(dir, "checkpoint.txt"),
		Rows:           rows,
	}
}

func TestRun_ProcessesAllRows(t *testing.T) {
	pages := map[string]*dto.ArticleData{}
	for i := 0; i < 3; i++ {
		pages[articleURL(i)] = articleData(i)
	}
	f := newFixture(t, nil, pages)
	opts := runOptions(t.TempDir(), testRows(3))

	summary, err := f.svc.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.URLs)
	assert.Equal(t, 3, summary.Processed)
	assert.Equal(t, 3, summary.Created)
	assert.Equal(t, 0, summary.Updated)
	assert.Equal(t, []string{"world"}, summary.Categories)

	// Every created article was projected into the fact graph.
	assert.Len(t, f.projector.projected, 3)

	// Manifest persisted alongside the run.
	persisted, err := manifest.Read(opts.ManifestFile)
	require.NoError(t, err)
	assert.Len(t, persisted, 3)

	// Checkpoint points past the final row.
	last, err := checkpoint.Read(opts.CheckpointFile)
	require.NoError(t, err)
	assert.Equal(t, 3, last)

	// Run window recorded for the next incremental crawl.
	require.NotNil(t, f.scrapingLog.last)
	assert.True(t, f.scrapingLog.last.StartDate.Equal(opts.Start))
	assert.True(t, f.scrapingLog.last.EndDate.Equal(opts.End))
	assert.Equal(t, []string{"world"}, []string(f.scrapingLog.last.Categories))
}

func TestRun_SecondRunIsIdempotent(t *testing.T) {
	pages := map[string]*dto.ArticleData{}
	for i := 0; i < 3; i++ {
		pages[articleURL(i)] = articleData(i)
	}
	f := newFixture(t, nil, pages)
	opts := runOptions(t.TempDir(), testRows(3))

	_, err := f.svc.Run(context.Background(), opts)
	require.NoError(t, err)

	summary, err := f.svc.Run(context.Background(), opts)
	require.NoError(t, err)

	// The checkpoint already covers every row, so nothing is re-fetched.
	assert.Equal(t, 0, summary.Processed)
	assert.Equal(t, 0, summary.Created)
	assert.Len(t, f.extractor.calls, 3)
	assert.Len(t, f.projector.projected, 3)
}

func TestRun_ResumesFromCheckpoint(t *testing.T) {
	pages := map[string]*dto.ArticleData{}
	for i := 0; i < 5; i++ {
		pages[articleURL(i)] = articleData(i)
	}
	f := newFixture(t, nil, pages)
	opts := runOptions(t.TempDir(), testRows(5))

	// Simulate a previous run that died after row 2.
	require.NoError(t, checkpoint.Write(opts.CheckpointFile, 2))

	summary, err := f.svc.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Processed)
	assert.Equal(t, []string{articleURL(2), articleURL(3), articleURL(4)}, f.extractor.calls)
}

func TestRun_UnreachableURLSkipsAndAdvances(t *testing.T) {
	pages := map[string]*dto.ArticleData{
		articleURL(0): articleData(0),
		// articleURL(1) is missing: extraction fails.
		articleURL(2): articleData(2),
	}
	f := newFixture(t, nil, pages)
	opts := runOptions(t.TempDir(), testRows(3))

	summary, err := f.svc.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 3, summary.Processed)

	// The broken URL did not wedge the checkpoint.
	last, err := checkpoint.Read(opts.CheckpointFile)
	require.NoError(t, err)
	assert.Equal(t, 3, last)
}

func TestRun_EmptyContentIsSkipped(t *testing.T) {
	pages := map[string]*dto.ArticleData{
		articleURL(0): {Title: "Has title", BodyText: ""},
		articleURL(1): articleData(1),
	}
	f := newFixture(t, nil, pages)
	opts := runOptions(t.TempDir(), testRows(2))

	summary, err := f.svc.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Created)
	assert.Len(t, f.projector.projected, 1)
}

func TestRun_UpdatedArticleIsNotReprojected(t *testing.T) {
	pages := map[string]*dto.ArticleData{articleURL(0): articleData(0)}
	f := newFixture(t, nil, pages)

	dir := t.TempDir()
	opts := runOptions(dir, testRows(1))
	_, err := f.svc.Run(context.Background(), opts)
	require.NoError(t, err)

	// Fresh checkpoint forces re-processing of the same URL.
	opts.CheckpointFile = filepath.Join(dir, "checkpoint2.txt")
	summary, err := f.svc.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 0, summary.Created)
	assert.Len(t, f.projector.projected, 1)
}

func TestRun_StorageErrorAbortsWithResumableCheckpoint(t *testing.T) {
	pages := map[string]*dto.ArticleData{
		articleURL(0): articleData(0),
		articleURL(1): articleData(1),
	}
	f := newFixture(t, nil, pages)
	f.articles.err = errors.New("db down")
	opts := runOptions(t.TempDir(), testRows(2))

	_, err := f.svc.Run(context.Background(), opts)
	require.Error(t, err)

	// The failing row was never checkpointed, so a restart retries it.
	last, cerr := checkpoint.Read(opts.CheckpointFile)
	require.NoError(t, cerr)
	assert.Equal(t, 0, last)
}

func TestRun_CollectsURLsFromSitemap(t *testing.T) {
	reader := &fakeSitemapReader{
		index: []sitemap.IndexEntry{
			{Category: "world", URL: "https://example.com/sitemap/world.xml"},
			{Category: "broken", URL: "https://example.com/sitemap/broken.xml"},
		},
		pages: map[string][]sitemap.PageEntry{
			"https://example.com/sitemap/world.xml": {
				{URL: articleURL(0), LastMod: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
				{URL: articleURL(0), LastMod: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
			},
		},
	}
	pages := map[string]*dto.ArticleData{articleURL(0): articleData(0)}
	f := newFixture(t, reader, pages)

	opts := runOptions(t.TempDir(), nil)
	summary, err := f.svc.Run(context.Background(), opts)
	require.NoError(t, err)

	// The unreadable page is skipped, the duplicate URL collapses.
	assert.Equal(t, 1, summary.URLs)
	assert.Equal(t, 1, summary.Created)
}

func TestRun_WindowFallsBackToScrapingLog(t *testing.T) {
	f := newFixture(t, &fakeSitemapReader{}, nil)
	prevEnd := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	f.scrapingLog.last = &entity.ScrapingLog{OutletID: 1, EndDate: prevEnd}

	opts := RunOptions{
		ManifestFile:   filepath.Join(t.TempDir(), "urls.csv"),
		CheckpointFile: filepath.Join(t.TempDir(), "checkpoint.txt"),
		Rows:           nil,
	}
	summary, err := f.svc.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.True(t, summary.Start.Equal(prevEnd), "start should pick up where the last run ended")
	assert.WithinDuration(t, time.Now().UTC(), summary.End, time.Minute)
}

func TestRun_AuthorResolution(t *testing.T) {
	pages := map[string]*dto.ArticleData{
		articleURL(0): {Title: "T", AuthorName: "Jane Reporter", BodyText: "Body."},
		articleURL(1): {Title: "T", BodyText: "Body."},
	}
	f := newFixture(t, nil, pages)
	opts := runOptions(t.TempDir(), testRows(2))

	_, err := f.svc.Run(context.Background(), opts)
	require.NoError(t, err)

	// Only bylined articles resolve an author.
	assert.Equal(t, []string{"Jane Reporter"}, f.authors.names)
}
