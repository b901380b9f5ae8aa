package extractor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang-news-aggregator/internal/scraper/dto"
	"golang-news-aggregator/pkg/common"
	"golang-news-aggregator/pkg/logger"
	"golang-news-aggregator/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/mauidude/go-readability"
)

// publishedTimeSelectors, modifiedTimeSelectors and authorSelectors are
// probed in order; the first non-empty content attribute wins. Publisher
// markup is heterogeneous and unversioned, so the extractor degrades
// through Open Graph, name-based and microdata conventions.
var (
	publishedTimeSelectors = []string{
		`meta[property="article:published_time"]`,
		`meta[name="article:published_time"]`,
		`meta[itemprop="datePublished"]`,
	}
	modifiedTimeSelectors = []string{
		`meta[property="article:modified_time"]`,
		`meta[name="article:modified_time"]`,
		`meta[itemprop="dateModified"]`,
	}
	authorSelectors = []string{
		`meta[name="author"]`,
		`meta[property="article:author"]`,
		`meta[itemprop="author"]`,
	}
)

// Extractor fetches one article page and pulls out its metadata and body.
type Extractor interface {
	Extract(ctx context.Context, url string) (*dto.ArticleData, error)
}

// New creates an HTTP-backed extractor with the given fetch timeout.
func New(log *logger.Logger, timeout time.Duration) Extractor {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpExtractor{
		client: &http.Client{Timeout: timeout},
		logger: log,
	}
}

type httpExtractor struct {
	client *http.Client
	logger *logger.Logger
}

// Extract performs a bounded GET and parses the page. Network failures and
// non-200 responses come back as errors; the caller skips the URL rather
// than failing the batch.
func (e *httpExtractor) Extract(ctx context.Context, url string) (*dto.ArticleData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", common.DefaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body from %s: %w", url, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML from %s: %w", url, err)
	}

	data := &dto.ArticleData{
		Title:      e.extractTitle(doc),
		AuthorName: metaContent(doc, authorSelectors),
	}

	if published := metaContent(doc, publishedTimeSelectors); published != "" {
		if t, err := utils.ParseFlexibleTime(published); err == nil {
			data.PublishedTime = &t
		} else {
			e.logger.Warn("Failed to parse published time", logger.StringField("value", published), logger.StringField("url", url))
		}
	}
	if modified := metaContent(doc, modifiedTimeSelectors); modified != "" {
		if t, err := utils.ParseFlexibleTime(modified); err == nil {
			data.ModifiedTime = &t
		} else {
			e.logger.Warn("Failed to parse modified time", logger.StringField("value", modified), logger.StringField("url", url))
		}
	}

	data.BodyText = e.extractBody(doc, string(body))

	return data, nil
}

func (e *httpExtractor) extractTitle(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return common.TitleNotFound
	}
	return title
}

// extractBody walks a three-tier selector fallback: paragraphs inside a
// semantic <article>, then paragraphs inside known content div classes,
// then every paragraph in the document. Readability extraction is the
// last resort for pages with no paragraph markup at all.
func (e *httpExtractor) extractBody(doc *goquery.Document, rawHTML string) string {
	var paragraphs *goquery.Selection

	if container := doc.Find("article").First(); container.Length() > 0 {
		paragraphs = container.Find("p")
	} else if container := doc.Find("div.article-content, div.post-content").First(); container.Length() > 0 {
		paragraphs = container.Find("p")
	} else {
		paragraphs = doc.Find("p")
	}

	var parts []string
	paragraphs.Each(func(_ int, s *goquery.Selection) {
		parts = append(parts, strings.TrimSpace(s.Text()))
	})

	text := strings.Join(parts, "\n")
	if strings.TrimSpace(text) != "" {
		return utils.CleanToValidUTF8(text)
	}

	return utils.CleanToValidUTF8(e.readableText(rawHTML))
}

func (e *httpExtractor) readableText(rawHTML string) string {
	rdoc, err := readability.NewDocument(rawHTML)
	if err != nil {
		return ""
	}
	contentDoc, err := goquery.NewDocumentFromReader(strings.NewReader(rdoc.Content()))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(contentDoc.Text())
}

func metaContent(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		if content, ok := doc.Find(sel).First().Attr("content"); ok && strings.TrimSpace(content) != "" {
			return strings.TrimSpace(content)
		}
	}
	return ""
}
