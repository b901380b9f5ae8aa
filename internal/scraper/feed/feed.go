package feed

import (
	"context"
	"sort"
	"time"

	"golang-news-aggregator/internal/scraper/manifest"
	"golang-news-aggregator/pkg/logger"

	"github.com/mmcdole/gofeed"
)

// Reader discovers candidate article URLs from outlet RSS/Atom feeds, as
// an alternative to sitemap enumeration for sites without usable sitemaps.
type Reader interface {
	Discover(ctx context.Context, feedURLs []string, site string, start, end time.Time) ([]manifest.Row, error)
}

// NewReader creates an RSS-backed discovery reader.
func NewReader(log *logger.Logger) Reader {
	return &reader{
		parser: gofeed.NewParser(),
		logger: log,
	}
}

type reader struct {
	parser *gofeed.Parser
	logger *logger.Logger
}

// Discover parses each feed and returns manifest rows for items published
// inside the window, newest first, deduplicated by link. A feed that fails
// to parse is skipped with a warning; the other feeds still contribute.
func (r *reader) Discover(ctx context.Context, feedURLs []string, site string, start, end time.Time) ([]manifest.Row, error) {
	seen := make(map[string]bool)
	var rows []manifest.Row

	for _, feedURL := range feedURLs {
		parsed, err := r.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			r.logger.Warn("Failed to parse feed", logger.ErrorField(err), logger.StringField("feed", feedURL))
			continue
		}

		for _, item := range parsed.Items {
			if item.Link == "" || item.PublishedParsed == nil {
				continue
			}
			published := item.PublishedParsed.UTC()
			if !start.IsZero() && published.Before(start) {
				continue
			}
			if !end.IsZero() && published.After(end) {
				continue
			}
			if seen[item.Link] {
				continue
			}
			seen[item.Link] = true

			category := "feed"
			if len(item.Categories) > 0 {
				category = item.Categories[0]
			}
			rows = append(rows, manifest.Row{
				Site:     site,
				Category: category,
				URL:      item.Link,
				LastMod:  published,
			})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].LastMod.After(rows[j].LastMod)
	})
	return rows, nil
}
