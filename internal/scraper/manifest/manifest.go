package manifest

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"golang-news-aggregator/pkg/utils"
)

// Row is one candidate article produced by sitemap enumeration. The
// manifest is persisted so an interrupted run can resume without
// re-crawling sitemaps.
type Row struct {
	Site     string
	Category string
	URL      string
	LastMod  time.Time
}

var header = []string{"site", "category", "url", "lastmod"}

// Write persists the manifest as CSV, replacing any existing file.
func Write(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create manifest %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write manifest header: %w", err)
	}
	for _, row := range rows {
		record := []string{row.Site, row.Category, row.URL, row.LastMod.UTC().Format(time.RFC3339)}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write manifest row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// Read loads a manifest written by Write. Row order is preserved; row N of
// the result corresponds to checkpoint index N+1.
func Read(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var rows []Row
	for i, record := range records[1:] {
		if len(record) < 4 {
			return nil, fmt.Errorf("manifest %s row %d: expected 4 columns, got %d", path, i+1, len(record))
		}
		lastMod, err := utils.ParseFlexibleTime(record[3])
		if err != nil {
			return nil, fmt.Errorf("manifest %s row %d: %w", path, i+1, err)
		}
		rows = append(rows, Row{
			Site:     record[0],
			Category: record[1],
			URL:      record[2],
			LastMod:  lastMod,
		})
	}
	return rows, nil
}
