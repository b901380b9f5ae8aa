package sitemap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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

const indexXML = `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap>
    <loc>https://www.cnn.com/sitemap/article/world/2024/04.xml</loc>
    <lastmod>2024-04-02T00:00:00Z</lastmod>
  </sitemap>
  <sitemap>
    <loc>https://www.cnn.com/sitemap/article/world/2024/03.xml</loc>
    <lastmod>2024-03-30T00:00:00Z</lastmod>
  </sitemap>
  <sitemap>
    <loc>https://www.cnn.com/sitemap/article/world/2024/03.xml</loc>
    <lastmod>2024-03-30T00:00:00Z</lastmod>
  </sitemap>
  <sitemap>
    <loc>https://www.cnn.com/sitemap/article/politics/2024/03.xml</loc>
    <lastmod>bogus</lastmod>
  </sitemap>
  <sitemap>
    <loc>https://www.cnn.com/sitemap/article/sport/2024/02.xml</loc>
    <lastmod>2024-02-28T00:00:00Z</lastmod>
  </sitemap>
  <sitemap>
    <loc>https://www.cnn.com/sitemap/article/world/2024/01.xml</loc>
    <lastmod>2024-01-31T00:00:00Z</lastmod>
  </sitemap>
</sitemapindex>`

func TestReadIndex_WindowAndCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(indexXML))
	}))
	defer srv.Close()

	r := NewReader(srv.URL, srv.Client(), newTestLogger(t))
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	entries, err := r.ReadIndex(context.Background(), start, end)
	require.NoError(t, err)

	// The April entry is after the window, the duplicate March entry is
	// dropped, the bogus lastmod is skipped, and the first pre-window
	// entry stops the scan before the January entry is reached.
	require.Len(t, entries, 1)
	assert.Equal(t, "world", entries[0].Category)
	assert.Equal(t, "https://www.cnn.com/sitemap/article/world/2024/03.xml", entries[0].URL)
	assert.True(t, entries[0].LastMod.Equal(time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC)))
}

func TestReadIndex_InclusiveBounds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(indexXML))
	}))
	defer srv.Close()

	r := NewReader(srv.URL, srv.Client(), newTestLogger(t))
	// Window bounds exactly equal to one entry's lastmod.
	at := time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC)

	entries, err := r.ReadIndex(context.Background(), at, at)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].LastMod.Equal(at))
}

func TestReadIndex_FetchFailureDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := NewReader(srv.URL, srv.Client(), newTestLogger(t))
	entries, err := r.ReadIndex(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadIndex_UnparsableDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<<<not xml"))
	}))
	defer srv.Close()

	r := NewReader(srv.URL, srv.Client(), newTestLogger(t))
	entries, err := r.ReadIndex(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

const pageXML = `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url>
    <loc>https://www.cnn.com/2024/03/15/world/first/index.html</loc>
    <lastmod>2024-03-15T10:30:00Z</lastmod>
  </url>
  <url>
    <loc>https://www.cnn.com/2024/03/15/world/first/index.html</loc>
    <lastmod>2024-03-15T10:30:00Z</lastmod>
  </url>
  <url>
    <loc>https://www.cnn.com/2024/03/20/world/second/index.html</loc>
    <lastmod>bogus</lastmod>
  </url>
  <url>
    <loc>https://www.cnn.com/2024/04/01/world/third/index.html</loc>
    <lastmod>2024-04-01T00:00:00Z</lastmod>
  </url>
  <url>
    <loc></loc>
    <lastmod>2024-03-16T00:00:00Z</lastmod>
  </url>
</urlset>`

func TestReadPage_FiltersAndDeduplicates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(pageXML))
	}))
	defer srv.Close()

	r := NewReader("unused", srv.Client(), newTestLogger(t))
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	entries, err := r.ReadPage(context.Background(), srv.URL, start, end)
	require.NoError(t, err)

	// The duplicate collapses, the bogus lastmod and the empty loc are
	// skipped, and the April entry is outside the window.
	require.Len(t, entries, 1)
	assert.Equal(t, "https://www.cnn.com/2024/03/15/world/first/index.html", entries[0].URL)
}

func TestReadPage_FetchFailureIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	r := NewReader("unused", srv.Client(), newTestLogger(t))
	_, err := r.ReadPage(context.Background(), srv.URL, time.Time{}, time.Time{})
	assert.Error(t, err)
}

func TestCategoryFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.cnn.com/sitemap/article/world/2024/03.xml", "world"},
		{"https://www.cnn.com/sitemap/article/politics/2024/03.xml", "politics"},
		{"https://www.cnn.com/sitemap.xml", "unknown"},
		{"short", "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryFromURL(tt.url), "url %s", tt.url)
	}
}
