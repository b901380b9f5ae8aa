package feed

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

const rssXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Example Feed</title>
  <link>https://example.com</link>
  <item>
    <title>Older story</title>
    <link>https://example.com/older</link>
    <category>world</category>
    <pubDate>Fri, 15 Mar 2024 10:30:00 GMT</pubDate>
  </item>
  <item>
    <title>Newer story</title>
    <link>https://example.com/newer</link>
    <pubDate>Sat, 16 Mar 2024 08:00:00 GMT</pubDate>
  </item>
  <item>
    <title>Duplicate of newer</title>
    <link>https://example.com/newer</link>
    <pubDate>Sat, 16 Mar 2024 08:00:00 GMT</pubDate>
  </item>
  <item>
    <title>Out of window</title>
    <link>https://example.com/old</link>
    <pubDate>Thu, 01 Feb 2024 00:00:00 GMT</pubDate>
  </item>
  <item>
    <title>No link</title>
    <pubDate>Fri, 15 Mar 2024 11:00:00 GMT</pubDate>
  </item>
</channel>
</rss>`

func TestDiscover(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssXML))
	}))
	defer srv.Close()

	r := NewReader(newTestLogger(t))
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	rows, err := r.Discover(context.Background(), []string{srv.URL}, "Example", start, end)
	require.NoError(t, err)

	// Sorted newest first, duplicate link collapsed, linkless and
	// out-of-window items dropped.
	require.Len(t, rows, 2)
	assert.Equal(t, "https://example.com/newer", rows[0].URL)
	assert.Equal(t, "feed", rows[0].Category)
	assert.Equal(t, "https://example.com/older", rows[1].URL)
	assert.Equal(t, "world", rows[1].Category)
	assert.Equal(t, "Example", rows[0].Site)
	assert.True(t, rows[1].LastMod.Equal(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)))
}

func TestDiscover_BrokenFeedIsSkipped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := NewReader(newTestLogger(t))
	rows, err := r.Discover(context.Background(), []string{srv.URL}, "Example", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
