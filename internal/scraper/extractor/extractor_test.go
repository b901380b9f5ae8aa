package extractor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang-news-aggregator/pkg/common"
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

func serve(t *testing.T, html string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(html))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestExtract_FullMetadata(t *testing.T) {
	srv := serve(t, `<!DOCTYPE html>
<html><head>
<title>Quake Strikes Offshore</title>
<meta property="article:published_time" content="2024-03-15T10:30:00Z">
<meta property="article:modified_time" content="2024-03-15T12:00:00Z">
<meta name="author" content="Jane Reporter">
</head><body>
<article>
  <p>A strong earthquake struck offshore on Friday.</p>
  <p>No casualties were reported.</p>
</article>
<p>Unrelated footer paragraph.</p>
</body></html>`)

	e := New(newTestLogger(t), 5*time.Second)
	data, err := e.Extract(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Quake Strikes Offshore", data.Title)
	assert.Equal(t, "Jane Reporter", data.AuthorName)
	require.NotNil(t, data.PublishedTime)
	assert.True(t, data.PublishedTime.Equal(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)))
	require.NotNil(t, data.ModifiedTime)
	assert.True(t, data.ModifiedTime.Equal(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)))

	// Only paragraphs inside <article>; the footer is not part of the body.
	assert.Equal(t, "A strong earthquake struck offshore on Friday.\nNo casualties were reported.", data.BodyText)
}

func TestExtract_MetaSelectorFallback(t *testing.T) {
	srv := serve(t, `<html><head>
<title>T</title>
<meta itemprop="datePublished" content="2024-03-15">
<meta property="article:author" content="Byline Desk">
</head><body><p>Body.</p></body></html>`)

	e := New(newTestLogger(t), 5*time.Second)
	data, err := e.Extract(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Byline Desk", data.AuthorName)
	require.NotNil(t, data.PublishedTime)
	assert.True(t, data.PublishedTime.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Nil(t, data.ModifiedTime)
}

func TestExtract_MissingTitlePlaceholder(t *testing.T) {
	srv := serve(t, `<html><head></head><body><p>Body only.</p></body></html>`)

	e := New(newTestLogger(t), 5*time.Second)
	data, err := e.Extract(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, common.TitleNotFound, data.Title)
}

func TestExtract_ContentDivFallback(t *testing.T) {
	srv := serve(t, `<html><head><title>T</title></head><body>
<div class="article-content">
  <p>Paragraph inside the content div.</p>
</div>
<p>Sidebar text.</p>
</body></html>`)

	e := New(newTestLogger(t), 5*time.Second)
	data, err := e.Extract(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Paragraph inside the content div.", data.BodyText)
}

func TestExtract_AllParagraphsFallback(t *testing.T) {
	srv := serve(t, `<html><head><title>T</title></head><body>
<p>First loose paragraph.</p>
<p>Second loose paragraph.</p>
</body></html>`)

	e := New(newTestLogger(t), 5*time.Second)
	data, err := e.Extract(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "First loose paragraph.\nSecond loose paragraph.", data.BodyText)
}

func TestExtract_Non200IsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	e := New(newTestLogger(t), 5*time.Second)
	_, err := e.Extract(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestExtract_MalformedTimestampLeavesTimeNil(t *testing.T) {
	srv := serve(t, `<html><head>
<title>T</title>
<meta property="article:published_time" content="last tuesday">
</head><body><p>Body.</p></body></html>`)

	e := New(newTestLogger(t), 5*time.Second)
	data, err := e.Extract(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Nil(t, data.PublishedTime)
}
