package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.csv")
	rows := []Row{
		{
			Site:     "CNN",
			Category: "world",
			URL:      "https://www.cnn.com/2024/03/15/world/example/index.html",
			LastMod:  time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			Site:     "CNN",
			Category: "politics",
			URL:      "https://www.cnn.com/2024/03/16/politics/example/index.html",
			LastMod:  time.Date(2024, 3, 16, 8, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, Write(path, rows))

	got, err := Read(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, rows[0].Site, got[0].Site)
	assert.Equal(t, rows[0].Category, got[0].Category)
	assert.Equal(t, rows[0].URL, got[0].URL)
	assert.True(t, got[0].LastMod.Equal(rows[0].LastMod))
	// Order is preserved: row N maps to checkpoint index N+1.
	assert.Equal(t, rows[1].URL, got[1].URL)
}

func TestWrite_EmptyProducesHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.csv")
	require.NoError(t, Write(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "site,category,url,lastmod\n", string(data))

	rows, err := Read(path)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRead_MissingFileFails(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestRead_MalformedLastModFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.csv")
	content := "site,category,url,lastmod\nCNN,world,https://example.com/a,not-a-date\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Read(path)
	assert.Error(t, err)
}
