package checkpoint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_MissingFileIsZero(t *testing.T) {
	row, err := Read(filepath.Join(t.TempDir(), "checkpoint.txt"))
	require.NoError(t, err)
	assert.Equal(t, 0, row)
}

func TestWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.txt")

	require.NoError(t, Write(path, 42))
	row, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 42, row)

	// Overwrites, never appends.
	require.NoError(t, Write(path, 43))
	row, err = Read(path)
	require.NoError(t, err)
	assert.Equal(t, 43, row)
}

func TestRead_ToleratesTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.txt")
	require.NoError(t, os.WriteFile(path, []byte("17\n"), 0o644))

	row, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 17, row)
}

func TestRead_MalformedFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.txt")
	require.NoError(t, os.WriteFile(path, []byte("not a number"), 0o644))

	_, err := Read(path)
	assert.Error(t, err)
}
