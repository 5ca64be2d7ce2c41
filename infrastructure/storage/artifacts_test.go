package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSaveScreenshot_WritesExactlyOneFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("screenshots", 0o755))
	instant := time.Date(2024, time.May, 1, 13, 14, 15, 0, time.Local)
	store := NewArtifactStore(fs, "screenshots", WithClock(fixedClock(instant)))

	path, err := store.SaveScreenshot("login", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("screenshots", "login20240501-131415.png"), path)

	entries, err := afero.ReadDir(fs, "screenshots")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "login20240501-131415.png", entries[0].Name())

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestSaveScreenshot_SameSecondOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("screenshots", 0o755))
	store := NewArtifactStore(fs, "screenshots", WithClock(fixedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local))))

	_, err := store.SaveScreenshot("error", []byte("first"))
	require.NoError(t, err)
	path, err := store.SaveScreenshot("error", []byte("second"))
	require.NoError(t, err)

	entries, err := afero.ReadDir(fs, "screenshots")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	data, _ := afero.ReadFile(fs, path)
	assert.Equal(t, "second", string(data))
}

func TestSaveScreenshot_MissingDirectory(t *testing.T) {
	store := NewArtifactStore(afero.NewMemMapFs(), "screenshots")

	_, err := store.SaveScreenshot("error", []byte("x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSaveScreenshot_OsFs(t *testing.T) {
	dir := t.TempDir()
	store := NewArtifactStore(afero.NewOsFs(), dir, WithClock(fixedClock(time.Date(2024, 2, 3, 4, 5, 6, 0, time.Local))))

	path, err := store.SaveScreenshot("", []byte("x"))
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Equal(t, "20240203-040506.png", filepath.Base(path))
}
