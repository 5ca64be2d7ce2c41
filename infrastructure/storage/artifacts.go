package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ui_automation/domain/interfaces"
	"ui_automation/infrastructure/utils"

	"github.com/spf13/afero"
)

type artifactStore struct {
	fs  afero.Fs
	dir string
	now func() time.Time
}

// ArtifactOption configures an artifact store
type ArtifactOption func(*artifactStore)

// WithClock - sets the clock used for artifact names
func WithClock(now func() time.Time) ArtifactOption {
	return func(s *artifactStore) {
		s.now = now
	}
}

// NewArtifactStore - creates screenshot storage rooted at dir
func NewArtifactStore(fs afero.Fs, dir string, opts ...ArtifactOption) interfaces.ArtifactStore {
	s := &artifactStore{
		fs:  fs,
		dir: dir,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScreenshotPath - returns <dir>/<tag><timestamp>.png
func ScreenshotPath(dir, tag string, t time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s%s.png", tag, utils.FormatTimestamp(t)))
}

// SaveScreenshot - writes png to a timestamped file. A second screenshot with
// the same tag within one second overwrites the first.
func (s *artifactStore) SaveScreenshot(tag string, png []byte) (string, error) {
	exists, err := afero.DirExists(s.fs, s.dir)
	if err != nil {
		return "", fmt.Errorf("failed to stat screenshot directory %s: %w", s.dir, err)
	}
	if !exists {
		return "", fmt.Errorf("screenshot directory '%s' does not exist: %w", s.dir, os.ErrNotExist)
	}

	path := ScreenshotPath(s.dir, tag, s.now())
	if err := afero.WriteFile(s.fs, path, png, 0o644); err != nil {
		return "", fmt.Errorf("failed to write screenshot %s: %w", path, err)
	}
	return path, nil
}
