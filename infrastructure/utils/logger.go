package utils

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const logTimestampLayout = "2006-01-02 15:04:05,000"

// LineFormatter renders entries as "LEVEL TIMESTAMP - MESSAGE"
type LineFormatter struct{}

// Format implements logrus.Formatter
func (f *LineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s %s - %s",
		strings.ToUpper(entry.Level.String()),
		entry.Time.Format(logTimestampLayout),
		entry.Message)

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
		}
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// LogFilePath returns <dir>/<file><YYYYMMDD>.log for the day of t
func LogFilePath(dir, file string, t time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s%s.log", file, FormatDate(t)))
}

// CreateLogger creates a logger writing to one log file per calendar day
// under dir. The file is truncated on every call. The caller owns the
// returned closer.
func CreateLogger(fs afero.Fs, dir, file string) (*logrus.Logger, io.Closer, error) {
	exists, err := afero.DirExists(fs, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat log directory %s: %w", dir, err)
	}
	if !exists {
		return nil, nil, fmt.Errorf("log directory '%s' does not exist: %w", dir, os.ErrNotExist)
	}

	path := LogFilePath(dir, file, time.Now())
	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open logfile %s: %w", path, err)
	}

	logger := logrus.New()
	logger.SetOutput(f)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&LineFormatter{})

	return logger, f, nil
}
