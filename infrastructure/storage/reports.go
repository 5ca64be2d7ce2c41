package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"
	"ui_automation/infrastructure/utils"

	"github.com/spf13/afero"
)

type reportStore struct {
	fs  afero.Fs
	dir string
}

// NewReportStore - creates YAML report storage, creating dir if needed
func NewReportStore(fs afero.Fs, dir string) (interfaces.ReportStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}
	return &reportStore{fs: fs, dir: dir}, nil
}

// SaveReport - saves a run report as <scenario>-<timestamp>.yaml
func (s *reportStore) SaveReport(report *entities.Report) (string, error) {
	name := fmt.Sprintf("%s-%s.yaml", reportFileName(report.Scenario), utils.FormatTimestamp(report.StartedAt))
	path := filepath.Join(s.dir, name)
	if err := utils.YAMLDump(s.fs, path, report); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}
	return path, nil
}

// LoadReport - loads a run report
func (s *reportStore) LoadReport(path string) (*entities.Report, error) {
	report, err := utils.LoadYAML[entities.Report](s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load report: %w", err)
	}
	return &report, nil
}

// reportFileName - makes a scenario name safe for use in a file name
func reportFileName(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return "scenario"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
