package interfaces

import "ui_automation/domain/entities"

// ArtifactStore stores diagnostic artifacts
type ArtifactStore interface {
	// SaveScreenshot writes png under a timestamped name and returns its path
	SaveScreenshot(tag string, png []byte) (string, error)
}

// ReportStore persists scenario run reports
type ReportStore interface {
	// SaveReport writes a report and returns its path
	SaveReport(report *entities.Report) (string, error)

	// LoadReport reads a report from path
	LoadReport(path string) (*entities.Report, error)
}
