// Package utils holds the small helpers shared by page objects and tooling:
// timestamped names, the log file setup and YAML load/dump.
package utils

import "time"

const (
	timestampLayout = "20060102-150405"
	dateLayout      = "20060102"
)

// GetTimestamp returns the current local time as YYYYMMDD-HHMMSS
func GetTimestamp() string {
	return FormatTimestamp(time.Now())
}

// FormatTimestamp formats t as YYYYMMDD-HHMMSS
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// FormatDate formats t as YYYYMMDD
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
