package snapshots

import (
	"fmt"
	"path/filepath"
)

const (
	reportsDir   = "reports"
	reportPrefix = "fantasy_report_"
	manifestName = "manifest.json"
)

// ReportFileName is the file name a report for date is saved under.
func ReportFileName(date string) string {
	return fmt.Sprintf("%s%s.json", reportPrefix, date)
}

// ReportPath builds the path to a saved report for a given date.
func ReportPath(basePath, date string) string {
	return filepath.Join(basePath, reportsDir, ReportFileName(date))
}

func manifestPath(basePath string) string {
	return filepath.Join(basePath, manifestName)
}
