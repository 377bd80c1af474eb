// =============================================================================
// Coffee Sales Dashboard - File Manager Utility
// =============================================================================
//
// This module provides the file utilities used by the report pipeline:
//   - Output file naming with placeholders
//   - Writing the generated page
//   - Small file inspection helpers
//
// WRITE STRATEGY:
//   The output file is overwritten in place. There is no temporary file and
//   no rename, so a crash mid-write can leave a truncated page; the next run
//   rewrites it from scratch.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// GenerateOutputFileName expands the placeholders in an output file pattern.
//
// PARAMETERS:
//   - format: The pattern, e.g. "reports/dashboard_{date}.html".
//     Supported placeholders:
//     - {uuid}: the run id (a new UUID if runID is empty)
//     - {timestamp}: now as YYYYMMDD_HHMMSS
//     - {date}: now as YYYYMMDD
//     - {time}: now as HHMMSS
//   - runID: The id of the current run.
//   - now: The reference time.
//
// RETURNS:
//   - The expanded file name. A pattern without placeholders is returned
//     unchanged.
//
// EXAMPLE:
//
//	GenerateOutputFileName("dashboard_{date}.html", id, time.Date(2025, 1, 2, ...))
//	// "dashboard_20250102.html"
func GenerateOutputFileName(format, runID string, now time.Time) string {
	if !strings.Contains(format, "{") {
		return format
	}

	if runID == "" && strings.Contains(format, "{uuid}") {
		runID = uuid.New().String()
	}

	replacer := strings.NewReplacer(
		"{uuid}", runID,
		"{timestamp}", now.Format("20060102_150405"),
		"{date}", now.Format("20060102"),
		"{time}", now.Format("150405"),
	)
	return replacer.Replace(format)
}

// =============================================================================
// OUTPUT WRITING
// =============================================================================

// WriteOutputFile writes content to path, creating the parent directory and
// replacing any existing file.
//
// RETURNS:
//   - An error if the directory or file cannot be written.
func WriteOutputFile(path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists. The report uses it to log whether a
// run replaced an earlier page.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// GetFileSize returns the size of a file in bytes, as reported by the
// filesystem after the write.
func GetFileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
