// Package validation checks user-supplied command arguments before any
// conversion work starts.
package validation

import (
	"fmt"
	"os"
)

// IsValidInputFile checks that a given path exists and is a regular file.
func IsValidInputFile(path string) error {
	if path == "" {
		return fmt.Errorf("input file must be specified")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking input file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("input path is a directory, expected a file: %s", path)
	}
	return nil
}

// IsValidOutputFormat checks if the given unified output format is supported.
func IsValidOutputFormat(format string) error {
	switch format {
	case "xlsx", "csv":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'xlsx', 'csv'", format)
	}
}

// IsValidReportFormat checks if the given processing-report format is
// supported. The empty string means no report is requested.
func IsValidReportFormat(format string) error {
	switch format {
	case "", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unsupported report format: %s. Supported formats are 'json', 'yaml'", format)
	}
}
