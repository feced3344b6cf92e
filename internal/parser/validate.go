package parser

import (
	"fmt"
	"os"

	"pverdugo/confirma-pagos/internal/logging"
	"pverdugo/confirma-pagos/internal/spreadsheet"
)

// ValidateColumns checks that path is a readable xlsx workbook whose first
// sheet carries every named column. A readable file with the wrong shape
// reports false without an error; only I/O failures return one.
func ValidateColumns(path, feed string, logger logging.Logger, columns ...string) (bool, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	table, ok, err := openTable(path, logger)
	if !ok {
		return false, err
	}
	if missing := table.MissingColumns(columns...); len(missing) > 0 {
		logger.WithFields(
			logging.Field{Key: logging.FieldFeed, Value: feed},
			logging.Field{Key: logging.FieldFile, Value: path},
			logging.Field{Key: "missing_columns", Value: missing},
		).Debug("Input is missing required columns")
		return false, nil
	}
	return true, nil
}

// ValidateColumnCount checks that path is a readable xlsx workbook whose
// first sheet has at least min columns.
func ValidateColumnCount(path, feed string, min int, logger logging.Logger) (bool, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	table, ok, err := openTable(path, logger)
	if !ok {
		return false, err
	}
	if len(table.Headers) < min {
		logger.WithFields(
			logging.Field{Key: logging.FieldFeed, Value: feed},
			logging.Field{Key: logging.FieldFile, Value: path},
			logging.Field{Key: "columns", Value: len(table.Headers)},
		).Debug("Input has too few columns")
		return false, nil
	}
	return true, nil
}

// openTable reads the workbook at path. The bool reports whether a table
// came back; a false with a nil error means the file is readable but not a
// workbook.
func openTable(path string, logger logging.Logger) (*spreadsheet.Table, bool, error) {
	file, err := os.Open(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, false, fmt.Errorf("error opening input file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file",
				logging.Field{Key: logging.FieldFile, Value: path})
		}
	}()

	table, err := spreadsheet.Read(file)
	if err != nil {
		logger.WithError(err).WithField(logging.FieldFile, path).
			Debug("Input is not a readable xlsx workbook")
		return nil, false, nil
	}
	return table, true, nil
}
