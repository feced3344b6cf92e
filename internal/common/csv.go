// Package common provides shared output helpers used by the feed commands.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"pverdugo/confirma-pagos/internal/fileutils"
	"pverdugo/confirma-pagos/internal/logging"
	"pverdugo/confirma-pagos/internal/models"
)

var log logging.Logger = logging.NewLogrusAdapter("info", "text")

// Delimiter is the column separator for CSV output. Configurable through the
// csv.delimiter config key or the CSV_DELIMITER environment variable.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger sets a configured logger for this package.
func SetLogger(logger logging.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// WriteConfirmationsToCSV writes confirmations to a CSV file with the same
// columns as the unified workbook, entity column last. Every feed command
// uses this function so CSV output stays consistent.
func WriteConfirmationsToCSV(confirmations []models.Confirmation, csvFile string) error {
	if confirmations == nil {
		return fmt.Errorf("cannot write nil confirmations to CSV")
	}

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(confirmations)},
	).Info("Writing confirmations to CSV file")

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(csvFile)); err != nil {
		log.WithError(err).Error("Failed to create output directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 -- CLI tool writes to user-provided output paths
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(confirmations, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal confirmations to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(confirmations)},
	).Info("Successfully wrote confirmations to CSV file")

	return nil
}
