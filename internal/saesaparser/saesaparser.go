// Package saesaparser converts Saesa billing exports into payment
// confirmations. The export is a named-column SAP sheet; the Sociedad
// column carries a company code resolved through the static code table.
package saesaparser

import (
	"fmt"
	"io"
	"os"

	"pverdugo/confirma-pagos/internal/logging"
	"pverdugo/confirma-pagos/internal/models"
	"pverdugo/confirma-pagos/internal/parser"
	"pverdugo/confirma-pagos/internal/parsererror"
	"pverdugo/confirma-pagos/internal/sociedad"
	"pverdugo/confirma-pagos/internal/spreadsheet"
)

const feedName = "saesa"

// Source columns of the Saesa export.
const (
	colReference     = "Referencia"
	colIssuer        = "Acreedor"
	colDocumentClass = "Clase de documento"
	colAmount        = "Importe en moneda local"
	colDueDate       = "Vencimiento neto"
	colSociedad      = "Sociedad"
)

func pipelineSpec(tables *sociedad.Tables) parser.Spec {
	return parser.Spec{
		Feed: feedName,
		Columns: parser.Columns{
			Reference:     colReference,
			Issuer:        colIssuer,
			DocumentClass: colDocumentClass,
			Amount:        colAmount,
			DueDate:       colDueDate,
			Sociedad:      colSociedad,
		},
		Resolve: tables.ResolveCode,
	}
}

// Parse reads an xlsx Saesa export from r and runs it through the
// named-column pipeline.
func Parse(r io.Reader, tables *sociedad.Tables, logger logging.Logger) ([]models.Confirmation, *models.Report, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Info("Reading Saesa export from reader")

	table, err := spreadsheet.Read(r)
	if err != nil {
		return nil, models.NewReport(feedName), &parsererror.ParseError{
			Feed:  feedName,
			Field: "workbook",
			Value: "(from reader)",
			Err:   err,
		}
	}
	return parser.Run(table, pipelineSpec(tables), logger)
}

// ParseFile opens path and delegates to Parse.
func ParseFile(path string, tables *sociedad.Tables, logger logging.Logger) ([]models.Confirmation, *models.Report, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	file, err := os.Open(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, models.NewReport(feedName), fmt.Errorf("error opening input file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file",
				logging.Field{Key: logging.FieldFile, Value: path})
		}
	}()

	return Parse(file, tables, logger)
}

// ValidateFormat checks whether path looks like a Saesa export: an xlsx
// workbook whose first sheet carries all required columns. A readable file
// with the wrong shape reports false without an error.
func ValidateFormat(path string, logger logging.Logger) (bool, error) {
	return parser.ValidateColumns(path, feedName, logger,
		colReference, colIssuer, colDocumentClass, colAmount, colDueDate, colSociedad)
}
