// Package innovaparser converts Innova billing exports into payment
// confirmations. The export matches the Saesa layout except that the
// Sociedad column already carries the entity value and the Referencia
// column arrives with a decimal tail that must be cut at the first period
// before any filtering.
package innovaparser

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
	"pverdugo/confirma-pagos/internal/textutils"
)

const feedName = "innova"

// Source columns of the Innova export.
const (
	colReference     = "Referencia"
	colIssuer        = "Acreedor"
	colDocumentClass = "Clase de documento"
	colAmount        = "Importe en moneda local"
	colDueDate       = "Vencimiento neto"
	colSociedad      = "Sociedad"
)

func pipelineSpec() parser.Spec {
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
		Resolve: sociedad.ResolveDirect,
	}
}

// Parse reads an xlsx Innova export from r, truncates every reference at
// its first period and runs the table through the named-column pipeline.
func Parse(r io.Reader, logger logging.Logger) ([]models.Confirmation, *models.Report, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Info("Reading Innova export from reader")

	table, err := spreadsheet.Read(r)
	if err != nil {
		return nil, models.NewReport(feedName), &parsererror.ParseError{
			Feed:  feedName,
			Field: "workbook",
			Value: "(from reader)",
			Err:   err,
		}
	}

	refIdx := table.ColumnIndex(colReference)
	if refIdx == -1 {
		report := models.NewReport(feedName)
		report.InputRows = len(table.Rows)
		return nil, report, &parsererror.UnsupportedFeedShapeError{
			Feed:   feedName,
			Reason: fmt.Sprintf("missing required column '%s'", colReference),
		}
	}
	truncateReferences(table, refIdx)

	return parser.Run(table, pipelineSpec(), logger)
}

// truncateReferences cuts each reference at its first period. The exporter
// serializes references as floats, so "123456.0" and "123456.01" both mean
// reference 123456.
func truncateReferences(table *spreadsheet.Table, refIdx int) {
	for _, row := range table.Rows {
		if refIdx < len(row) {
			row[refIdx] = textutils.TruncateAtFirstPeriod(row[refIdx])
		}
	}
}

// ParseFile opens path and delegates to Parse.
func ParseFile(path string, logger logging.Logger) ([]models.Confirmation, *models.Report, error) {
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

	return Parse(file, logger)
}

// ValidateFormat checks whether path looks like an Innova export.
func ValidateFormat(path string, logger logging.Logger) (bool, error) {
	return parser.ValidateColumns(path, feedName, logger,
		colReference, colIssuer, colDocumentClass, colAmount, colDueDate, colSociedad)
}
