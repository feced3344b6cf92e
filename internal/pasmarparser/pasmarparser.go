// Package pasmarparser converts Pasmar mall-operator exports into payment
// confirmations. The export has no stable header names, so fields are read
// by column position: amount, folio and due date up front, the issuer RUT
// in the middle, and the tenant entity (code plus display name) at the end.
// Rows are kept only when the display name matches the entity allow list.
package pasmarparser

import (
	"fmt"
	"io"
	"os"

	"pverdugo/confirma-pagos/internal/doctype"
	"pverdugo/confirma-pagos/internal/logging"
	"pverdugo/confirma-pagos/internal/models"
	"pverdugo/confirma-pagos/internal/parser"
	"pverdugo/confirma-pagos/internal/parsererror"
	"pverdugo/confirma-pagos/internal/sociedad"
	"pverdugo/confirma-pagos/internal/spreadsheet"
)

const feedName = "pasmar"

// minColumns is the narrowest layout the exporter produces.
const minColumns = 12

// Column positions in the Pasmar export.
const (
	slotAmount       = 2
	slotFolio        = 3
	slotDueDate      = 4
	slotIssuer       = 6
	slotSociedadCode = 10
	slotSociedadName = 11
)

func pipelineSpec(tables *sociedad.Tables) parser.PositionalSpec {
	return parser.PositionalSpec{
		Feed:       feedName,
		MinColumns: minColumns,
		Slots: parser.Slots{
			Amount:       slotAmount,
			Folio:        slotFolio,
			DueDate:      slotDueDate,
			Issuer:       slotIssuer,
			SociedadCode: slotSociedadCode,
			SociedadName: slotSociedadName,
		},
		DocumentType: doctype.FacturaElectronica,
		Allow:        tables.AllowName,
	}
}

// Parse reads an xlsx Pasmar export from r and runs it through the
// positional pipeline.
func Parse(r io.Reader, tables *sociedad.Tables, logger logging.Logger) ([]models.Confirmation, *models.Report, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Info("Reading Pasmar export from reader")

	table, err := spreadsheet.Read(r)
	if err != nil {
		return nil, models.NewReport(feedName), &parsererror.ParseError{
			Feed:  feedName,
			Field: "workbook",
			Value: "(from reader)",
			Err:   err,
		}
	}
	return parser.RunPositional(table, pipelineSpec(tables), logger)
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

// ValidateFormat checks whether path looks like a Pasmar export: an xlsx
// workbook wide enough for the positional layout.
func ValidateFormat(path string, logger logging.Logger) (bool, error) {
	return parser.ValidateColumnCount(path, feedName, minColumns, logger)
}
