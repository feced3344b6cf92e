package parser

import (
	"fmt"
	"strings"

	"pverdugo/confirma-pagos/internal/amountutils"
	"pverdugo/confirma-pagos/internal/dateutils"
	"pverdugo/confirma-pagos/internal/logging"
	"pverdugo/confirma-pagos/internal/models"
	"pverdugo/confirma-pagos/internal/parsererror"
	"pverdugo/confirma-pagos/internal/spreadsheet"
	"pverdugo/confirma-pagos/internal/textutils"
)

// Slots fixes the column positions a positional feed is read from. The
// exporter emits no stable header names, so the layout is part of the feed's
// format contract.
type Slots struct {
	Amount       int
	Folio        int
	DueDate      int
	Issuer       int
	SociedadCode int // column holding the entity code emitted to the output
	SociedadName int // column holding the display name matched against the allow list
}

// PositionalSpec describes a feed read by column position. Allow decides
// whether a row's entity display name belongs to the group; rows that fail
// it are dropped and counted.
type PositionalSpec struct {
	Feed         string
	MinColumns   int
	Slots        Slots
	DocumentType string
	Allow        func(name string) bool
}

// RunPositional executes the positional pipeline over table: check the
// column count, keep only rows whose entity name passes the allow list,
// normalize the extracted fields and keep rows with entity, issuer and
// folio present. The document type is a fixed literal, no classifier runs.
func RunPositional(table *spreadsheet.Table, spec PositionalSpec, logger logging.Logger) ([]models.Confirmation, *models.Report, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	report := models.NewReport(spec.Feed)
	report.InputRows = len(table.Rows)

	if len(table.Headers) < spec.MinColumns {
		return nil, report, &parsererror.SchemaError{
			Feed:   spec.Feed,
			Reason: fmt.Sprintf("expected at least %d columns, found %d", spec.MinColumns, len(table.Headers)),
		}
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldFeed, Value: spec.Feed},
		logging.Field{Key: logging.FieldRows, Value: report.InputRows},
	).Info("Processing feed export")

	resolved := make([]models.Confirmation, 0, len(table.Rows))
	for _, row := range table.Rows {
		name := spreadsheet.Cell(row, spec.Slots.SociedadName)
		if !spec.Allow(name) {
			report.Dropped.UnresolvedSociedad++
			logger.WithFields(
				logging.Field{Key: logging.FieldFeed, Value: spec.Feed},
				logging.Field{Key: logging.FieldSociedad, Value: name},
			).Debug("Dropping row outside the entity allow list")
			continue
		}
		resolved = append(resolved, models.Confirmation{
			RutEmisor:     spreadsheet.Cell(row, spec.Slots.Issuer),
			TipoDocumento: spec.DocumentType,
			Folio:         textutils.CleanFolio(spreadsheet.Cell(row, spec.Slots.Folio)),
			MontoAPagar:   amountutils.NormalizeAmount(spreadsheet.Cell(row, spec.Slots.Amount)),
			FechaAPagar:   dateutils.FormatDueDate(spreadsheet.Cell(row, spec.Slots.DueDate)),
			Sociedad:      textutils.NormalizeRUT(spreadsheet.Cell(row, spec.Slots.SociedadCode)),
		})
	}
	if len(resolved) == 0 {
		return nil, report, &parsererror.EmptyAfterFilterError{
			Feed: spec.Feed, Checkpoint: parsererror.CheckpointSociedad,
		}
	}

	confirmations := make([]models.Confirmation, 0, len(resolved))
	for _, c := range resolved {
		if c.Sociedad == "" || strings.TrimSpace(c.RutEmisor) == "" || c.Folio == "" {
			report.Dropped.MissingRequired++
			continue
		}
		confirmations = append(confirmations, c)
	}
	if len(confirmations) == 0 {
		return nil, report, &parsererror.EmptyAfterFilterError{
			Feed: spec.Feed, Checkpoint: parsererror.CheckpointRequired,
		}
	}

	report.OutputRows = len(confirmations)
	logger.WithFields(
		logging.Field{Key: logging.FieldFeed, Value: spec.Feed},
		logging.Field{Key: logging.FieldRows, Value: report.OutputRows},
		logging.Field{Key: logging.FieldDropped, Value: report.Dropped.Total()},
	).Info("Feed export processed")
	return confirmations, report, nil
}
