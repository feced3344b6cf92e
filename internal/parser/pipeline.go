// Package parser provides the row pipeline the feed parsers build on: the
// shared sequence of filters and normalizers that turns a raw export table
// into confirmation records.
package parser

import (
	"strings"

	"pverdugo/confirma-pagos/internal/amountutils"
	"pverdugo/confirma-pagos/internal/dateutils"
	"pverdugo/confirma-pagos/internal/doctype"
	"pverdugo/confirma-pagos/internal/logging"
	"pverdugo/confirma-pagos/internal/models"
	"pverdugo/confirma-pagos/internal/parsererror"
	"pverdugo/confirma-pagos/internal/spreadsheet"
	"pverdugo/confirma-pagos/internal/textutils"
)

// Columns names the source columns a named-column feed is read from.
type Columns struct {
	Reference     string
	Issuer        string
	DocumentClass string
	Amount        string
	DueDate       string
	Sociedad      string
}

// Spec describes one named-column feed. Resolve maps the raw entity cell to
// the output entity; rows whose cell does not resolve are dropped and
// counted, never defaulted.
type Spec struct {
	Feed    string
	Columns Columns
	Resolve func(raw string) (string, bool)
}

// Run executes the named-column pipeline over table:
// validate the schema, drop rows without a usable reference, drop
// credit-note rows (hyphenated reference), normalize every field, resolve
// the entity and keep only rows with issuer and folio present.
//
// The returned report carries the per-stage drop counts even when Run fails.
func Run(table *spreadsheet.Table, spec Spec, logger logging.Logger) ([]models.Confirmation, *models.Report, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	report := models.NewReport(spec.Feed)
	report.InputRows = len(table.Rows)

	cols := spec.Columns
	missing := table.MissingColumns(
		cols.Reference,
		cols.Issuer,
		cols.DocumentClass,
		cols.Amount,
		cols.DueDate,
		cols.Sociedad,
	)
	if len(missing) > 0 {
		return nil, report, &parsererror.SchemaError{Feed: spec.Feed, Missing: missing}
	}

	refIdx := table.ColumnIndex(cols.Reference)
	issuerIdx := table.ColumnIndex(cols.Issuer)
	classIdx := table.ColumnIndex(cols.DocumentClass)
	amountIdx := table.ColumnIndex(cols.Amount)
	dueIdx := table.ColumnIndex(cols.DueDate)
	socIdx := table.ColumnIndex(cols.Sociedad)

	logger.WithFields(
		logging.Field{Key: logging.FieldFeed, Value: spec.Feed},
		logging.Field{Key: logging.FieldRows, Value: report.InputRows},
	).Info("Processing feed export")

	withReference := make([][]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		if textutils.IsBlankOrNaN(spreadsheet.Cell(row, refIdx)) {
			report.Dropped.MissingReference++
			continue
		}
		withReference = append(withReference, row)
	}
	if len(withReference) == 0 {
		return nil, report, &parsererror.EmptyAfterFilterError{
			Feed: spec.Feed, Checkpoint: parsererror.CheckpointReference,
		}
	}

	payable := make([][]string, 0, len(withReference))
	for _, row := range withReference {
		if strings.Contains(spreadsheet.Cell(row, refIdx), "-") {
			report.Dropped.HyphenReference++
			continue
		}
		payable = append(payable, row)
	}
	if len(payable) == 0 {
		return nil, report, &parsererror.EmptyAfterFilterError{
			Feed: spec.Feed, Checkpoint: parsererror.CheckpointCreditNote,
		}
	}

	resolved := make([]models.Confirmation, 0, len(payable))
	for _, row := range payable {
		sociedad, ok := spec.Resolve(spreadsheet.Cell(row, socIdx))
		if !ok {
			report.Dropped.UnresolvedSociedad++
			logger.WithFields(
				logging.Field{Key: logging.FieldFeed, Value: spec.Feed},
				logging.Field{Key: logging.FieldSociedad, Value: spreadsheet.Cell(row, socIdx)},
			).Debug("Dropping row with unresolved sociedad")
			continue
		}
		issuer := spreadsheet.Cell(row, issuerIdx)
		resolved = append(resolved, models.Confirmation{
			RutEmisor:     issuer,
			TipoDocumento: doctype.Classify(spreadsheet.Cell(row, classIdx), issuer),
			Folio:         textutils.CleanFolio(spreadsheet.Cell(row, refIdx)),
			MontoAPagar:   amountutils.NormalizeAmount(spreadsheet.Cell(row, amountIdx)),
			FechaAPagar:   dateutils.FormatDueDate(spreadsheet.Cell(row, dueIdx)),
			Sociedad:      sociedad,
		})
	}
	if len(resolved) == 0 {
		return nil, report, &parsererror.EmptyAfterFilterError{
			Feed: spec.Feed, Checkpoint: parsererror.CheckpointSociedad,
		}
	}

	confirmations := requireIssuerAndFolio(resolved, report)
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

// requireIssuerAndFolio keeps only confirmations with a non-blank issuer and
// a non-empty folio, counting the rest as missing-required drops.
func requireIssuerAndFolio(confirmations []models.Confirmation, report *models.Report) []models.Confirmation {
	kept := make([]models.Confirmation, 0, len(confirmations))
	for _, c := range confirmations {
		if strings.TrimSpace(c.RutEmisor) == "" || c.Folio == "" {
			report.Dropped.MissingRequired++
			continue
		}
		kept = append(kept, c)
	}
	return kept
}
