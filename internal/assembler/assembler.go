// Package assembler turns confirmation rows into the downloadable
// artifacts: one consolidated workbook, or a zip with one workbook per
// sociedad. Everything is built in memory; nothing touches disk.
package assembler

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"time"

	"pverdugo/confirma-pagos/internal/logging"
	"pverdugo/confirma-pagos/internal/models"
	"pverdugo/confirma-pagos/internal/parsererror"
	"pverdugo/confirma-pagos/internal/spreadsheet"
)

// timestampLayout is the filename timestamp, civil time in the configured
// timezone.
const timestampLayout = "2006_01_02_15_04_05"

// File is one generated artifact, ready to hand to the caller.
type File struct {
	Name string
	Data []byte
}

// Assembler builds output files for one run.
type Assembler struct {
	logger logging.Logger
	loc    *time.Location
	now    func() time.Time
}

// New creates an Assembler stamping filenames in the given timezone. An
// unknown timezone falls back to the local one with a warning.
func New(logger logging.Logger, timezone string) *Assembler {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		logger.WithError(err).Warn("Unknown timezone, falling back to local",
			logging.Field{Key: "timezone", Value: timezone})
		loc = time.Local
	}
	return &Assembler{
		logger: logger,
		loc:    loc,
		now:    time.Now,
	}
}

func (a *Assembler) timestamp() string {
	return a.now().In(a.loc).Format(timestampLayout)
}

// UnifiedName returns the canonical file name for a consolidated output with
// the given extension.
func (a *Assembler) UnifiedName(feed, ext string) string {
	return fmt.Sprintf("confirmacion_%s_unificado_%s.%s", feed, a.timestamp(), ext)
}

// Unified builds one workbook holding every confirmation, entity column
// included, in input order.
func (a *Assembler) Unified(feed string, confirmations []models.Confirmation) (*File, error) {
	rows := make([][]any, len(confirmations))
	for i, c := range confirmations {
		rows[i] = c.UnifiedCells()
	}

	data, err := spreadsheet.Write(models.UnifiedHeaders(), rows)
	if err != nil {
		return nil, fmt.Errorf("error building unified workbook: %w", err)
	}

	file := &File{
		Name: a.UnifiedName(feed, "xlsx"),
		Data: data,
	}
	a.logger.WithFields(
		logging.Field{Key: logging.FieldFeed, Value: feed},
		logging.Field{Key: logging.FieldRows, Value: len(confirmations)},
		logging.Field{Key: logging.FieldOutputFile, Value: file.Name},
	).Info("Unified workbook assembled")
	return file, nil
}

// PerSociedad partitions the confirmations by entity and builds a zip with
// one workbook per group. Groups keep first-seen order, rows keep input
// order within their group, and the entity column is dropped from every
// workbook.
func (a *Assembler) PerSociedad(feed string, confirmations []models.Confirmation) (*File, error) {
	groups, order := groupBySociedad(confirmations)
	if len(order) == 0 {
		return nil, &parsererror.EmptyAfterFilterError{
			Feed: feed, Checkpoint: parsererror.CheckpointPartition,
		}
	}

	ts := a.timestamp()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, sociedad := range order {
		group := groups[sociedad]
		rows := make([][]any, len(group))
		for i, c := range group {
			rows[i] = c.PaymentCells()
		}
		data, err := spreadsheet.Write(models.PaymentHeaders(), rows)
		if err != nil {
			return nil, fmt.Errorf("error building workbook for %s: %w", sociedad, err)
		}

		entry := fmt.Sprintf("confirmacion_%s_%s_%s.xlsx", feed, entryName(sociedad), ts)
		w, err := zw.Create(entry)
		if err != nil {
			return nil, fmt.Errorf("error adding %s to archive: %w", entry, err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("error writing %s to archive: %w", entry, err)
		}

		a.logger.WithFields(
			logging.Field{Key: logging.FieldFeed, Value: feed},
			logging.Field{Key: logging.FieldSociedad, Value: sociedad},
			logging.Field{Key: logging.FieldRows, Value: len(group)},
		).Debug("Workbook added to archive")
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("error closing archive: %w", err)
	}

	file := &File{
		Name: fmt.Sprintf("confirmacion_%s_por_sociedad_%s.zip", feed, ts),
		Data: buf.Bytes(),
	}
	a.logger.WithFields(
		logging.Field{Key: logging.FieldFeed, Value: feed},
		logging.Field{Key: "sociedades", Value: len(order)},
		logging.Field{Key: logging.FieldOutputFile, Value: file.Name},
	).Info("Per-sociedad archive assembled")
	return file, nil
}

// groupBySociedad partitions confirmations by entity, preserving first-seen
// group order and input row order within each group.
func groupBySociedad(confirmations []models.Confirmation) (map[string][]models.Confirmation, []string) {
	groups := make(map[string][]models.Confirmation)
	var order []string
	for _, c := range confirmations {
		if _, seen := groups[c.Sociedad]; !seen {
			order = append(order, c.Sociedad)
		}
		groups[c.Sociedad] = append(groups[c.Sociedad], c)
	}
	return groups, order
}

// entryName makes an entity value safe as a zip entry filename segment.
func entryName(sociedad string) string {
	name := strings.TrimSpace(sociedad)
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")
	return name
}
