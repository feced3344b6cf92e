// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"path/filepath"
	"strings"

	"pverdugo/confirma-pagos/internal/assembler"
	internalcommon "pverdugo/confirma-pagos/internal/common"
	"pverdugo/confirma-pagos/internal/fileutils"
	"pverdugo/confirma-pagos/internal/logging"
	"pverdugo/confirma-pagos/internal/models"
	"pverdugo/confirma-pagos/internal/report"
	"pverdugo/confirma-pagos/internal/validation"
)

// Options controls how one feed section is processed.
type Options struct {
	// Split produces one workbook per sociedad, packaged in a zip archive,
	// instead of a single consolidated file.
	Split bool
	// Format is the unified output format, xlsx or csv. Ignored when Split
	// is set; per-sociedad output is always xlsx in a zip.
	Format string
	// Validate runs the feed-shape check before conversion.
	Validate bool
	// Report, when non-empty, also writes a processing report in the given
	// format (json or yaml) next to the output file.
	Report string
}

// ProcessFeed runs one feed section end to end: argument validation,
// optional format validation, parse, assemble, write. Every failure is
// returned to the calling command; one feed section failing never affects
// another invocation.
func ProcessFeed(p models.Parser, asm *assembler.Assembler, feed, inputFile, outputDir string, opts Options, log logging.Logger) error {
	p.SetLogger(log)

	if err := validation.IsValidInputFile(inputFile); err != nil {
		return err
	}
	if err := validation.IsValidOutputFormat(opts.Format); err != nil {
		return err
	}
	if err := validation.IsValidReportFormat(opts.Report); err != nil {
		return err
	}

	if opts.Validate {
		log.Info("Validating format...")
		valid, err := p.ValidateFormat(inputFile)
		if err != nil {
			return fmt.Errorf("error validating file: %w", err)
		}
		if !valid {
			return fmt.Errorf("%s is not a valid %s export", inputFile, feed)
		}
		log.Info("Validation successful.")
	}

	confirmations, rep, err := p.ParseFile(inputFile)
	if err != nil {
		return err
	}
	log.Info(report.Summary(rep))

	outPath, err := writeOutput(asm, feed, confirmations, outputDir, opts)
	if err != nil {
		return err
	}
	log.Info("Conversion completed successfully!",
		logging.Field{Key: logging.FieldOutputFile, Value: outPath})

	if opts.Report != "" {
		if err := writeReport(rep, outPath, opts.Report, log); err != nil {
			return err
		}
	}
	return nil
}

// writeOutput assembles the confirmations into the requested artifact and
// writes it below outputDir, returning the written path.
func writeOutput(asm *assembler.Assembler, feed string, confirmations []models.Confirmation, outputDir string, opts Options) (string, error) {
	if opts.Split {
		file, err := asm.PerSociedad(feed, confirmations)
		if err != nil {
			return "", err
		}
		outPath := filepath.Join(outputDir, file.Name)
		if err := fileutils.WriteFile(outPath, file.Data, models.PermissionOutputFile); err != nil {
			return "", err
		}
		return outPath, nil
	}

	if opts.Format == "csv" {
		outPath := filepath.Join(outputDir, asm.UnifiedName(feed, "csv"))
		if err := internalcommon.WriteConfirmationsToCSV(confirmations, outPath); err != nil {
			return "", err
		}
		return outPath, nil
	}

	file, err := asm.Unified(feed, confirmations)
	if err != nil {
		return "", err
	}
	outPath := filepath.Join(outputDir, file.Name)
	if err := fileutils.WriteFile(outPath, file.Data, models.PermissionOutputFile); err != nil {
		return "", err
	}
	return outPath, nil
}

// writeReport serializes the processing report next to the output artifact,
// swapping the artifact's extension for the report format's.
func writeReport(rep *models.Report, outPath, format string, log logging.Logger) error {
	gen := report.NewGenerator(log)
	data, err := gen.Generate(rep, format)
	if err != nil {
		return err
	}
	reportPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".report." + format
	if err := fileutils.WriteFile(reportPath, data, models.PermissionOutputFile); err != nil {
		return err
	}
	log.Info("Processing report written",
		logging.Field{Key: logging.FieldOutputFile, Value: reportPath})
	return nil
}
