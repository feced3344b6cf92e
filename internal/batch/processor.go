// Package batch provides concurrent conversion of whole directories of feed
// exports.
package batch

import (
	"path/filepath"
	"strings"
	"sync"

	"pverdugo/confirma-pagos/internal/assembler"
	"pverdugo/confirma-pagos/internal/fileutils"
	"pverdugo/confirma-pagos/internal/logging"
	"pverdugo/confirma-pagos/internal/models"
)

// Result describes the outcome of one workbook in a batch run.
type Result struct {
	InputFile  string
	OutputFile string
	Report     *models.Report
	Err        error
}

// Processor converts every workbook in a directory using a pool of workers.
// Each file is converted independently: a failing file is logged and skipped
// without affecting the others.
type Processor struct {
	parser    models.Parser
	assembler *assembler.Assembler
	logger    logging.Logger
	workers   int
}

// NewProcessor creates a Processor for one feed parser. workers below 1 are
// clamped to 1.
func NewProcessor(parser models.Parser, asm *assembler.Assembler, logger logging.Logger, workers int) *Processor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		parser:    parser,
		assembler: asm,
		logger:    logger,
		workers:   workers,
	}
}

type job struct {
	index int
	path  string
}

// ProcessDirectory converts every xlsx workbook under inputDir and writes the
// generated files below outputDir, one subdirectory per input workbook so
// outputs from the same second cannot collide. It returns the per-file
// results in listing order and the number of workbooks converted.
func (p *Processor) ProcessDirectory(feed, inputDir, outputDir string, split bool) ([]Result, int, error) {
	files, err := fileutils.ListWorkbooks(inputDir)
	if err != nil {
		return nil, 0, err
	}
	if len(files) == 0 {
		p.logger.Warn("No workbooks found in input directory",
			logging.Field{Key: logging.FieldFile, Value: inputDir})
		return nil, 0, nil
	}

	p.logger.Info("Found workbooks for processing",
		logging.Field{Key: logging.FieldFeed, Value: feed},
		logging.Field{Key: logging.FieldCount, Value: len(files)})

	results := make([]Result, len(files))
	jobs := make(chan job)

	workers := p.workers
	if workers > len(files) {
		workers = len(files)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				// Each worker writes to its own slot, so no lock is needed.
				results[j.index] = p.processOne(feed, j.path, inputDir, outputDir, split)
			}
		}()
	}

	for i, path := range files {
		jobs <- job{index: i, path: path}
	}
	close(jobs)
	wg.Wait()

	converted := 0
	for _, r := range results {
		if r.Err == nil {
			converted++
		}
	}

	p.logger.Info("Batch processing completed",
		logging.Field{Key: logging.FieldFeed, Value: feed},
		logging.Field{Key: logging.FieldCount, Value: len(files)},
		logging.Field{Key: "converted", Value: converted},
		logging.Field{Key: "failed", Value: len(files) - converted})

	return results, converted, nil
}

func (p *Processor) processOne(feed, path, inputDir, outputDir string, split bool) Result {
	res := Result{InputFile: path}

	confirmations, report, err := p.parser.ParseFile(path)
	res.Report = report
	if err != nil {
		p.logger.WithError(err).Error("Failed to parse workbook",
			logging.Field{Key: logging.FieldFile, Value: path})
		res.Err = err
		return res
	}

	var file *assembler.File
	if split {
		file, err = p.assembler.PerSociedad(feed, confirmations)
	} else {
		file, err = p.assembler.Unified(feed, confirmations)
	}
	if err != nil {
		p.logger.WithError(err).Error("Failed to assemble output",
			logging.Field{Key: logging.FieldFile, Value: path})
		res.Err = err
		return res
	}

	outPath := filepath.Join(outputDir, workbookStem(inputDir, path), file.Name)
	if err := fileutils.WriteFile(outPath, file.Data, models.PermissionOutputFile); err != nil {
		p.logger.WithError(err).Error("Failed to write output file",
			logging.Field{Key: logging.FieldFile, Value: outPath})
		res.Err = err
		return res
	}
	res.OutputFile = outPath

	p.logger.Info("Workbook converted",
		logging.Field{Key: logging.FieldInputFile, Value: path},
		logging.Field{Key: logging.FieldOutputFile, Value: outPath},
		logging.Field{Key: logging.FieldRows, Value: report.OutputRows})

	return res
}

// workbookStem returns the path of a workbook relative to the input
// directory, without its extension. Nested workbooks keep their directory
// prefix so two inputs can never map to the same output location.
func workbookStem(inputDir, path string) string {
	rel, err := filepath.Rel(inputDir, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	return strings.TrimSuffix(rel, filepath.Ext(rel))
}
