// Package report renders processing reports for display at the command
// boundary.
package report

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"pverdugo/confirma-pagos/internal/logging"
	"pverdugo/confirma-pagos/internal/models"
)

// Generator serializes processing reports in the formats supported by the CLI.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a new Generator. A nil logger falls back to the
// default logrus adapter.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{logger: logger}
}

// Generate serializes a processing report in the specified format (json or
// yaml). It returns the report as a byte slice and an error if the format is
// unsupported.
func (g *Generator) Generate(report *models.Report, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.generateJSON(report)
	case "yaml":
		return g.generateYAML(report)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSON(report *models.Report) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

func (g *Generator) generateYAML(report *models.Report) ([]byte, error) {
	data, err := yaml.Marshal(report)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return data, nil
}

// Summary renders a one-line human-readable digest of a processing report.
func Summary(report *models.Report) string {
	return fmt.Sprintf(
		"%s: %d rows in, %d confirmations out, %d dropped (reference=%d, credit-note=%d, sociedad=%d, required=%d)",
		report.Feed,
		report.InputRows,
		report.OutputRows,
		report.Dropped.Total(),
		report.Dropped.MissingReference,
		report.Dropped.HyphenReference,
		report.Dropped.UnresolvedSociedad,
		report.Dropped.MissingRequired,
	)
}
