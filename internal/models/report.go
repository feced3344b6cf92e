package models

import (
	"time"

	"github.com/google/uuid"
)

// DropCounts records how many rows each filter stage discarded. The counts
// are diagnostics only; dropped rows never reach the output.
type DropCounts struct {
	MissingReference   int `json:"missing_reference" yaml:"missing_reference"`
	HyphenReference    int `json:"hyphen_reference" yaml:"hyphen_reference"`
	UnresolvedSociedad int `json:"unresolved_sociedad" yaml:"unresolved_sociedad"`
	MissingRequired    int `json:"missing_required" yaml:"missing_required"`
}

// Total returns the number of rows dropped across all stages.
func (d DropCounts) Total() int {
	return d.MissingReference + d.HyphenReference + d.UnresolvedSociedad + d.MissingRequired
}

// Report describes one pipeline run over one input table.
type Report struct {
	ReportID   string     `json:"report_id" yaml:"report_id"`
	Feed       string     `json:"feed" yaml:"feed"`
	Timestamp  time.Time  `json:"timestamp" yaml:"timestamp"`
	InputRows  int        `json:"input_rows" yaml:"input_rows"`
	OutputRows int        `json:"output_rows" yaml:"output_rows"`
	Dropped    DropCounts `json:"dropped" yaml:"dropped"`
}

// NewReport creates a Report for one feed run with a generated ID and
// timestamp.
func NewReport(feed string) *Report {
	return &Report{
		ReportID:  uuid.New().String(),
		Feed:      feed,
		Timestamp: time.Now(),
	}
}
