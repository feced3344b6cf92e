// Package parsererror defines the typed errors shared by all feed parsers.
package parsererror

import (
	"fmt"
	"strings"
)

// Pipeline checkpoints where a feed can come up empty. Used by
// EmptyAfterFilterError so callers and logs can tell the stages apart.
const (
	CheckpointReference  = "reference-cleanup"
	CheckpointCreditNote = "credit-note-filter"
	CheckpointSociedad   = "sociedad-resolution"
	CheckpointRequired   = "required-fields"
	CheckpointPartition  = "sociedad-partition"
)

// ParseError represents an error during parsing
type ParseError struct {
	Feed  string
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Feed, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation failure
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// SchemaError reports an input table whose schema does not match the feed:
// either named columns are absent (Missing) or the table is structurally
// wrong, such as too few columns for a positional feed (Reason).
type SchemaError struct {
	Feed    string
	Missing []string
	Reason  string
}

func (e *SchemaError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Feed, e.Reason)
	}
	return fmt.Sprintf("%s: input is missing required columns: %s",
		e.Feed, strings.Join(e.Missing, ", "))
}

// EmptyAfterFilterError reports that a filtering stage removed every row,
// leaving nothing to convert. Checkpoint is one of the Checkpoint* constants.
type EmptyAfterFilterError struct {
	Feed       string
	Checkpoint string
}

func (e *EmptyAfterFilterError) Error() string {
	return fmt.Sprintf("%s: no rows left after %s", e.Feed, e.Checkpoint)
}

// UnsupportedFeedShapeError reports input whose overall shape does not match
// what the feed's exporter produces, such as a missing mandatory column or
// too few positional columns.
type UnsupportedFeedShapeError struct {
	Feed   string
	Reason string
}

func (e *UnsupportedFeedShapeError) Error() string {
	return fmt.Sprintf("%s: unsupported feed shape: %s", e.Feed, e.Reason)
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected format for a specific parser.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
