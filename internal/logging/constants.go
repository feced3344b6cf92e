package logging

// Standardized field names for structured logging.
// These constants keep log output consistent across feeds and commands,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile       = "file_path"
	FieldFeed       = "feed"
	FieldSociedad   = "sociedad"
	FieldBatchID    = "batch_id"
	FieldReason     = "reason"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldCount      = "count"
	FieldRows       = "rows"
	FieldDropped    = "dropped"
	FieldCheckpoint = "checkpoint"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
