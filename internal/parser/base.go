package parser

import (
	"pverdugo/confirma-pagos/internal/logging"
)

// BaseParser provides the logger plumbing shared by all feed parser
// implementations.
//
// Parsers embed BaseParser to inherit it:
//
//	type MyParser struct {
//		BaseParser
//		// parser-specific fields
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a BaseParser with the provided logger. If logger is
// nil, a default logger is used.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return BaseParser{logger: logger}
}

// SetLogger replaces the parser's logger. A nil logger is ignored.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger instance.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}
