package models

import (
	"io"

	"pverdugo/confirma-pagos/internal/logging"
)

// Parser defines the interface for all feed parser implementations.
type Parser interface {
	Parse(r io.Reader) ([]Confirmation, *Report, error)
	ParseFile(path string) ([]Confirmation, *Report, error)
	ValidateFormat(path string) (bool, error)
	SetLogger(logger logging.Logger)
}
