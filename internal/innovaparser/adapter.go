package innovaparser

import (
	"io"

	"pverdugo/confirma-pagos/internal/logging"
	"pverdugo/confirma-pagos/internal/models"
	"pverdugo/confirma-pagos/internal/parser"
)

// Adapter implements the models.Parser interface by wrapping the
// package-level functions of innovaparser.
type Adapter struct {
	parser.BaseParser
}

// NewAdapter creates an adapter for the Innova feed.
func NewAdapter(logger logging.Logger) *Adapter {
	return &Adapter{BaseParser: parser.NewBaseParser(logger)}
}

// Parse implements models.Parser.Parse.
func (a *Adapter) Parse(r io.Reader) ([]models.Confirmation, *models.Report, error) {
	return Parse(r, a.GetLogger())
}

// ParseFile implements models.Parser.ParseFile.
func (a *Adapter) ParseFile(path string) ([]models.Confirmation, *models.Report, error) {
	return ParseFile(path, a.GetLogger())
}

// ValidateFormat implements models.Parser.ValidateFormat.
func (a *Adapter) ValidateFormat(path string) (bool, error) {
	return ValidateFormat(path, a.GetLogger())
}
