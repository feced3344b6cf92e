package pasmarparser

import (
	"io"

	"pverdugo/confirma-pagos/internal/logging"
	"pverdugo/confirma-pagos/internal/models"
	"pverdugo/confirma-pagos/internal/parser"
	"pverdugo/confirma-pagos/internal/sociedad"
)

// Adapter implements the models.Parser interface by wrapping the
// package-level functions of pasmarparser.
type Adapter struct {
	parser.BaseParser
	tables *sociedad.Tables
}

// NewAdapter creates an adapter bound to the given entity tables.
func NewAdapter(logger logging.Logger, tables *sociedad.Tables) *Adapter {
	return &Adapter{
		BaseParser: parser.NewBaseParser(logger),
		tables:     tables,
	}
}

// Parse implements models.Parser.Parse.
func (a *Adapter) Parse(r io.Reader) ([]models.Confirmation, *models.Report, error) {
	return Parse(r, a.tables, a.GetLogger())
}

// ParseFile implements models.Parser.ParseFile.
func (a *Adapter) ParseFile(path string) ([]models.Confirmation, *models.Report, error) {
	return ParseFile(path, a.tables, a.GetLogger())
}

// ValidateFormat implements models.Parser.ValidateFormat.
func (a *Adapter) ValidateFormat(path string) (bool, error) {
	return ValidateFormat(path, a.GetLogger())
}
