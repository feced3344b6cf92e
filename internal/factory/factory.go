// Package factory creates feed parsers by name.
package factory

import (
	"fmt"
	"strings"

	"pverdugo/confirma-pagos/internal/innovaparser"
	"pverdugo/confirma-pagos/internal/logging"
	"pverdugo/confirma-pagos/internal/models"
	"pverdugo/confirma-pagos/internal/pasmarparser"
	"pverdugo/confirma-pagos/internal/saesaparser"
	"pverdugo/confirma-pagos/internal/sociedad"
)

// FeedType defines the input feeds the application can process.
type FeedType string

const (
	Saesa  FeedType = "saesa"
	Innova FeedType = "innova"
	Pasmar FeedType = "pasmar"
)

// All returns every supported feed type.
func All() []FeedType {
	return []FeedType{Saesa, Innova, Pasmar}
}

// ParseFeedType converts a user-supplied feed name into a FeedType.
func ParseFeedType(name string) (FeedType, error) {
	switch feed := FeedType(strings.ToLower(strings.TrimSpace(name))); feed {
	case Saesa, Innova, Pasmar:
		return feed, nil
	default:
		return "", fmt.Errorf("unknown feed type: %s", name)
	}
}

// GetParserWithLogger returns a new instance of the appropriate parser for the
// given feed, with the provided logger and entity tables for dependency
// injection.
func GetParserWithLogger(feed FeedType, logger logging.Logger, tables *sociedad.Tables) (models.Parser, error) {
	switch feed {
	case Saesa:
		return saesaparser.NewAdapter(logger, tables), nil
	case Innova:
		return innovaparser.NewAdapter(logger), nil
	case Pasmar:
		return pasmarparser.NewAdapter(logger, tables), nil
	default:
		return nil, fmt.Errorf("unknown feed type: %s", feed)
	}
}
