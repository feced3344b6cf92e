// Package container provides dependency injection for the application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"pverdugo/confirma-pagos/internal/assembler"
	"pverdugo/confirma-pagos/internal/config"
	"pverdugo/confirma-pagos/internal/factory"
	"pverdugo/confirma-pagos/internal/logging"
	"pverdugo/confirma-pagos/internal/models"
	"pverdugo/confirma-pagos/internal/sociedad"
)

// Container holds all application dependencies and provides methods to
// access them.
//
// Container is immutable after creation - all fields are private and can
// only be accessed through getter methods. This prevents accidental
// modification of dependencies after initialization.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	tables    *sociedad.Tables
	assembler *assembler.Assembler
	parsers   map[factory.FeedType]models.Parser
}

// NewContainer creates and wires all application dependencies.
// This is the main entry point for dependency injection in the application.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	tables, err := sociedad.NewStore(cfg.Tables.Directory, logger).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load entity tables: %w", err)
	}

	asm := assembler.New(logger, cfg.Output.Timezone)

	// Create parsers with dependency injection
	parsers := make(map[factory.FeedType]models.Parser, len(factory.All()))
	for _, feed := range factory.All() {
		p, err := factory.GetParserWithLogger(feed, logger, tables)
		if err != nil {
			return nil, err
		}
		parsers[feed] = p
	}

	logger.Info("Container initialized successfully",
		logging.Field{Key: "parsers_count", Value: len(parsers)},
		logging.Field{Key: "company_codes", Value: tables.CodeCount()},
		logging.Field{Key: "allowed_names", Value: tables.NameCount()})

	return &Container{
		logger:    logger,
		config:    cfg,
		tables:    tables,
		assembler: asm,
		parsers:   parsers,
	}, nil
}

// GetParser returns a parser for the given feed.
func (c *Container) GetParser(feed factory.FeedType) (models.Parser, error) {
	p, ok := c.parsers[feed]
	if !ok {
		return nil, fmt.Errorf("unknown feed type: %s", feed)
	}
	return p, nil
}

// GetParsers returns a copy of the parser registry.
// This prevents external modification of the internal parser map.
func (c *Container) GetParsers() map[factory.FeedType]models.Parser {
	result := make(map[factory.FeedType]models.Parser, len(c.parsers))
	for k, v := range c.parsers {
		result[k] = v
	}
	return result
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetTables returns the loaded entity tables.
func (c *Container) GetTables() *sociedad.Tables {
	return c.tables
}

// GetAssembler returns the output assembler.
func (c *Container) GetAssembler() *assembler.Assembler {
	return c.assembler
}

// Close performs cleanup of container resources.
// This method should be called when the container is no longer needed.
func (c *Container) Close() error {
	// Currently no resources need explicit cleanup
	// This method is provided for future extensibility
	c.logger.Info("Container closed")
	return nil
}
