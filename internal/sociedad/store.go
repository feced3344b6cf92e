package sociedad

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pverdugo/confirma-pagos/internal/logging"
)

const (
	saesaTableFile  = "sociedades_saesa.yaml"
	pasmarTableFile = "sociedades_pasmar.yaml"
)

//go:embed defaults/sociedades_saesa.yaml
var defaultSaesaTable []byte

//go:embed defaults/sociedades_pasmar.yaml
var defaultPasmarTable []byte

// Store loads the entity tables, preferring override files on disk and
// falling back to the defaults compiled into the binary.
type Store struct {
	dir    string
	logger logging.Logger
}

// NewStore creates a Store. dir is an optional directory searched first for
// override files; pass "" to use only the standard search locations.
func NewStore(dir string, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Store{dir: dir, logger: logger}
}

// Load reads both tables and returns them ready for lookups.
func (s *Store) Load() (*Tables, error) {
	codes, err := s.loadCodes()
	if err != nil {
		return nil, err
	}
	names, err := s.loadNames()
	if err != nil {
		return nil, err
	}
	tables := NewTables(codes, names)
	s.logger.WithFields(
		logging.Field{Key: "company_codes", Value: tables.CodeCount()},
		logging.Field{Key: "allowed_names", Value: tables.NameCount()},
	).Debug("entity tables loaded")
	return tables, nil
}

type saesaTable struct {
	Codigos map[string]string `yaml:"codigos"`
}

type pasmarTable struct {
	Sociedades []string `yaml:"sociedades"`
}

func (s *Store) loadCodes() (map[string]string, error) {
	data, err := s.readTable(saesaTableFile, defaultSaesaTable)
	if err != nil {
		return nil, err
	}
	var table saesaTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", saesaTableFile, err)
	}
	if len(table.Codigos) == 0 {
		return nil, fmt.Errorf("%s defines no company codes", saesaTableFile)
	}
	return table.Codigos, nil
}

func (s *Store) loadNames() ([]string, error) {
	data, err := s.readTable(pasmarTableFile, defaultPasmarTable)
	if err != nil {
		return nil, err
	}
	var table pasmarTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", pasmarTableFile, err)
	}
	if len(table.Sociedades) == 0 {
		return nil, fmt.Errorf("%s defines no entity names", pasmarTableFile)
	}
	return table.Sociedades, nil
}

// readTable returns the contents of the first override file found for
// filename, or the embedded fallback when none exists on disk.
func (s *Store) readTable(filename string, fallback []byte) ([]byte, error) {
	path, found := s.findOverride(filename)
	if !found {
		s.logger.WithField(logging.FieldFile, filename).Debug("using embedded entity table")
		return fallback, nil
	}
	s.logger.WithField(logging.FieldFile, path).Info("using entity table override")
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the configured table directory
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return data, nil
}

// findOverride searches the configured directory, the working directory, a
// local config/ directory and the user's home directory for filename.
func (s *Store) findOverride(filename string) (string, bool) {
	var candidates []string
	if s.dir != "" {
		candidates = append(candidates, filepath.Join(s.dir, filename))
	}
	candidates = append(candidates,
		filename,
		filepath.Join("config", filename),
	)
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".confirma-pagos", filename))
	}
	for _, path := range candidates {
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}
