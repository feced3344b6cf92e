package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(originalDir))
	})
	require.NoError(t, os.Chdir(dir))
}

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.True(t, config.CSV.IncludeHeaders)
	assert.Equal(t, "", config.Output.Directory)
	assert.Equal(t, "America/Santiago", config.Output.Timezone)
	assert.Equal(t, "", config.Tables.Directory)
	assert.Equal(t, 4, config.Batch.Workers)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	testEnvVars := map[string]string{
		"CONFIRMA_LOG_LEVEL":        "debug",
		"CONFIRMA_LOG_FORMAT":       "json",
		"CONFIRMA_CSV_DELIMITER":    ";",
		"CONFIRMA_OUTPUT_TIMEZONE":  "UTC",
		"CONFIRMA_TABLES_DIRECTORY": "/etc/confirma-pagos",
		"CONFIRMA_BATCH_WORKERS":    "8",
	}

	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ";", config.CSV.Delimiter)
	assert.Equal(t, "UTC", config.Output.Timezone)
	assert.Equal(t, "/etc/confirma-pagos", config.Tables.Directory)
	assert.Equal(t, 8, config.Batch.Workers)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")

	configContent := `
log:
  level: "warn"
  format: "json"
csv:
  delimiter: "|"
output:
  directory: "/tmp/salidas"
  timezone: "America/Santiago"
batch:
  workers: 2
`

	err := os.WriteFile(configFile, []byte(configContent), 0600)
	require.NoError(t, err)

	chdir(t, tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "|", config.CSV.Delimiter)
	assert.Equal(t, "/tmp/salidas", config.Output.Directory)
	assert.Equal(t, 2, config.Batch.Workers)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")

	configContent := `
log:
  level: "warn"
csv:
  delimiter: "|"
batch:
  workers: 2
`

	err := os.WriteFile(configFile, []byte(configContent), 0600)
	require.NoError(t, err)

	// Environment variables should override the config file.
	t.Setenv("CONFIRMA_LOG_LEVEL", "error")
	t.Setenv("CONFIRMA_BATCH_WORKERS", "16")

	chdir(t, tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)  // env var wins
	assert.Equal(t, "|", config.CSV.Delimiter)  // config file value
	assert.Equal(t, 16, config.Batch.Workers)   // env var wins
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name: "invalid log level",
			modifyConfig: func(c *Config) {
				c.Log.Level = "invalid"
			},
			expectError: "invalid log level",
		},
		{
			name: "invalid log format",
			modifyConfig: func(c *Config) {
				c.Log.Format = "invalid"
			},
			expectError: "invalid log format",
		},
		{
			name: "invalid CSV delimiter",
			modifyConfig: func(c *Config) {
				c.CSV.Delimiter = "abc"
			},
			expectError: "CSV delimiter must be a single character",
		},
		{
			name: "empty timezone",
			modifyConfig: func(c *Config) {
				c.Output.Timezone = "  "
			},
			expectError: "output.timezone must not be empty",
		},
		{
			name: "zero batch workers",
			modifyConfig: func(c *Config) {
				c.Batch.Workers = 0
			},
			expectError: "batch.workers must be between 1 and 64",
		},
		{
			name: "too many batch workers",
			modifyConfig: func(c *Config) {
				c.Batch.Workers = 500
			},
			expectError: "batch.workers must be between 1 and 64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validBaseConfig()
			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	err := validateConfig(validBaseConfig())
	assert.NoError(t, err)
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{name: "text format info level", level: "info", format: "text"},
		{name: "json format debug level", level: "debug", format: "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validBaseConfig()
			config.Log.Level = tt.level
			config.Log.Format = tt.format

			logger := ConfigureLoggingFromConfig(config)
			assert.NotNil(t, logger)
		})
	}
}

// validBaseConfig builds a configuration that passes validation, for tests
// that then break one field at a time.
func validBaseConfig() *Config {
	config := &Config{}
	config.Log.Level = "info"
	config.Log.Format = "text"
	config.CSV.Delimiter = ","
	config.CSV.IncludeHeaders = true
	config.Output.Timezone = "America/Santiago"
	config.Batch.Workers = 4
	return config
}

// Helper function to clear test environment variables
func clearTestEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"CONFIRMA_LOG_LEVEL",
		"CONFIRMA_LOG_FORMAT",
		"CONFIRMA_CSV_DELIMITER",
		"CONFIRMA_CSV_INCLUDE_HEADERS",
		"CONFIRMA_OUTPUT_DIRECTORY",
		"CONFIRMA_OUTPUT_TIMEZONE",
		"CONFIRMA_TABLES_DIRECTORY",
		"CONFIRMA_BATCH_WORKERS",
	}

	for _, envVar := range envVars {
		if err := os.Unsetenv(envVar); err != nil {
			t.Logf("failed to unset environment variable %s: %v", envVar, err)
		}
	}
}
