// Package root contains the root command for the application
package root

import (
	"pverdugo/confirma-pagos/internal/common"
	"pverdugo/confirma-pagos/internal/config"
	"pverdugo/confirma-pagos/internal/container"
	"pverdugo/confirma-pagos/internal/fileutils"
	"pverdugo/confirma-pagos/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
	Split    bool
	Format   string
	Report   string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	appConfig    *config.Config
	appContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "confirmapagos",
		Short: "A CLI tool to convert billing exports into payment-confirmation spreadsheets.",
		Long: `confirmapagos converts Saesa, Innova and Pasmar billing exports into the
payment-confirmation format: one consolidated workbook, or a zip archive
with one workbook per sociedad.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to confirmapagos!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			appConfig = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)
			adapter := logging.NewLogrusAdapterFromLogger(Log)

			// Propagate the configured logger to the package-level loggers.
			common.SetLogger(adapter)
			fileutils.SetLogger(adapter)

			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])

			c, err := container.NewContainer(cfg)
			if err != nil {
				Log.Fatalf("Failed to initialize container: %v", err)
			}
			appContainer = c
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (directory for batch)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output directory")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
	Cmd.PersistentFlags().BoolVar(&SharedFlags.Split, "split", false, "Produce one workbook per sociedad, packaged in a zip archive")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Format, "format", "xlsx", "Unified output format: xlsx or csv")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Report, "report", "", "Also write a processing report: json or yaml")
}

// GetContainer returns the application container built during
// PersistentPreRun, or nil when no command has run yet.
func GetContainer() *container.Container {
	return appContainer
}

// GetConfig returns the loaded application configuration.
func GetConfig() *config.Config {
	return appConfig
}

// GetLogrusAdapter returns the shared logger wrapped in the logging
// abstraction used by the internal packages.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// OutputDir resolves the output directory from the shared flags and the
// configuration, defaulting to the working directory.
func OutputDir() string {
	if SharedFlags.Output != "" {
		return SharedFlags.Output
	}
	if appConfig != nil && appConfig.Output.Directory != "" {
		return appConfig.Output.Directory
	}
	return "."
}
