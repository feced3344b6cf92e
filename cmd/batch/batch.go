// Package batch handles batch processing of files
package batch

import (
	"fmt"

	"pverdugo/confirma-pagos/cmd/root"
	"pverdugo/confirma-pagos/internal/batch"
	"pverdugo/confirma-pagos/internal/factory"
	"pverdugo/confirma-pagos/internal/fileutils"

	"github.com/spf13/cobra"
)

var feedName string

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process exports from a directory",
	Long: `Batch process every xlsx export in an input directory and write the
generated confirmation files to an output directory.

All workbooks must belong to the same feed, given with --feed. Files are
converted concurrently; a failing file is logged and skipped without
affecting the rest of the batch.

Example:
  confirmapagos batch --feed saesa -i input_dir/ -o output_dir/ --split`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().StringVar(&feedName, "feed", "", "Feed type of the input workbooks: saesa, innova or pasmar")
	_ = Cmd.MarkFlagRequired("feed")

	// Override the usage text for the input/output flags in batch context
	Cmd.SetUsageTemplate(`Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags (for batch, -i/-o refer to directories):
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`)
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")

	inputDir := root.SharedFlags.Input
	outputDir := root.OutputDir()

	logger := root.GetLogrusAdapter()
	root.Log.Infof("Input directory: %s", inputDir)
	root.Log.Infof("Output directory: %s", outputDir)

	if inputDir == "" {
		logger.Fatal("Input directory must be specified")
	}

	feed, err := factory.ParseFeedType(feedName)
	if err != nil {
		logger.Fatalf("Invalid --feed value: %v", err)
	}

	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		logger.Fatalf("Failed to create output directory: %v", err)
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	p, err := appContainer.GetParser(feed)
	if err != nil {
		logger.Fatalf("Failed to get %s parser: %v", feed, err)
	}

	workers := appContainer.GetConfig().Batch.Workers
	processor := batch.NewProcessor(p, appContainer.GetAssembler(), logger, workers)

	results, converted, err := processor.ProcessDirectory(string(feed), inputDir, outputDir, root.SharedFlags.Split)
	if err != nil {
		logger.Fatalf("Error during batch conversion: %v", err)
	}

	for _, r := range results {
		if r.Err != nil {
			root.Log.Warnf("Skipped %s: %v", r.InputFile, r.Err)
		}
	}
	root.Log.Info(fmt.Sprintf("Batch processing completed. %d of %d workbooks converted.", converted, len(results)))
}
