// Package pasmar handles Pasmar billing export conversion commands
package pasmar

import (
	"pverdugo/confirma-pagos/cmd/common"
	"pverdugo/confirma-pagos/cmd/root"
	"pverdugo/confirma-pagos/internal/factory"

	"github.com/spf13/cobra"
)

// Cmd represents the pasmar command
var Cmd = &cobra.Command{
	Use:   "pasmar",
	Short: "Convert a Pasmar export to payment confirmations",
	Long: `Convert a Pasmar billing export (xlsx) into the payment-confirmation
format. The export has no usable header names; fields are read by column
position, and rows are kept only when the razon social column matches the
allowed company names.`,
	Run: pasmarFunc,
}

func pasmarFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()
	root.Log.Info("Pasmar convert command called")
	root.Log.Infof("Input file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output directory: %s", root.OutputDir())

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	p, err := appContainer.GetParser(factory.Pasmar)
	if err != nil {
		logger.Fatalf("Error getting Pasmar parser: %v", err)
	}

	opts := common.Options{
		Split:    root.SharedFlags.Split,
		Format:   root.SharedFlags.Format,
		Validate: root.SharedFlags.Validate,
		Report:   root.SharedFlags.Report,
	}
	if err := common.ProcessFeed(p, appContainer.GetAssembler(), "pasmar",
		root.SharedFlags.Input, root.OutputDir(), opts, logger); err != nil {
		logger.Fatalf("Error processing Pasmar export: %v", err)
	}
	root.Log.Info("Pasmar conversion completed successfully!")
}
