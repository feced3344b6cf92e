// Package saesa handles Saesa billing export conversion commands
package saesa

import (
	"pverdugo/confirma-pagos/cmd/common"
	"pverdugo/confirma-pagos/cmd/root"
	"pverdugo/confirma-pagos/internal/factory"

	"github.com/spf13/cobra"
)

// Cmd represents the saesa command
var Cmd = &cobra.Command{
	Use:   "saesa",
	Short: "Convert a Saesa export to payment confirmations",
	Long: `Convert a Saesa billing export (xlsx) into the payment-confirmation
format. The Sociedad column carries a company letter code resolved through
the static company table; rows with unknown codes are dropped.`,
	Run: saesaFunc,
}

func saesaFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()
	root.Log.Info("Saesa convert command called")
	root.Log.Infof("Input file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output directory: %s", root.OutputDir())

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	p, err := appContainer.GetParser(factory.Saesa)
	if err != nil {
		logger.Fatalf("Error getting Saesa parser: %v", err)
	}

	opts := common.Options{
		Split:    root.SharedFlags.Split,
		Format:   root.SharedFlags.Format,
		Validate: root.SharedFlags.Validate,
		Report:   root.SharedFlags.Report,
	}
	if err := common.ProcessFeed(p, appContainer.GetAssembler(), "saesa",
		root.SharedFlags.Input, root.OutputDir(), opts, logger); err != nil {
		logger.Fatalf("Error processing Saesa export: %v", err)
	}
	root.Log.Info("Saesa conversion completed successfully!")
}
