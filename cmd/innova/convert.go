// Package innova handles Innova billing export conversion commands
package innova

import (
	"pverdugo/confirma-pagos/cmd/common"
	"pverdugo/confirma-pagos/cmd/root"
	"pverdugo/confirma-pagos/internal/factory"

	"github.com/spf13/cobra"
)

// Cmd represents the innova command
var Cmd = &cobra.Command{
	Use:   "innova",
	Short: "Convert an Innova export to payment confirmations",
	Long: `Convert an Innova billing export (xlsx) into the payment-confirmation
format. The Referencia column is truncated at its first period before the
usual reference cleanup; the Sociedad column is used verbatim.`,
	Run: innovaFunc,
}

func innovaFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()
	root.Log.Info("Innova convert command called")
	root.Log.Infof("Input file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output directory: %s", root.OutputDir())

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	p, err := appContainer.GetParser(factory.Innova)
	if err != nil {
		logger.Fatalf("Error getting Innova parser: %v", err)
	}

	opts := common.Options{
		Split:    root.SharedFlags.Split,
		Format:   root.SharedFlags.Format,
		Validate: root.SharedFlags.Validate,
		Report:   root.SharedFlags.Report,
	}
	if err := common.ProcessFeed(p, appContainer.GetAssembler(), "innova",
		root.SharedFlags.Input, root.OutputDir(), opts, logger); err != nil {
		logger.Fatalf("Error processing Innova export: %v", err)
	}
	root.Log.Info("Innova conversion completed successfully!")
}
