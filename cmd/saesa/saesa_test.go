package saesa_test

import (
	"testing"

	"pverdugo/confirma-pagos/cmd/root"
	"pverdugo/confirma-pagos/cmd/saesa"

	"github.com/stretchr/testify/assert"
)

func TestSaesaCommand_Metadata(t *testing.T) {
	assert.Equal(t, "saesa", saesa.Cmd.Use)
	assert.Contains(t, saesa.Cmd.Short, "Saesa")
	assert.Contains(t, saesa.Cmd.Long, "Sociedad")
	assert.NotNil(t, saesa.Cmd.Run)
}

func TestSaesaCommand_HelpText(t *testing.T) {
	assert.Contains(t, saesa.Cmd.Long, "payment-confirmation")
	assert.Contains(t, saesa.Cmd.Long, "letter code")
	assert.Contains(t, saesa.Cmd.Long, "dropped")
}

func TestSaesaCommand_SharedFlagAccess(t *testing.T) {
	originalFlags := root.SharedFlags
	defer func() { root.SharedFlags = originalFlags }()

	root.SharedFlags.Input = "saesa_export.xlsx"
	root.SharedFlags.Split = true

	assert.Equal(t, "saesa_export.xlsx", root.SharedFlags.Input)
	assert.True(t, root.SharedFlags.Split)
}
