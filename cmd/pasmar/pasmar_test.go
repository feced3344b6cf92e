package pasmar_test

import (
	"testing"

	"pverdugo/confirma-pagos/cmd/pasmar"

	"github.com/stretchr/testify/assert"
)

func TestPasmarCommand_Metadata(t *testing.T) {
	assert.Equal(t, "pasmar", pasmar.Cmd.Use)
	assert.Contains(t, pasmar.Cmd.Short, "Pasmar")
	assert.NotNil(t, pasmar.Cmd.Run)
}

func TestPasmarCommand_HelpText(t *testing.T) {
	assert.Contains(t, pasmar.Cmd.Long, "payment-confirmation")
	assert.Contains(t, pasmar.Cmd.Long, "column")
	assert.Contains(t, pasmar.Cmd.Long, "razon social")
}
