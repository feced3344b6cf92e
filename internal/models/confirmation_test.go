package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentHeaders(t *testing.T) {
	expected := []string{
		"Rut emisor",
		"Tipo de Documento",
		"Folio",
		"Monto a pagar",
		"Fecha a pagar",
	}
	assert.Equal(t, expected, PaymentHeaders())
}

func TestUnifiedHeaders(t *testing.T) {
	headers := UnifiedHeaders()
	require.Len(t, headers, 6)
	assert.Equal(t, "Sociedad", headers[5], "entity column must come last")
	assert.Equal(t, PaymentHeaders(), headers[:5])
}

func TestConfirmationCells(t *testing.T) {
	c := Confirmation{
		RutEmisor:     "76.939.541-5",
		TipoDocumento: "33",
		Folio:         "123456",
		MontoAPagar:   1234567,
		FechaAPagar:   "15-03-2024",
		Sociedad:      "76519747-3",
	}

	payment := c.PaymentCells()
	require.Len(t, payment, len(PaymentHeaders()))
	assert.Equal(t, "76.939.541-5", payment[0])
	assert.Equal(t, int64(1234567), payment[3], "amount must stay numeric")

	unified := c.UnifiedCells()
	require.Len(t, unified, len(UnifiedHeaders()))
	assert.Equal(t, "76519747-3", unified[5])
}

func TestDropCountsTotal(t *testing.T) {
	d := DropCounts{
		MissingReference:   2,
		HyphenReference:    1,
		UnresolvedSociedad: 3,
		MissingRequired:    4,
	}
	assert.Equal(t, 10, d.Total())
	assert.Equal(t, 0, DropCounts{}.Total())
}

func TestNewReport(t *testing.T) {
	r := NewReport("saesa")
	assert.Equal(t, "saesa", r.Feed)
	assert.NotEmpty(t, r.ReportID)
	assert.False(t, r.Timestamp.IsZero())

	other := NewReport("saesa")
	assert.NotEqual(t, r.ReportID, other.ReportID, "each run gets its own ID")
}
