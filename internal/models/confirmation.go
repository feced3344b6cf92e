// Package models provides the data structures used throughout the application.
package models

// Confirmation is the canonical payment-confirmation record every feed
// normalizes into. Field order matters: it is the column order of the
// generated spreadsheets.
type Confirmation struct {
	RutEmisor     string `csv:"Rut emisor"`        // Issuer RUT as it appears in the feed
	TipoDocumento string `csv:"Tipo de Documento"` // Canonical SII document-type code
	Folio         string `csv:"Folio"`             // Cleaned document reference number
	MontoAPagar   int64  `csv:"Monto a pagar"`     // Amount in CLP, always >= 0
	FechaAPagar   string `csv:"Fecha a pagar"`     // Due date as DD-MM-YYYY, "" when unparseable
	Sociedad      string `csv:"Sociedad"`          // Legal entity the confirmation belongs to
}

// Column headers of the generated spreadsheets.
const (
	HeaderRutEmisor     = "Rut emisor"
	HeaderTipoDocumento = "Tipo de Documento"
	HeaderFolio         = "Folio"
	HeaderMontoAPagar   = "Monto a pagar"
	HeaderFechaAPagar   = "Fecha a pagar"
	HeaderSociedad      = "Sociedad"
)

// PaymentHeaders returns the five payment columns in output order, without
// the entity column. Per-entity files use exactly these.
func PaymentHeaders() []string {
	return []string{
		HeaderRutEmisor,
		HeaderTipoDocumento,
		HeaderFolio,
		HeaderMontoAPagar,
		HeaderFechaAPagar,
	}
}

// UnifiedHeaders returns the payment columns plus the trailing entity
// column used by the consolidated output.
func UnifiedHeaders() []string {
	return append(PaymentHeaders(), HeaderSociedad)
}

// PaymentCells returns the confirmation as spreadsheet cell values in
// PaymentHeaders order. The amount stays numeric so the cell is written as
// a number, not text.
func (c Confirmation) PaymentCells() []any {
	return []any{
		c.RutEmisor,
		c.TipoDocumento,
		c.Folio,
		c.MontoAPagar,
		c.FechaAPagar,
	}
}

// UnifiedCells returns the confirmation as cell values in UnifiedHeaders
// order.
func (c Confirmation) UnifiedCells() []any {
	return append(c.PaymentCells(), c.Sociedad)
}
