// Package doctype maps the document classes found in billing exports to SII
// electronic document type codes.
package doctype

import (
	"pverdugo/confirma-pagos/internal/textutils"
)

// SII document type codes used in the output.
const (
	FacturaElectronica = "33"
	FacturaExenta      = "34"
)

// Issuers whose ZV documents are exempt invoices. Everyone else's ZV is an
// ordinary electronic invoice.
var exemptZVIssuers = map[string]struct{}{
	"60503000-9": {},
	"76516999-2": {},
	"9297612-2":  {},
}

// Classify resolves a document class to its SII code. FÑ is always an
// electronic invoice and FO an exempt one; ZV depends on the issuer. Classes
// outside the table pass through unchanged, including codes that already are
// SII numbers.
func Classify(docClass, issuer string) string {
	switch docClass {
	case "FÑ":
		return FacturaElectronica
	case "FO":
		return FacturaExenta
	case "ZV":
		if _, ok := exemptZVIssuers[textutils.NormalizeRUT(issuer)]; ok {
			return FacturaExenta
		}
		return FacturaElectronica
	default:
		return docClass
	}
}
