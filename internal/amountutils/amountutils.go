// Package amountutils provides the amount normalization rules shared by the
// feed parsers.
package amountutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var symbolPattern = regexp.MustCompile(`[$\s]|CLP`)

// StandardizeAmount converts an amount as written in Chilean billing exports
// to a form decimal.NewFromString accepts. Periods are thousands separators
// and the comma is the decimal separator: "1.234.567" -> "1234567",
// "1.234,56" -> "1234.56". Currency symbols and whitespace are dropped.
func StandardizeAmount(amountStr string) string {
	amountStr = symbolPattern.ReplaceAllString(amountStr, "")
	amountStr = strings.ReplaceAll(amountStr, ".", "")
	amountStr = strings.ReplaceAll(amountStr, ",", ".")
	return amountStr
}

// ParseAmount parses a string representation of an amount into a decimal
// value. Empty input parses as zero.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// NormalizeAmount resolves an amount cell to the non-negative whole number of
// pesos to pay. Signs are discarded, decimals are truncated toward zero, and
// anything unparseable counts as zero rather than failing the row.
func NormalizeAmount(amountStr string) int64 {
	amount, err := ParseAmount(amountStr)
	if err != nil {
		return 0
	}
	return amount.Abs().IntPart()
}
