// Package textutils provides the text cleanup rules shared by the feed parsers.
package textutils

import (
	"strings"
	"unicode"
)

// CleanFolio normalizes a document reference as exported by the billing
// systems. Exports that pass through numeric columns arrive with a float
// artifact ("123456.0") or stray trailing periods; both are removed.
// Applying the cleanup to an already-clean folio changes nothing.
func CleanFolio(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, ".")
	s = strings.TrimSuffix(s, ".0")
	return strings.TrimSpace(s)
}

// NormalizeRUT canonicalizes a Chilean tax identifier: thousands periods and
// every whitespace character are removed and the verifier digit is uppercased,
// so "76.939.541-k" and " 76939541-K " compare equal.
func NormalizeRUT(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	return strings.ToUpper(s)
}

// IsBlankOrNaN reports whether a cell is empty after trimming or holds the
// literal "nan" a numeric export writes for missing values.
func IsBlankOrNaN(s string) bool {
	t := strings.TrimSpace(s)
	return t == "" || strings.EqualFold(t, "nan")
}

// TruncateAtFirstPeriod keeps only the part of a reference before its first
// period. Used for feeds whose references carry a sub-item suffix.
func TruncateAtFirstPeriod(s string) string {
	if i := strings.Index(s, "."); i >= 0 {
		return s[:i]
	}
	return s
}
