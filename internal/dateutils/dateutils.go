// Package dateutils provides the due-date parsing and formatting rules used
// by the feed parsers.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layout constants for the formats the billing exports produce.
const (
	DateLayoutISO     = "2006-01-02"
	DateLayoutChilean = "02-01-2006"
	DateLayoutFull    = "2006-01-02 15:04:05"
)

// CommonFormats is the list of layouts tried in order when parsing a due
// date. Ambiguous all-numeric dates read day-first, which is how every feed
// in scope writes them.
var CommonFormats = []string{
	DateLayoutISO,      // YYYY-MM-DD
	DateLayoutFull,     // YYYY-MM-DD HH:MM:SS, spreadsheet datetime cells
	"2006-01-02T15:04:05", // ISO 8601 without zone
	DateLayoutChilean,  // DD-MM-YYYY
	"02/01/2006",       // DD/MM/YYYY
	"02.01.2006",       // DD.MM.YYYY
	"2/1/2006",         // D/M/YYYY
	"2-1-2006",         // D-M-YYYY
	"02-01-2006 15:04:05",
	"02/01/2006 15:04:05",
	"2006/01/02",
}

// CleanDateString removes unwanted characters and normalizes a date string
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)

	// Collapse runs of whitespace to a single space
	re := regexp.MustCompile(`\s+`)
	dateStr = re.ReplaceAllString(dateStr, " ")

	return dateStr
}

// ParseDueDate attempts to parse a due-date cell using the common formats.
func ParseDueDate(dateStr string) (time.Time, error) {
	cleanDate := CleanDateString(dateStr)
	if cleanDate == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, cleanDate); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// FormatDueDate resolves a due-date cell to the DD-MM-YYYY form used in the
// output. Values no layout matches come back as the empty string, which marks
// the date as missing without dropping the row.
func FormatDueDate(dateStr string) string {
	t, err := ParseDueDate(dateStr)
	if err != nil {
		return ""
	}
	return t.Format(DateLayoutChilean)
}
