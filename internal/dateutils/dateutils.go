// Package dateutils provides common date operations used throughout the application.
package dateutils

import (
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO = "2006-01-02"
)

// monthAbbrevs maps lower-cased three-letter English month abbreviations to
// their calendar month.
var monthAbbrevs = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// MonthFromAbbrev resolves a three-letter English month abbreviation
// (case-insensitive). Returns false for anything it does not recognize.
func MonthFromAbbrev(abbrev string) (time.Month, bool) {
	m, ok := monthAbbrevs[strings.ToLower(abbrev)]
	return m, ok
}

// ExpandTwoDigitYear converts a two-digit year to a full year. Years below 50
// map to 20YY, 50 and above to 19YY.
func ExpandTwoDigitYear(year int) int {
	if year >= 100 {
		return year
	}
	if year < 50 {
		return 2000 + year
	}
	return 1900 + year
}

// MakeDate builds a calendar-validated date from numeric components.
// time.Date normalizes out-of-range components (month 13 becomes January of
// the next year), so validity is checked by comparing the round trip.
func MakeDate(year int, month, day int) (time.Time, bool) {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}
