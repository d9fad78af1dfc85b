package extractor

import (
	"regexp"
	"strconv"
	"time"

	"fjacquet/receipt-scan/internal/dateutils"
)

// datePattern pairs a date-shape regexp with a parser for its submatches.
// The parser reports false for candidates that are not valid calendar dates,
// which sends the search on to the next pattern.
type datePattern struct {
	re    *regexp.Regexp
	parse func(m []string) (time.Time, bool)
}

// datePatterns are tried in order over the whole text. The first pattern
// that matches anywhere is consumed: if its first match fails calendar
// validation the search falls through to the next pattern, it does not try
// further matches of the same one.
var datePatterns = []datePattern{
	{
		// D/M/Y or M/D/Y with 2-or-4-digit year
		re:    regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})\b`),
		parse: parseNumericDayMonth,
	},
	{
		// same shape, 2-digit year only
		re:    regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2})\b`),
		parse: parseNumericDayMonth,
	},
	{
		// year-first Y/M/D
		re:    regexp.MustCompile(`\b(\d{4})[/-](\d{1,2})[/-](\d{1,2})\b`),
		parse: parseYearFirst,
	},
	{
		// D MMM Y with three-letter English month
		re:    regexp.MustCompile(`(?i)\b(\d{1,2})\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\s+(\d{2,4})\b`),
		parse: parseMonthName,
	},
}

// locateDate finds the most likely transaction date anywhere in the text and
// returns it normalized to YYYY-MM-DD, or nil if no pattern yields a valid
// calendar date.
func locateDate(text string) *string {
	for _, p := range datePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if t, ok := p.parse(m); ok {
			iso := dateutils.ToISODate(t)
			return &iso
		}
	}
	return nil
}

// parseNumericDayMonth interprets an ambiguous a/b/y candidate month-first
// (the US reading), retrying day-first when the month-first reading is
// calendar-invalid so dates like 25/12/2024 still parse. 32/13/2024 fails
// both readings.
func parseNumericDayMonth(m []string) (time.Time, bool) {
	a, _ := strconv.Atoi(m[1])
	b, _ := strconv.Atoi(m[2])
	year := expandYear(m[3])

	if t, ok := dateutils.MakeDate(year, a, b); ok {
		return t, true
	}
	return dateutils.MakeDate(year, b, a)
}

func parseYearFirst(m []string) (time.Time, bool) {
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return dateutils.MakeDate(year, month, day)
}

func parseMonthName(m []string) (time.Time, bool) {
	day, _ := strconv.Atoi(m[1])
	month, ok := dateutils.MonthFromAbbrev(m[2])
	if !ok {
		return time.Time{}, false
	}
	return dateutils.MakeDate(expandYear(m[3]), int(month), day)
}

func expandYear(s string) int {
	year, _ := strconv.Atoi(s)
	if len(s) == 2 {
		return dateutils.ExpandTwoDigitYear(year)
	}
	return year
}
