package extractor

import (
	"regexp"
	"strings"
)

// Phase-1 rules, tried in order per line: a business-type keyword followed by
// free text, a role keyword followed by free text, or an all-caps line ending
// in a business suffix.
var descriptionRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:store|shop|business|company|restaurant|cafe|market|mall|outlet)[\s:]*(.+)`),
	regexp.MustCompile(`(?i)(?:merchant|vendor|seller)[\s:]*(.+)`),
	regexp.MustCompile(`^([A-Z\s&]+(?:STORE|SHOP|MART|MALL|RESTAURANT|MARKET|OUTLET|LTD|INC|LLC|BROTHERS))$`),
}

// fallbackLine matches standalone business-name lines: uppercase letters,
// spaces and ampersands only.
var fallbackLine = regexp.MustCompile(`^[A-Z\s&]+$`)

// fallbackForbidden are substrings that disqualify a line from being a
// business name in the fallback phase.
var fallbackForbidden = []string{"TOTAL", "AMOUNT", "DATE", "RECEIPT"}

// locateDescription finds a best-guess merchant name. Phase 1 scans lines
// top-down for keyword-context captures; the fallback phase accepts the
// first plain all-caps line that does not look like a receipt field label.
// Returns nil if neither phase yields a candidate.
func locateDescription(text string) *string {
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, rule := range descriptionRules {
			m := rule.FindStringSubmatch(trimmed)
			if m == nil {
				continue
			}
			candidate := strings.TrimSpace(m[1])
			if len(candidate) > 3 && len(candidate) < 100 {
				return &candidate
			}
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 5 && len(trimmed) < 50 &&
			fallbackLine.MatchString(trimmed) && !containsAny(trimmed, fallbackForbidden) {
			return &trimmed
		}
	}

	return nil
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
