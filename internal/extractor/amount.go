package extractor

import (
	"regexp"
	"strings"

	"fjacquet/receipt-scan/internal/currencyutils"

	"github.com/shopspring/decimal"
)

// amountToken is the numeric shape of a receipt total: optional currency
// symbol, 1-6 integer digits, decimal separator, exactly 2 fraction digits.
const amountToken = `[€$£₹]?\s?\d{1,6}[.,]\d{2}`

// amountRule pairs a compiled pattern with the submatch indexes of the
// keyword and the numeric token. Go's regexp has no lookbehind, so "total" is
// matched with an optional "sub" prefix and sub-prefixed keywords are
// rejected after the fact.
type amountRule struct {
	re      *regexp.Regexp
	keyword int
	amount  int
}

// amountRules are tried in priority order within a line: keyword before
// number, number before the literal "total", then "total" before number.
var amountRules = []amountRule{
	{
		re:      regexp.MustCompile(`(?i)(grand total|final total|amount due|balance|debit|(?:sub)?total)[\s:]*(` + amountToken + `)`),
		keyword: 1,
		amount:  2,
	},
	{
		re:     regexp.MustCompile(`(?i)(` + amountToken + `)\s*total`),
		amount: 1,
	},
	{
		re:      regexp.MustCompile(`(?i)((?:sub)?total)\s*(` + amountToken + `)`),
		keyword: 1,
		amount:  2,
	},
}

// locateAmount finds the most likely total on a receipt. Totals
// conventionally sit near the bottom, so lines are walked from the last to
// the first and the first line satisfying any rule wins. Returns nil when no
// line matches.
func locateAmount(text string) *decimal.Decimal {
	lines := strings.Split(text, "\n")

	for i := len(lines) - 1; i >= 0; i-- {
		for _, rule := range amountRules {
			if amount := rule.apply(lines[i]); amount != nil {
				return amount
			}
		}
	}

	return nil
}

// apply runs one rule against a line and returns the parsed amount, or nil.
// A "subtotal" keyword never satisfies a "total" rule.
func (r amountRule) apply(line string) *decimal.Decimal {
	for _, m := range r.re.FindAllStringSubmatch(line, -1) {
		if r.keyword > 0 && strings.HasPrefix(strings.ToLower(m[r.keyword]), "sub") {
			continue
		}
		amount, err := currencyutils.ParseAmount(m[r.amount])
		if err != nil {
			continue
		}
		return &amount
	}
	return nil
}
