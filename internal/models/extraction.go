// Package models provides the data structures used throughout the application.
package models

import (
	"github.com/shopspring/decimal"
)

// TypeExpense is the transaction type assigned to every receipt. A photographed
// receipt documents money leaving the account, so the pipeline never produces
// income entries.
const TypeExpense = "expense"

// ExtractionResult holds the four fields recovered from one receipt
// transcript. Every field is independently optional: a nil pointer is the
// explicit "not found" marker and a normal outcome, not an error. The JSON
// form keeps the keys with null values so downstream consumers see an
// explicit absence marker.
type ExtractionResult struct {
	Amount      *decimal.Decimal `json:"amount"`
	Date        *string          `json:"date"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Type        string           `json:"type"`
}

// NewExtractionResult returns an empty result typed as an expense.
func NewExtractionResult() ExtractionResult {
	return ExtractionResult{Type: TypeExpense}
}

// IsEmpty reports whether no locator found anything.
func (r ExtractionResult) IsEmpty() bool {
	return r.Amount == nil && r.Date == nil && r.Description == nil && r.Category == nil
}
