package models

import (
	"github.com/shopspring/decimal"
)

// TransactionRequest is the pre-filled transaction-creation form built from an
// extraction result. Fields the extraction could not recover stay at their
// zero value and are left for the user to fill in; that is a valid request,
// not an error.
type TransactionRequest struct {
	Amount      decimal.Decimal `csv:"Amount" json:"amount"`
	Date        string          `csv:"Date" json:"date"`
	Description string          `csv:"Description" json:"description"`
	Category    string          `csv:"Category" json:"category"`
	Type        string          `csv:"Type" json:"type"`
	Source      string          `csv:"Source" json:"source"`
}

// NewTransactionRequest merges an extraction result into a transaction
// request. source identifies where the receipt came from (file name, upload
// id) and is carried through for review.
func NewTransactionRequest(result ExtractionResult, source string) TransactionRequest {
	req := TransactionRequest{
		Type:   result.Type,
		Source: source,
	}
	if req.Type == "" {
		req.Type = TypeExpense
	}
	if result.Amount != nil {
		req.Amount = *result.Amount
	}
	if result.Date != nil {
		req.Date = *result.Date
	}
	if result.Description != nil {
		req.Description = *result.Description
	}
	if result.Category != nil {
		req.Category = *result.Category
	}
	return req
}
