package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionRequestAllFields(t *testing.T) {
	amount := decimal.RequireFromString("12.50")
	date := "2024-03-14"
	description := "FRESH FIELDS MARKET"
	category := CategoryGroceries

	result := ExtractionResult{
		Amount:      &amount,
		Date:        &date,
		Description: &description,
		Category:    &category,
		Type:        TypeExpense,
	}

	req := NewTransactionRequest(result, "receipt-001.txt")
	assert.True(t, req.Amount.Equal(amount))
	assert.Equal(t, date, req.Date)
	assert.Equal(t, description, req.Description)
	assert.Equal(t, category, req.Category)
	assert.Equal(t, TypeExpense, req.Type)
	assert.Equal(t, "receipt-001.txt", req.Source)
}

func TestNewTransactionRequestAbsentFieldsStayZero(t *testing.T) {
	req := NewTransactionRequest(NewExtractionResult(), "blurry.txt")

	assert.True(t, req.Amount.IsZero())
	assert.Empty(t, req.Date)
	assert.Empty(t, req.Description)
	assert.Empty(t, req.Category)
	assert.Equal(t, TypeExpense, req.Type)
	assert.Equal(t, "blurry.txt", req.Source)
}

func TestNewTransactionRequestDefaultsType(t *testing.T) {
	req := NewTransactionRequest(ExtractionResult{}, "untyped.txt")
	assert.Equal(t, TypeExpense, req.Type)
}

func TestExtractionResultIsEmpty(t *testing.T) {
	assert.True(t, NewExtractionResult().IsEmpty())

	date := "2024-03-14"
	result := NewExtractionResult()
	result.Date = &date
	assert.False(t, result.IsEmpty())
}

func TestExtractionResultJSONKeepsNulls(t *testing.T) {
	data, err := json.Marshal(NewExtractionResult())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{"amount", "date", "description", "category"} {
		value, present := decoded[key]
		assert.True(t, present, "key %s should be serialized", key)
		assert.Nil(t, value, "key %s should be null", key)
	}
	assert.Equal(t, TypeExpense, decoded["type"])
}
