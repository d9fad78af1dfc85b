package extractor

import (
	"context"
	"errors"
	"testing"

	"fjacquet/receipt-scan/internal/categorizer"
	"fjacquet/receipt-scan/internal/logging"
	"fjacquet/receipt-scan/internal/models"
	"fjacquet/receipt-scan/internal/parsererror"
	"fjacquet/receipt-scan/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReceipt = `FRESH FIELDS MARKET
Date: 03/14/2024
milk 2.50
bread 1.99
Subtotal: 4.49
Total: 4.90
Thank you for shopping`

func newTestExtractor() *Extractor {
	logger := &logging.MockLogger{}
	classifier := categorizer.New(logger,
		categorizer.NewKeywordStrategy(store.DefaultTaxonomy(), logger))
	return New(classifier, logger)
}

func TestExtractCompleteReceipt(t *testing.T) {
	ext := newTestExtractor()

	result, err := ext.Extract(context.Background(), sampleReceipt)
	require.NoError(t, err)

	require.NotNil(t, result.Amount)
	assert.True(t, result.Amount.Equal(decimal.RequireFromString("4.90")))

	require.NotNil(t, result.Date)
	assert.Equal(t, "2024-03-14", *result.Date)

	require.NotNil(t, result.Description)
	assert.Equal(t, "FRESH FIELDS MARKET", *result.Description)

	require.NotNil(t, result.Category)
	assert.Equal(t, models.CategoryGroceries, *result.Category)

	assert.Equal(t, models.TypeExpense, result.Type)
	assert.False(t, result.IsEmpty())
}

func TestExtractPartialReceipt(t *testing.T) {
	ext := newTestExtractor()

	// No recognizable date, merchant or keyword, just a total.
	result, err := ext.Extract(context.Background(), "xyz 1.00\nTotal: 9.50")
	require.NoError(t, err)

	require.NotNil(t, result.Amount)
	assert.Nil(t, result.Date)
	assert.Nil(t, result.Description)
	assert.Nil(t, result.Category)
	assert.Equal(t, models.TypeExpense, result.Type)
}

func TestExtractNothingFound(t *testing.T) {
	ext := newTestExtractor()

	result, err := ext.Extract(context.Background(), "illegible smudge")
	require.NoError(t, err)
	assert.True(t, result.IsEmpty())
	assert.Equal(t, models.TypeExpense, result.Type)
}

func TestExtractEmptyInput(t *testing.T) {
	ext := newTestExtractor()

	for _, text := range []string{"", "   ", "\n\t\n"} {
		_, err := ext.Extract(context.Background(), text)
		var emptyErr *parsererror.EmptyInputError
		assert.ErrorAs(t, err, &emptyErr)
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	ext := newTestExtractor()

	first, err := ext.Extract(context.Background(), sampleReceipt)
	require.NoError(t, err)
	second, err := ext.Extract(context.Background(), sampleReceipt)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtractGroceriesWinsKeywordTie(t *testing.T) {
	ext := newTestExtractor()

	// "milk" maps to groceries; groceries is declared before restaurants so
	// a mixed basket stays a grocery run.
	result, err := ext.Extract(context.Background(), "milk 2.00\npizza 8.00\nTotal: 10.00")
	require.NoError(t, err)
	require.NotNil(t, result.Category)
	assert.Equal(t, models.CategoryGroceries, *result.Category)
}

type failingClassifier struct{}

func (failingClassifier) Classify(context.Context, string) (string, bool, error) {
	return "", false, errors.New("backend unavailable")
}

func TestExtractClassifierFailureDegradesToNoCategory(t *testing.T) {
	logger := &logging.MockLogger{}
	ext := New(failingClassifier{}, logger)

	result, err := ext.Extract(context.Background(), "Total: 5.00")
	require.NoError(t, err)
	assert.Nil(t, result.Category)
	require.NotNil(t, result.Amount)
	assert.True(t, logger.HasEntry("WARN", "Category classification failed"))
}

func TestExtractResultRoundTrip(t *testing.T) {
	ext := newTestExtractor()

	result, err := ext.Extract(context.Background(), sampleReceipt)
	require.NoError(t, err)

	req := models.NewTransactionRequest(result, "receipt-001.txt")
	assert.True(t, req.Amount.Equal(*result.Amount))
	assert.Equal(t, *result.Date, req.Date)
	assert.Equal(t, *result.Description, req.Description)
	assert.Equal(t, *result.Category, req.Category)
	assert.Equal(t, models.TypeExpense, req.Type)
	assert.Equal(t, "receipt-001.txt", req.Source)
}
