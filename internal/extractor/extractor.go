// Package extractor recovers structured transaction fields from raw receipt
// OCR text. Four independent locators (amount, date, description, category)
// run over the same input; each returns an explicit "not found" instead of
// failing, so partial extraction is a normal outcome.
package extractor

import (
	"context"
	"strings"

	"fjacquet/receipt-scan/internal/logging"
	"fjacquet/receipt-scan/internal/models"
	"fjacquet/receipt-scan/internal/parsererror"
)

// CategoryClassifier maps receipt text to a category of the taxonomy.
// The bool reports whether any category matched.
type CategoryClassifier interface {
	Classify(ctx context.Context, text string) (string, bool, error)
}

// Extractor runs the four field locators over a receipt transcript. It holds
// no mutable state, so a single instance is safe for concurrent use across
// receipts.
type Extractor struct {
	classifier CategoryClassifier
	logger     logging.Logger
}

// New creates an Extractor using the given category classifier.
func New(classifier CategoryClassifier, logger logging.Logger) *Extractor {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &Extractor{
		classifier: classifier,
		logger:     logger,
	}
}

// Extract runs all four locators on the transcript and assembles the result.
// The only error condition is empty or whitespace-only input; absence of any
// individual field is reported through nil fields, never an error.
func (e *Extractor) Extract(ctx context.Context, text string) (models.ExtractionResult, error) {
	if strings.TrimSpace(text) == "" {
		return models.ExtractionResult{}, &parsererror.EmptyInputError{}
	}

	result := models.NewExtractionResult()
	result.Amount = locateAmount(text)
	result.Date = locateDate(text)
	result.Description = locateDescription(text)
	result.Category = e.locateCategory(ctx, text)

	e.logger.WithFields(
		logging.Field{Key: "amount_found", Value: result.Amount != nil},
		logging.Field{Key: "date_found", Value: result.Date != nil},
		logging.Field{Key: "description_found", Value: result.Description != nil},
		logging.Field{Key: "category_found", Value: result.Category != nil},
	).Debug("Receipt extraction finished")

	return result, nil
}

// locateCategory delegates to the classifier. Classifier failures degrade to
// "not found": the rest of the result is still useful.
func (e *Extractor) locateCategory(ctx context.Context, text string) *string {
	if e.classifier == nil {
		return nil
	}

	category, found, err := e.classifier.Classify(ctx, text)
	if err != nil {
		e.logger.WithError(err).Warn("Category classification failed")
		return nil
	}
	if !found {
		return nil
	}
	return &category
}
