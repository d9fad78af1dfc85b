package categorizer

import (
	"context"
	"strings"

	"fjacquet/receipt-scan/internal/logging"
	"fjacquet/receipt-scan/internal/models"
)

// KeywordStrategy classifies receipt text by keyword pattern matching against
// the category taxonomy. Matching is first-match-wins across both category
// and keyword declaration order, not best-match or frequency-weighted: the
// taxonomy order is the tie-break for keywords that appear under more than
// one category.
type KeywordStrategy struct {
	taxonomy []models.CategoryConfig
	logger   logging.Logger
}

// NewKeywordStrategy creates a KeywordStrategy over the given taxonomy.
// The taxonomy slice is treated as immutable.
func NewKeywordStrategy(taxonomy []models.CategoryConfig, logger logging.Logger) *KeywordStrategy {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &KeywordStrategy{
		taxonomy: taxonomy,
		logger:   logger,
	}
}

// Name returns the name of this strategy for logging and debugging.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Classify lower-cases the whole text and returns the first category whose
// keywords contain a substring match anywhere in it.
func (s *KeywordStrategy) Classify(_ context.Context, text string) (string, bool, error) {
	textLower := strings.ToLower(text)

	for _, category := range s.taxonomy {
		for _, keyword := range category.Keywords {
			if strings.Contains(textLower, strings.ToLower(keyword)) {
				s.logger.WithFields(
					logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
					logging.Field{Key: logging.FieldKeyword, Value: keyword},
					logging.Field{Key: logging.FieldCategory, Value: category.Name},
				).Debug("Receipt categorized using keyword matching")
				return category.Name, true, nil
			}
		}
	}

	return "", false, nil
}

// Contains reports whether name is a member of the strategy's taxonomy.
func (s *KeywordStrategy) Contains(name string) bool {
	for _, category := range s.taxonomy {
		if strings.EqualFold(category.Name, name) {
			return true
		}
	}
	return false
}
