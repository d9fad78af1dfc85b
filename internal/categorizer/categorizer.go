package categorizer

import (
	"context"

	"fjacquet/receipt-scan/internal/logging"
)

// Categorizer runs a list of strategies in order and returns the first
// category any of them produces. A failing strategy is logged and skipped so
// an unreachable AI backend never blocks keyword matching.
type Categorizer struct {
	strategies []Strategy
	logger     logging.Logger
}

// New creates a Categorizer that tries the given strategies in order.
func New(logger logging.Logger, strategies ...Strategy) *Categorizer {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &Categorizer{
		strategies: strategies,
		logger:     logger,
	}
}

// Classify returns the category for the given receipt text, or false when no
// strategy matches.
func (c *Categorizer) Classify(ctx context.Context, text string) (string, bool, error) {
	for _, strategy := range c.strategies {
		category, found, err := strategy.Classify(ctx, text)
		if err != nil {
			c.logger.WithError(err).
				WithField(logging.FieldStrategy, strategy.Name()).
				Warn("Categorization strategy failed, trying next")
			continue
		}
		if found {
			return category, true, nil
		}
	}
	return "", false, nil
}
