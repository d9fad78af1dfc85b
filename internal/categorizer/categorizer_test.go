package categorizer

import (
	"context"
	"errors"
	"testing"

	"fjacquet/receipt-scan/internal/logging"
	"fjacquet/receipt-scan/internal/models"
	"fjacquet/receipt-scan/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStrategy is a canned Strategy for fallback-order tests.
type stubStrategy struct {
	name     string
	category string
	found    bool
	err      error
	calls    int
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Classify(context.Context, string) (string, bool, error) {
	s.calls++
	return s.category, s.found, s.err
}

func TestCategorizerFirstStrategyWins(t *testing.T) {
	first := &stubStrategy{name: "first", category: "groceries", found: true}
	second := &stubStrategy{name: "second", category: "restaurants", found: true}

	c := New(&logging.MockLogger{}, first, second)
	category, found, err := c.Classify(context.Background(), "milk")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "groceries", category)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls, "later strategies should not run after a match")
}

func TestCategorizerFallsThroughOnNoMatch(t *testing.T) {
	first := &stubStrategy{name: "first"}
	second := &stubStrategy{name: "second", category: "utilities", found: true}

	c := New(&logging.MockLogger{}, first, second)
	category, found, err := c.Classify(context.Background(), "internet bill")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "utilities", category)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestCategorizerSkipsFailingStrategy(t *testing.T) {
	logger := &logging.MockLogger{}
	failing := &stubStrategy{name: "failing", err: errors.New("backend unavailable")}
	working := &stubStrategy{name: "working", category: "shopping", found: true}

	c := New(logger, failing, working)
	category, found, err := c.Classify(context.Background(), "new shoes")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "shopping", category)
	assert.True(t, logger.HasEntry("WARN", "Categorization strategy failed, trying next"))
}

func TestCategorizerNoStrategiesMatch(t *testing.T) {
	c := New(&logging.MockLogger{}, &stubStrategy{name: "first"}, &stubStrategy{name: "second"})

	category, found, err := c.Classify(context.Background(), "unclassifiable")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, category)
}

func TestCategorizerWithKeywordStrategy(t *testing.T) {
	c := New(&logging.MockLogger{},
		NewKeywordStrategy(store.DefaultTaxonomy(), &logging.MockLogger{}))

	category, found, err := c.Classify(context.Background(), "MOVIE TICKETS x2")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.CategoryEntertainment, category)
}
