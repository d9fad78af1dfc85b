package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain decimal", "12.50", "12.50"},
		{"dollar symbol", "$23.10", "23.10"},
		{"euro symbol with space", "€ 45.00", "45.00"},
		{"comma as decimal separator", "12,50", "12.50"},
		{"US thousands", "1,234.56", "1234.56"},
		{"European thousands", "1.234,56", "1234.56"},
		{"apostrophe thousands", "1'234.56", "1234.56"},
		{"comma thousands without decimals", "1,234", "1234"},
		{"rupee symbol", "₹99.00", "99.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ParseAmount(tt.input)
			require.NoError(t, err)
			assert.True(t, amount.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, amount)
		})
	}
}

func TestParseAmountErrors(t *testing.T) {
	for _, input := range []string{"", "   ", "abc"} {
		_, err := ParseAmount(input)
		assert.Error(t, err, "input %q should fail", input)
	}
}

func TestStandardizeAmount(t *testing.T) {
	assert.Equal(t, "12.50", StandardizeAmount("$ 12.50"))
	assert.Equal(t, "1234.56", StandardizeAmount("1.234,56"))
	assert.Equal(t, "1234.56", StandardizeAmount("1'234.56"))
}

func TestIsPositive(t *testing.T) {
	assert.True(t, IsPositive(decimal.RequireFromString("0.01")))
	assert.False(t, IsPositive(decimal.Zero))
	assert.False(t, IsPositive(decimal.RequireFromString("-5.00")))
}
