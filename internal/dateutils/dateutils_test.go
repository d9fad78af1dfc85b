package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTwoDigitYear(t *testing.T) {
	tests := []struct {
		year     int
		expected int
	}{
		{0, 2000},
		{24, 2024},
		{49, 2049},
		{50, 1950},
		{99, 1999},
		{2024, 2024},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ExpandTwoDigitYear(tt.year))
	}
}

func TestMakeDate(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		day   int
		ok    bool
	}{
		{"valid date", 2024, 3, 14, true},
		{"leap day on leap year", 2024, 2, 29, true},
		{"leap day on non-leap year", 2023, 2, 29, false},
		{"month out of range", 2024, 13, 1, false},
		{"day out of range", 2024, 1, 32, false},
		{"thirty-first of a short month", 2024, 4, 31, false},
		{"zero day", 2024, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, ok := MakeDate(tt.year, tt.month, tt.day)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.year, date.Year())
				assert.Equal(t, time.Month(tt.month), date.Month())
				assert.Equal(t, tt.day, date.Day())
			}
		})
	}
}

func TestMonthFromAbbrev(t *testing.T) {
	m, ok := MonthFromAbbrev("mar")
	require.True(t, ok)
	assert.Equal(t, time.March, m)

	m, ok = MonthFromAbbrev("DEC")
	require.True(t, ok)
	assert.Equal(t, time.December, m)

	_, ok = MonthFromAbbrev("mxr")
	assert.False(t, ok)
}

func TestToISODate(t *testing.T) {
	date := time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-14", ToISODate(date))
}
