package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/receipt-scan/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTransactionRequestsToCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "transactions.csv")

	rows := []models.TransactionRequest{
		{
			Amount:      decimal.RequireFromString("12.50"),
			Date:        "2024-03-14",
			Description: "FRESH FIELDS MARKET",
			Category:    models.CategoryGroceries,
			Type:        models.TypeExpense,
			Source:      "receipt-001.txt",
		},
		{
			Type:   models.TypeExpense,
			Source: "blurry.txt",
		},
	}

	require.NoError(t, WriteTransactionRequestsToCSV(rows, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Amount,Date,Description,Category,Type,Source", lines[0])
	assert.Contains(t, lines[1], "2024-03-14")
	assert.Contains(t, lines[1], "FRESH FIELDS MARKET")
	assert.Contains(t, lines[2], "blurry.txt")
}

func TestSetDelimiter(t *testing.T) {
	original := Delimiter
	defer SetDelimiter(original)

	SetDelimiter(';')

	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.csv")
	rows := []models.TransactionRequest{
		{Type: models.TypeExpense, Source: "a.txt"},
	}
	require.NoError(t, WriteTransactionRequestsToCSV(rows, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Amount;Date;Description;Category;Type;Source",
		strings.Split(strings.TrimSpace(string(data)), "\n")[0])
}
