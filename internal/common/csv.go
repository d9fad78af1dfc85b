// Package common holds CSV writing helpers shared by the commands.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/receipt-scan/internal/logging"
	"fjacquet/receipt-scan/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

// Delimiter is the field separator used when writing CSV files.
var Delimiter rune = ','

var log logging.Logger = logging.NewLogrusAdapterFromLogger(logrus.New())

// SetLogger sets the logger used by this package.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// SetDelimiter sets the delimiter used for CSV output.
func SetDelimiter(delimiter rune) {
	Delimiter = delimiter
}

// WriteTransactionRequestsToCSV writes transaction rows to the given path,
// creating parent directories as needed.
func WriteTransactionRequestsToCSV(rows []models.TransactionRequest, csvFile string) error {
	if dir := filepath.Dir(csvFile); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = Delimiter

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	).Info("Wrote transactions to CSV")

	return nil
}
