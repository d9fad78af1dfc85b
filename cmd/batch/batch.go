// Package batch handles bulk extraction of receipt transcripts to CSV
package batch

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/receipt-scan/cmd/root"
	"fjacquet/receipt-scan/internal/common"
	"fjacquet/receipt-scan/internal/models"
	"fjacquet/receipt-scan/internal/parsererror"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Extract every receipt transcript in a directory to a CSV file",
	Long: `Process all .txt receipt transcripts in a directory and write the
extracted transactions to a single CSV file for import.`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.InputDir, "input-dir", "d", "", "Directory containing receipt transcripts")
	Cmd.Flags().StringVarP(&root.OutputDir, "output-dir", "u", "", "Directory for the output CSV file")
	Cmd.MarkFlagRequired("input-dir")
	Cmd.MarkFlagRequired("output-dir")
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")

	entries, err := os.ReadDir(root.InputDir)
	if err != nil {
		root.Log.Errorf("Error reading input directory: %v", err)
		return
	}

	ctx := cmd.Context()
	ext, cleanup, err := root.BuildExtractor(ctx)
	if err != nil {
		root.Log.Errorf("Error building extractor: %v", err)
		return
	}
	defer cleanup()

	var rows []models.TransactionRequest
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			continue
		}

		path := filepath.Join(root.InputDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			root.Log.Warnf("Skipping %s: %v", entry.Name(), err)
			continue
		}

		result, err := ext.Extract(ctx, string(data))
		if err != nil {
			var emptyErr *parsererror.EmptyInputError
			if errors.As(err, &emptyErr) {
				root.Log.Warnf("Skipping %s: transcript is empty", entry.Name())
				continue
			}
			root.Log.Warnf("Skipping %s: %v", entry.Name(), err)
			continue
		}

		rows = append(rows, models.NewTransactionRequest(result, entry.Name()))
	}

	if len(rows) == 0 {
		root.Log.Warn("No receipt transcripts processed, nothing to write")
		return
	}

	outputFile := filepath.Join(root.OutputDir, "transactions.csv")
	if err := common.WriteTransactionRequestsToCSV(rows, outputFile); err != nil {
		root.Log.Errorf("Error writing CSV file: %v", err)
		return
	}

	root.Log.Infof("Processed %d receipts into %s", len(rows), outputFile)
}
