// Package parse handles extraction from receipt transcript files
package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"fjacquet/receipt-scan/cmd/root"
	"fjacquet/receipt-scan/internal/parsererror"

	"github.com/spf13/cobra"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract transaction fields from a receipt transcript",
	Long: `Extract the amount, date, merchant description and spending category
from an already-transcribed receipt text file and print them as JSON.`,
	Run: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Parse command called")

	if root.SharedFlags.Input == "" {
		root.Log.Error("Input file is required")
		return
	}

	data, err := os.ReadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Errorf("Error reading input file: %v", err)
		return
	}

	ctx := cmd.Context()
	ext, cleanup, err := root.BuildExtractor(ctx)
	if err != nil {
		root.Log.Errorf("Error building extractor: %v", err)
		return
	}
	defer cleanup()

	result, err := ext.Extract(ctx, string(data))
	if err != nil {
		var emptyErr *parsererror.EmptyInputError
		if errors.As(err, &emptyErr) {
			root.Log.Error("Input file contains no text to extract from")
			return
		}
		root.Log.Errorf("Error extracting receipt fields: %v", err)
		return
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		root.Log.Errorf("Error encoding result: %v", err)
		return
	}

	if root.SharedFlags.Output != "" {
		if err := os.WriteFile(root.SharedFlags.Output, append(output, '\n'), 0o644); err != nil {
			root.Log.Errorf("Error writing output file: %v", err)
			return
		}
		root.Log.Infof("Result written to %s", root.SharedFlags.Output)
		return
	}

	fmt.Println(string(output))
}
