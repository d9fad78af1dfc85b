// Package scan handles extraction from receipt images
package scan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/receipt-scan/cmd/root"
	"fjacquet/receipt-scan/internal/logging"
	"fjacquet/receipt-scan/internal/ocr"
	"fjacquet/receipt-scan/internal/parsererror"
	"fjacquet/receipt-scan/internal/receipt"

	"github.com/spf13/cobra"
)

var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
}

// Cmd represents the scan command
var Cmd = &cobra.Command{
	Use:   "scan",
	Short: "Run OCR on a receipt image and extract transaction fields",
	Long: `Run tesseract OCR on a receipt image, then extract the amount, date,
merchant description and spending category from the recognized text.`,
	Run: scanFunc,
}

var showText bool

func init() {
	Cmd.Flags().BoolVar(&showText, "show-text", false, "Also print the raw OCR text")
}

func scanFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Scan command called")

	if root.SharedFlags.Input == "" {
		root.Log.Error("Input image is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(root.SharedFlags.Input))
	if !supportedExtensions[ext] {
		err := &parsererror.InvalidFormatError{
			FilePath:       root.SharedFlags.Input,
			ExpectedFormat: "jpg, jpeg, png, tif, tiff or bmp image",
			Msg:            fmt.Sprintf("unsupported file extension %q", ext),
		}
		root.Log.Error(err.Error())
		return
	}

	ctx := cmd.Context()
	fieldExtractor, cleanup, err := root.BuildExtractor(ctx)
	if err != nil {
		root.Log.Errorf("Error building extractor: %v", err)
		return
	}
	defer cleanup()

	adapter := logging.NewLogrusAdapterFromLogger(root.Log)
	textExtractor := ocr.NewTesseractExtractor(root.Cfg.OCR.Binary, root.Cfg.OCR.Languages, adapter)
	service := receipt.NewService(textExtractor, fieldExtractor, adapter)

	result, rawText, err := service.ProcessImage(ctx, root.SharedFlags.Input)
	if err != nil {
		root.Log.Errorf("Error processing receipt image: %v", err)
		return
	}

	if showText {
		fmt.Println(rawText)
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
