package ocr

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"fjacquet/receipt-scan/internal/logging"
	"fjacquet/receipt-scan/internal/parsererror"
)

// execCommand is swapped out in tests so OCR can be exercised without a
// tesseract install.
var execCommand = exec.CommandContext

// TesseractExtractor runs the tesseract CLI against an image and captures
// the recognized text from stdout.
type TesseractExtractor struct {
	Binary    string
	Languages string
	logger    logging.Logger
}

// NewTesseractExtractor creates a TesseractExtractor. Binary defaults to
// "tesseract" and Languages to "eng" when left empty.
func NewTesseractExtractor(binary, languages string, logger logging.Logger) *TesseractExtractor {
	if binary == "" {
		binary = "tesseract"
	}
	if languages == "" {
		languages = "eng"
	}
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &TesseractExtractor{
		Binary:    binary,
		Languages: languages,
		logger:    logger,
	}
}

// ExtractText runs tesseract on the given image and returns the recognized
// text.
func (t *TesseractExtractor) ExtractText(ctx context.Context, imagePath string) (string, error) {
	if _, err := os.Stat(imagePath); err != nil {
		return "", &parsererror.OCRError{ImagePath: imagePath, Err: err}
	}

	t.logger.WithField(logging.FieldImage, imagePath).Debug("Running tesseract OCR")

	cmd := execCommand(ctx, t.Binary, imagePath, "stdout", "-l", t.Languages)
	out, err := cmd.Output()
	if err != nil {
		return "", &parsererror.OCRError{ImagePath: imagePath, Err: err}
	}

	text := string(out)
	t.logger.WithFields(
		logging.Field{Key: logging.FieldImage, Value: imagePath},
		logging.Field{Key: logging.FieldCount, Value: len(strings.Split(text, "\n"))},
	).Debug("OCR completed")

	return text, nil
}
