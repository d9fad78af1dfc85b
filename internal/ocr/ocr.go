// Package ocr extracts raw text from receipt images. The actual recognition
// is delegated to an external tesseract binary behind the TextExtractor
// interface so the rest of the pipeline only ever sees plain text.
package ocr

import "context"

// TextExtractor turns a receipt image into raw text.
type TextExtractor interface {
	ExtractText(ctx context.Context, imagePath string) (string, error)
}
