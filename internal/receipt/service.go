// Package receipt wires OCR and field extraction into a single pipeline.
package receipt

import (
	"context"

	"fjacquet/receipt-scan/internal/extractor"
	"fjacquet/receipt-scan/internal/logging"
	"fjacquet/receipt-scan/internal/models"
	"fjacquet/receipt-scan/internal/ocr"
)

// Service processes receipt images and raw transcripts into extraction
// results.
type Service struct {
	ocr       ocr.TextExtractor
	extractor *extractor.Extractor
	logger    logging.Logger
}

// NewService creates a Service. The text extractor may be nil when only
// ProcessText is used.
func NewService(textExtractor ocr.TextExtractor, ext *extractor.Extractor, logger logging.Logger) *Service {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &Service{
		ocr:       textExtractor,
		extractor: ext,
		logger:    logger,
	}
}

// ProcessImage runs OCR on the image and extracts receipt fields from the
// recognized text. The raw text is returned alongside the result so callers
// can surface it for debugging.
func (s *Service) ProcessImage(ctx context.Context, imagePath string) (models.ExtractionResult, string, error) {
	s.logger.WithField(logging.FieldImage, imagePath).Info("Processing receipt image")

	text, err := s.ocr.ExtractText(ctx, imagePath)
	if err != nil {
		return models.NewExtractionResult(), "", err
	}

	result, err := s.extractor.Extract(ctx, text)
	if err != nil {
		return result, text, err
	}
	return result, text, nil
}

// ProcessText extracts receipt fields from an already-transcribed receipt.
func (s *Service) ProcessText(ctx context.Context, text string) (models.ExtractionResult, error) {
	return s.extractor.Extract(ctx, text)
}
