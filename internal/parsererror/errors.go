// Package parsererror defines the typed errors used by the extraction pipeline.
// Absence of a field match is never an error; these types cover the cases that
// genuinely fail an operation.
package parsererror

import "fmt"

// EmptyInputError signals that a receipt transcript was empty or
// whitespace-only. Callers surface it as a "could not read this image"
// validation failure rather than an all-blank form.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "receipt text is empty or unreadable"
}

// ParseError represents a failure to parse a specific field value.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s='%s': %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// OCRError represents a failure of the external OCR engine. The extraction
// core never produces this; it belongs to the collaborator seam.
type OCRError struct {
	ImagePath string
	Err       error
}

func (e *OCRError) Error() string {
	return fmt.Sprintf("OCR failed for %s: %v", e.ImagePath, e.Err)
}

func (e *OCRError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an input file that does not conform to the
// expected format (e.g. a non-image handed to the scan command).
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
