package ocr

import "context"

// MockTextExtractor returns canned text for tests.
type MockTextExtractor struct {
	Text string
	Err  error
}

// ExtractText returns the configured text or error.
func (m *MockTextExtractor) ExtractText(_ context.Context, _ string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}
