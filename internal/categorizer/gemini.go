package categorizer

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/receipt-scan/internal/logging"
	"fjacquet/receipt-scan/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiStrategy classifies receipt text with the Gemini model when keyword
// matching comes up empty. It is optional and disabled by default; answers
// outside the taxonomy are treated as no-match so the category invariant
// (member of the closed set or absent) holds regardless of what the model
// replies.
type GeminiStrategy struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	taxonomy []models.CategoryConfig
	logger   logging.Logger
}

// NewGeminiStrategy creates a GeminiStrategy using the given API key and
// model name.
func NewGeminiStrategy(ctx context.Context, apiKey, modelName string, taxonomy []models.CategoryConfig, logger logging.Logger) (*GeminiStrategy, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is empty")
	}
	if logger == nil {
		logger = &logging.MockLogger{}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiStrategy{
		client:   client,
		model:    client.GenerativeModel(modelName),
		taxonomy: taxonomy,
		logger:   logger,
	}, nil
}

// Name returns the name of this strategy for logging and debugging.
func (s *GeminiStrategy) Name() string {
	return "Gemini"
}

// Classify asks the model to pick one category name from the taxonomy.
func (s *GeminiStrategy) Classify(ctx context.Context, text string) (string, bool, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(s.buildPrompt(text)))
	if err != nil {
		return "", false, fmt.Errorf("gemini request failed: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(responseText(resp)))
	if answer == "" || answer == "none" {
		return "", false, nil
	}

	for _, category := range s.taxonomy {
		if strings.ToLower(category.Name) == answer {
			s.logger.WithFields(
				logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
				logging.Field{Key: logging.FieldCategory, Value: category.Name},
			).Debug("Receipt categorized using Gemini")
			return category.Name, true, nil
		}
	}

	s.logger.WithField(logging.FieldCategory, answer).
		Debug("Gemini returned a category outside the taxonomy, ignoring")
	return "", false, nil
}

// Close releases the underlying API client.
func (s *GeminiStrategy) Close() error {
	return s.client.Close()
}

func (s *GeminiStrategy) buildPrompt(text string) string {
	names := make([]string, len(s.taxonomy))
	for i, category := range s.taxonomy {
		names[i] = category.Name
	}

	return fmt.Sprintf(
		"The following text was scanned from a purchase receipt.\n"+
			"Assign it exactly one spending category from this list: %s.\n"+
			"Answer with the category name only, or \"none\" if no category fits.\n\n%s",
		strings.Join(names, ", "), text)
}

func responseText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}
