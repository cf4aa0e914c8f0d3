// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/budgetwise/backend/internal/application/adapter"
)

// DefaultGeminiModel is used when no model name is configured.
const DefaultGeminiModel = "gemini-2.5-flash-lite"

// GeminiService implements adapter.CategorySuggester using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Suggest asks Gemini to classify an expense description into one of categories.
func (s *GeminiService) Suggest(ctx context.Context, description string, categories []string) (*adapter.CategorySuggestion, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildSuggestionPrompt(description, categories)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	suggestion, err := parseSuggestion(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return suggestion, nil
}

func buildSuggestionPrompt(description string, categories []string) string {
	var sb strings.Builder

	sb.WriteString(`You classify personal expenses into spending categories.

Pick exactly one category from the list below for the expense description.
Never invent a category. When nothing fits, answer "Other".

CATEGORIES:
`)
	for _, category := range categories {
		sb.WriteString("- ")
		sb.WriteString(category)
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("\nEXPENSE DESCRIPTION: %q\n", description))
	sb.WriteString(`
Respond with a single JSON object:
{
  "category": "one of the categories above",
  "confidence": 0.0-1.0,
  "reasoning": "one short sentence"
}

RESPONSE FORMAT: Return only the JSON object, no additional text.
`)

	return sb.String()
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok && text != "" {
			return string(text), nil
		}
	}
	return "", fmt.Errorf("no text content in response")
}

type geminiSuggestion struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// parseSuggestion decodes the model answer, tolerating markdown code fences.
func parseSuggestion(text string) (*adapter.CategorySuggestion, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var raw geminiSuggestion
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if strings.TrimSpace(raw.Category) == "" {
		return nil, fmt.Errorf("response has no category")
	}

	confidence := raw.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return &adapter.CategorySuggestion{
		Category:   strings.TrimSpace(raw.Category),
		Confidence: confidence,
		Reasoning:  raw.Reasoning,
	}, nil
}
