package adapters

import (
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestParseSuggestion(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		wantCategory   string
		wantConfidence float64
		wantErr        bool
	}{
		{
			name:           "plain json",
			text:           `{"category":"Food","confidence":0.92,"reasoning":"groceries"}`,
			wantCategory:   "Food",
			wantConfidence: 0.92,
		},
		{
			name:           "fenced json",
			text:           "```json\n{\"category\":\" Transport \",\"confidence\":0.5}\n```",
			wantCategory:   "Transport",
			wantConfidence: 0.5,
		},
		{
			name:           "confidence is clamped",
			text:           `{"category":"Food","confidence":7}`,
			wantCategory:   "Food",
			wantConfidence: 1,
		},
		{
			name:    "missing category",
			text:    `{"confidence":0.4}`,
			wantErr: true,
		},
		{
			name:    "not json",
			text:    "Food",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSuggestion(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Category != tt.wantCategory {
				t.Errorf("expected category %q, got %q", tt.wantCategory, got.Category)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("expected confidence %v, got %v", tt.wantConfidence, got.Confidence)
			}
		})
	}
}

func TestBuildSuggestionPrompt_ListsCatalog(t *testing.T) {
	prompt := buildSuggestionPrompt("Uber to airport", []string{"Food", "Transport"})

	for _, want := range []string{"- Food\n", "- Transport\n", `"Uber to airport"`} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected prompt to contain %q", want)
		}
	}
}

func TestResponseText(t *testing.T) {
	if _, err := responseText(nil); err == nil {
		t.Error("expected error for nil response")
	}

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"category":"Food"}`)}}},
		},
	}
	text, err := responseText(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != `{"category":"Food"}` {
		t.Errorf("unexpected text %q", text)
	}
}

func TestGeminiService_IsAvailable(t *testing.T) {
	if NewGeminiService("", "").IsAvailable() {
		t.Error("expected service without key to be unavailable")
	}
	svc := NewGeminiService("key", "")
	if !svc.IsAvailable() {
		t.Error("expected configured service to be available")
	}
	if svc.modelName != DefaultGeminiModel {
		t.Errorf("expected default model, got %q", svc.modelName)
	}
}
