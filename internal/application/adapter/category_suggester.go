// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// CategorySuggestion is the suggested category for an expense description.
type CategorySuggestion struct {
	Category   string
	Confidence float64
	Reasoning  string
}

// CategorySuggester proposes an expense category from a free-text description.
type CategorySuggester interface {
	// Suggest returns the best matching category out of categories.
	Suggest(ctx context.Context, description string, categories []string) (*CategorySuggestion, error)

	// IsAvailable checks if the suggester is properly configured.
	IsAvailable() bool
}
