package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// AIRepository is the fact-extraction collaborator: given article body
// text, it returns the discrete factual statements the text asserts.
type AIRepository interface {
	ExtractFacts(ctx context.Context, text string) ([]string, error)
}

// ParseFactList pulls the first [...]-delimited substring out of a model
// response and decodes it as a strict JSON array of strings. Models often
// wrap the array in prose, so everything outside the brackets is ignored.
// Fails closed: no bracket pair or invalid JSON is an error, never a
// partial result.
func ParseFactList(text string) ([]string, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array found in model response")
	}

	var facts []string
	if err := json.Unmarshal([]byte(text[start:end+1]), &facts); err != nil {
		return nil, fmt.Errorf("failed to parse fact list from model response: %w", err)
	}
	return facts, nil
}
