package copywriter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"adcraft/internal/creative"
)

// Variant is one piece of ad copy produced by a provider, before the
// engine assigns ids, images and scores.
type Variant struct {
	Headline    string `json:"headline"`
	PrimaryText string `json:"primary_text"`
}

// Provider generates base ad copy for a campaign and adapts it per region.
type Provider interface {
	GenerateVariants(ctx context.Context, brand creative.Brand, brief creative.Brief, n int) ([]Variant, error)
	Transcreate(ctx context.Context, brand creative.Brand, brief creative.Brief, base Variant, region string) (Variant, error)
}

// parseVariants accepts both a bare JSON array and the {"variants": [...]}
// wrapper models tend to produce under a json_object response format.
func parseVariants(content string) ([]Variant, error) {
	content = stripFences(content)

	var variants []Variant
	if err := json.Unmarshal([]byte(content), &variants); err == nil {
		return variants, nil
	}

	var wrapped struct {
		Variants []Variant `json:"variants"`
	}
	if err := json.Unmarshal([]byte(content), &wrapped); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	return wrapped.Variants, nil
}

func parseVariant(content string) (Variant, error) {
	var v Variant
	if err := json.Unmarshal([]byte(stripFences(content)), &v); err != nil {
		return Variant{}, fmt.Errorf("parse response: %w", err)
	}
	return v, nil
}

// stripFences removes the markdown code fences some models wrap around
// JSON despite instructions.
func stripFences(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
