package copywriter

import (
	"context"
	"fmt"
	"strings"

	"github.com/conneroisu/groq-go"

	"adcraft/internal/creative"
	"adcraft/pkg/prompts"
)

type GroqWriter struct {
	client  *groq.Client
	model   groq.ChatModel
	prompts *prompts.Prompts
}

func NewGroqWriter(apiKey, model string, p *prompts.Prompts) (*GroqWriter, error) {
	client, err := groq.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("create groq client: %w", err)
	}

	return &GroqWriter{
		client:  client,
		model:   groq.ChatModel(model),
		prompts: p,
	}, nil
}

func (c *GroqWriter) GenerateVariants(ctx context.Context, brand creative.Brand, brief creative.Brief, n int) ([]Variant, error) {
	prompt, err := c.prompts.RenderVariants(prompts.VariantsParams{
		BrandName:  brand.Name,
		Tone:       strings.Join(brand.Tone, ", "),
		Product:    brief.Product,
		Audience:   brief.Audience,
		ValueProps: strings.Join(brief.ValueProps, "; "),
		CTA:        brief.CTA,
		N:          n,
	})
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	content, err := c.generateJSONContent(ctx, c.prompts.System.Copywriter, prompt)
	if err != nil {
		return nil, err
	}
	return parseVariants(content)
}

func (c *GroqWriter) Transcreate(ctx context.Context, brand creative.Brand, brief creative.Brief, base Variant, region string) (Variant, error) {
	prompt, err := c.prompts.RenderTranscreate(prompts.TranscreateParams{
		Region:      region,
		Headline:    base.Headline,
		PrimaryText: base.PrimaryText,
		Tone:        strings.Join(brand.Tone, ", "),
		CTA:         brief.CTA,
	})
	if err != nil {
		return Variant{}, fmt.Errorf("render prompt: %w", err)
	}

	content, err := c.generateJSONContent(ctx, c.prompts.System.Transcreate, prompt)
	if err != nil {
		return Variant{}, err
	}
	return parseVariant(content)
}

func (c *GroqWriter) generateJSONContent(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.ChatCompletion(ctx, groq.ChatCompletionRequest{
		Model: c.model,
		Messages: []groq.ChatCompletionMessage{
			{Role: groq.RoleSystem, Content: systemPrompt},
			{Role: groq.RoleUser, Content: userPrompt},
		},
		ResponseFormat: &groq.ChatResponseFormat{
			Type: "json_object",
		},
	})
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response")
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty response")
	}

	return content, nil
}
