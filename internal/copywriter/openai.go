package copywriter

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"adcraft/internal/creative"
	"adcraft/pkg/prompts"
)

type OpenAIWriter struct {
	client  *openai.Client
	model   openai.ChatModel
	prompts *prompts.Prompts
}

func NewOpenAIWriter(apiKey, model string, p *prompts.Prompts) *OpenAIWriter {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIWriter{
		client:  &client,
		model:   openai.ChatModel(model),
		prompts: p,
	}
}

func (c *OpenAIWriter) GenerateVariants(ctx context.Context, brand creative.Brand, brief creative.Brief, n int) ([]Variant, error) {
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

	content, err := c.complete(ctx, c.prompts.System.Copywriter, prompt)
	if err != nil {
		return nil, err
	}
	return parseVariants(content)
}

func (c *OpenAIWriter) Transcreate(ctx context.Context, brand creative.Brand, brief creative.Brief, base Variant, region string) (Variant, error) {
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

	content, err := c.complete(ctx, c.prompts.System.Transcreate, prompt)
	if err != nil {
		return Variant{}, err
	}
	return parseVariant(content)
}

func (c *OpenAIWriter) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty response from openai")
	}

	return content, nil
}
