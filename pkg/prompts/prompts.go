package prompts

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

const defaultPromptsPath = "prompts.yaml"

type Prompts struct {
	System SystemPrompts `yaml:"system"`
	Copy   CopyPrompts   `yaml:"copy"`
}

type SystemPrompts struct {
	Copywriter  string `yaml:"copywriter"`
	Transcreate string `yaml:"transcreate"`
}

type CopyPrompts struct {
	Variants    string `yaml:"variants"`
	Transcreate string `yaml:"transcreate"`
}

type VariantsParams struct {
	BrandName  string
	Tone       string
	Product    string
	Audience   string
	ValueProps string
	CTA        string
	N          int
}

type TranscreateParams struct {
	Region      string
	Headline    string
	PrimaryText string
	Tone        string
	CTA         string
}

func Load() (*Prompts, error) {
	return LoadFrom(defaultPromptsPath)
}

func LoadFrom(path string) (*Prompts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts file: %w", err)
	}

	var p Prompts
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse prompts file: %w", err)
	}

	return &p, nil
}

func (p *Prompts) RenderVariants(params VariantsParams) (string, error) {
	return render(p.Copy.Variants, params)
}

func (p *Prompts) RenderTranscreate(params TranscreateParams) (string, error) {
	return render(p.Copy.Transcreate, params)
}

func render(tmpl string, data any) (string, error) {
	t, err := template.New("prompt").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
