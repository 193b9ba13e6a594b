package engine

import (
	"context"
	"fmt"

	"adcraft/internal/archive"
	"adcraft/internal/copywriter"
	"adcraft/pkg/config"
	"adcraft/pkg/prompts"
)

// Build wires an Engine from configuration: the copywriter provider, the
// optional round archive, and the engine knobs.
func Build(ctx context.Context, cfg *config.Config) (*Engine, error) {
	writer, err := buildWriter(cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildArchive(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return New(Options{
		Writer:    writer,
		Archive:   store,
		Variants:  cfg.Engine.Variants,
		ClickRate: cfg.Engine.ClickRate,
	}), nil
}

func buildWriter(cfg *config.Config) (copywriter.Provider, error) {
	switch cfg.Copywriter.Provider {
	case "", "stub":
		return copywriter.NewStubWriter(), nil
	case "groq":
		if cfg.GroqAPIKey == "" {
			return nil, fmt.Errorf("groq provider selected but GROQ_API_KEY is not set")
		}
		p, err := prompts.Load()
		if err != nil {
			return nil, err
		}
		return copywriter.NewGroqWriter(cfg.GroqAPIKey, cfg.Copywriter.GroqModel, p)
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai provider selected but OPENAI_API_KEY is not set")
		}
		p, err := prompts.Load()
		if err != nil {
			return nil, err
		}
		return copywriter.NewOpenAIWriter(cfg.OpenAIAPIKey, cfg.Copywriter.OpenAIModel, p), nil
	default:
		return nil, fmt.Errorf("unknown copywriter provider %q", cfg.Copywriter.Provider)
	}
}

func buildArchive(ctx context.Context, cfg *config.Config) (archive.Store, error) {
	if !cfg.Archive.Enabled {
		return nil, nil
	}

	switch cfg.Archive.Backend {
	case "", "local":
		return archive.NewLocalStore(cfg.Archive.Dir), nil
	case "gcs":
		if cfg.GCSBucket == "" {
			return nil, fmt.Errorf("gcs archive selected but GCS_BUCKET is not set")
		}
		return archive.NewGCSStore(ctx, cfg.GCSBucket, cfg.Archive.Prefix)
	default:
		return nil, fmt.Errorf("unknown archive backend %q", cfg.Archive.Backend)
	}
}
