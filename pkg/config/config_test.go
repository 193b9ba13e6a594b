package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GROQ_API_KEY", "OPENAI_API_KEY", "GCS_BUCKET",
		"GOOGLE_CLOUD_PROJECT", "ADCRAFT_ENGINE_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	tmp := t.TempDir()
	orig, _ := os.Getwd()
	defer func() { _ = os.Chdir(orig) }()
	_ = os.Chdir(tmp)
	clearEnv(t)

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Engine.Addr != ":8000" {
		t.Errorf("Engine.Addr = %q, want :8000", cfg.Engine.Addr)
	}
	if cfg.Engine.Variants != 3 {
		t.Errorf("Engine.Variants = %d, want 3", cfg.Engine.Variants)
	}
	if cfg.Engine.SimulateRounds != 200 {
		t.Errorf("Engine.SimulateRounds = %d, want 200", cfg.Engine.SimulateRounds)
	}
	if cfg.Studio.EngineURL != "http://localhost:8000" {
		t.Errorf("Studio.EngineURL = %q, want http://localhost:8000", cfg.Studio.EngineURL)
	}
	if cfg.Copywriter.Provider != "stub" {
		t.Errorf("Copywriter.Provider = %q, want stub", cfg.Copywriter.Provider)
	}
	if cfg.History.Limit != 20 {
		t.Errorf("History.Limit = %d, want 20", cfg.History.Limit)
	}
}

func TestLoadFromYAML(t *testing.T) {
	tmp := t.TempDir()
	orig, _ := os.Getwd()
	defer func() { _ = os.Chdir(orig) }()
	_ = os.Chdir(tmp)
	clearEnv(t)

	yaml := `
engine:
  addr: ":9100"
  variants: 5
  click_rate: 0.5
copywriter:
  provider: groq
  groq_model: test-model
archive:
  enabled: true
  backend: gcs
  prefix: campaigns
`
	_ = os.WriteFile(filepath.Join(tmp, "config.yaml"), []byte(yaml), 0644)

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Engine.Addr != ":9100" {
		t.Errorf("Engine.Addr = %q, want :9100", cfg.Engine.Addr)
	}
	if cfg.Engine.Variants != 5 {
		t.Errorf("Engine.Variants = %d, want 5", cfg.Engine.Variants)
	}
	if cfg.Engine.ClickRate != 0.5 {
		t.Errorf("Engine.ClickRate = %v, want 0.5", cfg.Engine.ClickRate)
	}
	if cfg.Copywriter.Provider != "groq" {
		t.Errorf("Copywriter.Provider = %q, want groq", cfg.Copywriter.Provider)
	}
	if cfg.Copywriter.GroqModel != "test-model" {
		t.Errorf("Copywriter.GroqModel = %q, want test-model", cfg.Copywriter.GroqModel)
	}
	if !cfg.Archive.Enabled || cfg.Archive.Backend != "gcs" {
		t.Errorf("Archive = %+v, want enabled gcs backend", cfg.Archive)
	}
	if cfg.Archive.Prefix != "campaigns" {
		t.Errorf("Archive.Prefix = %q, want campaigns", cfg.Archive.Prefix)
	}
}

func TestLoadFromEnv(t *testing.T) {
	tmp := t.TempDir()
	orig, _ := os.Getwd()
	defer func() { _ = os.Chdir(orig) }()
	_ = os.Chdir(tmp)
	clearEnv(t)

	t.Setenv("GROQ_API_KEY", "test-groq")
	t.Setenv("OPENAI_API_KEY", "test-openai")
	t.Setenv("GCS_BUCKET", "test-bucket")
	t.Setenv("ADCRAFT_ENGINE_URL", "http://engine.test:9000")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.GroqAPIKey != "test-groq" {
		t.Errorf("GroqAPIKey = %q, want test-groq", cfg.GroqAPIKey)
	}
	if cfg.OpenAIAPIKey != "test-openai" {
		t.Errorf("OpenAIAPIKey = %q, want test-openai", cfg.OpenAIAPIKey)
	}
	if cfg.GCSBucket != "test-bucket" {
		t.Errorf("GCSBucket = %q, want test-bucket", cfg.GCSBucket)
	}
	if cfg.Studio.EngineURL != "http://engine.test:9000" {
		t.Errorf("Studio.EngineURL = %q, want env override", cfg.Studio.EngineURL)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	tmp := t.TempDir()
	orig, _ := os.Getwd()
	defer func() { _ = os.Chdir(orig) }()
	_ = os.Chdir(tmp)
	clearEnv(t)

	_ = os.WriteFile(filepath.Join(tmp, "config.yaml"), []byte("engine: [not: valid"), 0644)

	if _, err := Load(context.Background()); err == nil {
		t.Error("Load() should fail on malformed config.yaml")
	}
}

func TestEngineURLEnvBeatsYAML(t *testing.T) {
	tmp := t.TempDir()
	orig, _ := os.Getwd()
	defer func() { _ = os.Chdir(orig) }()
	_ = os.Chdir(tmp)
	clearEnv(t)

	yaml := "studio:\n  engine_url: http://from-yaml:8000\n"
	_ = os.WriteFile(filepath.Join(tmp, "config.yaml"), []byte(yaml), 0644)
	t.Setenv("ADCRAFT_ENGINE_URL", "http://from-env:8000")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Studio.EngineURL != "http://from-env:8000" {
		t.Errorf("Studio.EngineURL = %q, want http://from-env:8000", cfg.Studio.EngineURL)
	}
}
