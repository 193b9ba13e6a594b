package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath     = "config.yaml"
	defaultEngineAddr     = ":8000"
	defaultEngineURL      = "http://localhost:8000"
	defaultVariants       = 3
	defaultClickRate      = 0.3
	defaultSimulateRounds = 200
	defaultProvider       = "stub"
	defaultGroqModel      = "llama-3.3-70b-versatile"
	defaultOpenAIModel    = "gpt-4o-mini"
	defaultArchiveBackend = "local"
	defaultArchiveDir     = "./output/rounds"
	defaultArchivePrefix  = "rounds"
	defaultHistoryPath    = "./output/history.json"
	defaultHistoryLimit   = 20

	groqSecretName   = "adcraft-groq-api-key"
	openaiSecretName = "adcraft-openai-api-key"
)

type Config struct {
	GroqAPIKey   string
	OpenAIAPIKey string
	GCSBucket    string
	GCPProject   string

	Engine     EngineConfig     `yaml:"engine"`
	Studio     StudioConfig     `yaml:"studio"`
	Copywriter CopywriterConfig `yaml:"copywriter"`
	Archive    ArchiveConfig    `yaml:"archive"`
	History    HistoryConfig    `yaml:"history"`
}

type EngineConfig struct {
	Addr           string  `yaml:"addr"`
	Variants       int     `yaml:"variants"`
	ClickRate      float64 `yaml:"click_rate"`
	SimulateRounds int     `yaml:"simulate_rounds"`
}

type StudioConfig struct {
	EngineURL string `yaml:"engine_url"`
	// TimeoutSeconds of 0 leaves generate calls without a client timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

type CopywriterConfig struct {
	Provider    string `yaml:"provider"` // "stub", "groq" or "openai"
	GroqModel   string `yaml:"groq_model"`
	OpenAIModel string `yaml:"openai_model"`
}

type ArchiveConfig struct {
	Enabled bool   `yaml:"enabled"`
	Backend string `yaml:"backend"` // "local" or "gcs"
	Dir     string `yaml:"dir"`
	Prefix  string `yaml:"prefix"`
}

type HistoryConfig struct {
	Path  string `yaml:"path"`
	Limit int    `yaml:"limit"`
}

func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		GroqAPIKey:   os.Getenv("GROQ_API_KEY"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		GCSBucket:    os.Getenv("GCS_BUCKET"),
		GCPProject:   os.Getenv("GOOGLE_CLOUD_PROJECT"),
	}

	if err := loadYAMLConfig(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	if url := os.Getenv("ADCRAFT_ENGINE_URL"); url != "" {
		cfg.Studio.EngineURL = url
	}

	resolveSecrets(ctx, cfg)

	return cfg, nil
}

func loadYAMLConfig(cfg *Config) error {
	data, err := os.ReadFile(defaultConfigPath)
	if err != nil {
		slog.Warn("No config.yaml found, using defaults")
		return nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", defaultConfigPath, err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	applyEngineDefaults(cfg)
	applyStudioDefaults(cfg)
	applyCopywriterDefaults(cfg)
	applyArchiveDefaults(cfg)
	applyHistoryDefaults(cfg)
}

func applyEngineDefaults(cfg *Config) {
	if cfg.Engine.Addr == "" {
		cfg.Engine.Addr = defaultEngineAddr
	}
	if cfg.Engine.Variants <= 0 {
		cfg.Engine.Variants = defaultVariants
	}
	if cfg.Engine.ClickRate <= 0 || cfg.Engine.ClickRate > 1 {
		cfg.Engine.ClickRate = defaultClickRate
	}
	if cfg.Engine.SimulateRounds <= 0 {
		cfg.Engine.SimulateRounds = defaultSimulateRounds
	}
}

func applyStudioDefaults(cfg *Config) {
	if cfg.Studio.EngineURL == "" {
		cfg.Studio.EngineURL = defaultEngineURL
	}
}

func applyCopywriterDefaults(cfg *Config) {
	if cfg.Copywriter.Provider == "" {
		cfg.Copywriter.Provider = defaultProvider
	}
	if cfg.Copywriter.GroqModel == "" {
		cfg.Copywriter.GroqModel = defaultGroqModel
	}
	if cfg.Copywriter.OpenAIModel == "" {
		cfg.Copywriter.OpenAIModel = defaultOpenAIModel
	}
}

func applyArchiveDefaults(cfg *Config) {
	if cfg.Archive.Backend == "" {
		cfg.Archive.Backend = defaultArchiveBackend
	}
	if cfg.Archive.Dir == "" {
		cfg.Archive.Dir = defaultArchiveDir
	}
	if cfg.Archive.Prefix == "" {
		cfg.Archive.Prefix = defaultArchivePrefix
	}
}

func applyHistoryDefaults(cfg *Config) {
	if cfg.History.Path == "" {
		cfg.History.Path = defaultHistoryPath
	}
	if cfg.History.Limit <= 0 {
		cfg.History.Limit = defaultHistoryLimit
	}
}

// resolveSecrets fills missing API keys from GCP Secret Manager when a
// project is configured. Failures are not fatal: the stub provider works
// without any key.
func resolveSecrets(ctx context.Context, cfg *Config) {
	if cfg.GCPProject == "" {
		return
	}
	if cfg.GroqAPIKey != "" && cfg.OpenAIAPIKey != "" {
		return
	}

	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		slog.Warn("Secret Manager unavailable", "error", err)
		return
	}
	defer func() { _ = client.Close() }()

	if cfg.GroqAPIKey == "" {
		cfg.GroqAPIKey = accessSecret(ctx, client, cfg.GCPProject, groqSecretName)
	}
	if cfg.OpenAIAPIKey == "" {
		cfg.OpenAIAPIKey = accessSecret(ctx, client, cfg.GCPProject, openaiSecretName)
	}
}

func accessSecret(ctx context.Context, client *secretmanager.Client, project, name string) string {
	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", project, name),
	})
	if err != nil {
		slog.Debug("Secret not resolved", "secret", name, "error", err)
		return ""
	}
	return string(resp.GetPayload().GetData())
}
