package cmd

import (
	"fmt"

	"adcraft/internal/archive"
	"adcraft/internal/engine"
	"adcraft/internal/history"
	"adcraft/pkg/config"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and engine status",
	Long:  `Check which copywriter provider is configured, whether the engine is reachable, and what has been archived.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println(titleStyle.Render("AdCraft Status"))

	switch cfg.Copywriter.Provider {
	case "groq":
		if cfg.GroqAPIKey != "" {
			fmt.Println(successStyle.Render("✓ Copywriter: groq (" + cfg.Copywriter.GroqModel + ")"))
		} else {
			fmt.Println(errorStyle.Render("✗ Copywriter: groq selected but GROQ_API_KEY is not set"))
		}
	case "openai":
		if cfg.OpenAIAPIKey != "" {
			fmt.Println(successStyle.Render("✓ Copywriter: openai (" + cfg.Copywriter.OpenAIModel + ")"))
		} else {
			fmt.Println(errorStyle.Render("✗ Copywriter: openai selected but OPENAI_API_KEY is not set"))
		}
	default:
		fmt.Println(infoStyle.Render("○ Copywriter: stub (no API key needed)"))
	}

	if cfg.Archive.Enabled {
		switch cfg.Archive.Backend {
		case "gcs":
			if cfg.GCSBucket != "" {
				fmt.Println(successStyle.Render("✓ Archive: gcs bucket " + cfg.GCSBucket))
			} else {
				fmt.Println(errorStyle.Render("✗ Archive: gcs selected but GCS_BUCKET is not set"))
			}
		default:
			store := archive.NewLocalStore(cfg.Archive.Dir)
			rounds, err := store.Recent(ctx, 0)
			if err != nil {
				fmt.Println(warnStyle.Render("✗ Archive: local dir " + cfg.Archive.Dir + " unreadable"))
			} else {
				fmt.Println(successStyle.Render(fmt.Sprintf("✓ Archive: %d round(s) in %s", len(rounds), cfg.Archive.Dir)))
			}
		}
	} else {
		fmt.Println(infoStyle.Render("○ Archive: disabled"))
	}

	journal := history.NewJournal[history.Record](cfg.History.Path, cfg.History.Limit)
	fmt.Println(infoStyle.Render(fmt.Sprintf("○ History: %d generation(s) recorded", journal.Len())))

	client := engine.NewClient(engine.ClientOptions{BaseURL: cfg.Studio.EngineURL})
	if err := client.Health(ctx); err != nil {
		fmt.Println(warnStyle.Render("✗ Engine: not reachable at " + cfg.Studio.EngineURL))
		fmt.Println(infoStyle.Render("  Start it with: adcraft serve"))
	} else {
		fmt.Println(successStyle.Render("✓ Engine: reachable at " + cfg.Studio.EngineURL))
	}

	fmt.Println()
	return nil
}
