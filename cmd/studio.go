package cmd

import (
	"time"

	"adcraft/internal/engine"
	"adcraft/internal/history"
	"adcraft/internal/studio"
	"adcraft/pkg/config"

	"github.com/spf13/cobra"
)

var studioCmd = &cobra.Command{
	Use:   "studio",
	Short: "Interactive creative studio",
	Long: `Open the interactive studio: enter a program name and target audience,
generate a creative through the engine, and review the result cards.`,
	RunE: runStudio,
}

func init() {
	rootCmd.AddCommand(studioCmd)
}

func runStudio(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	client := engine.NewClient(engine.ClientOptions{
		BaseURL: cfg.Studio.EngineURL,
		Timeout: time.Duration(cfg.Studio.TimeoutSeconds) * time.Second,
	})
	journal := history.NewJournal[history.Record](cfg.History.Path, cfg.History.Limit)

	return studio.NewRunner(client, journal).Run(ctx)
}
