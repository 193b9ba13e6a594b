package cmd

import (
	"fmt"
	"time"

	"adcraft/internal/engine"
	"adcraft/pkg/config"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var (
	simulateRegion string
	simulateRounds int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate ad traffic against a region",
	Long: `Run simulated serve-and-click traffic through the bandit for one region,
then show the updated arm statistics.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&simulateRegion, "region", "r", "IN", "Region to simulate traffic for")
	simulateCmd.Flags().IntVarP(&simulateRounds, "rounds", "n", 0, "Number of impressions (0 uses the engine default)")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	client := engine.NewClient(engine.ClientOptions{
		BaseURL: cfg.Studio.EngineURL,
		Timeout: time.Duration(cfg.Studio.TimeoutSeconds) * time.Second,
	})

	var (
		events int
		simErr error
	)
	_ = spinner.New().
		Title(fmt.Sprintf("Simulating traffic for %s...", simulateRegion)).
		Action(func() { events, simErr = client.Simulate(ctx, simulateRegion, simulateRounds) }).
		Run()
	if simErr != nil {
		return simErr
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("✓ Recorded %d impressions for %s", events, simulateRegion)))

	dash, err := client.Dashboard(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("  %-13s %6s %7s %7s\n", "creative", "imps", "clicks", "ctr")
	for _, arm := range dash.Bandit {
		if arm.Region != simulateRegion {
			continue
		}
		fmt.Printf("  %-13s %6d %7d %7.4f\n", arm.CreativeID, arm.Impressions, arm.Clicks, arm.CTR)
	}

	return nil
}
