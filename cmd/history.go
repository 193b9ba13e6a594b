package cmd

import (
	"fmt"
	"strconv"

	"adcraft/internal/history"
	"adcraft/pkg/config"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past studio generations",
	Long:  `List previous generations recorded by the studio, newest first.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Show at most n entries (0 shows all)")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete all recorded generations")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	journal := history.NewJournal[history.Record](cfg.History.Path, cfg.History.Limit)

	if historyClear {
		count := journal.Len()
		if err := journal.Clear(); err != nil {
			return err
		}
		fmt.Printf("Cleared %d generation(s) from history\n", count)
		return nil
	}

	records := journal.Recent(historyLimit)
	if len(records) == 0 {
		fmt.Println(infoStyle.Render("No generations recorded yet. Run the studio first."))
		return nil
	}

	for _, rec := range records {
		fmt.Println(titleStyle.Render(rec.Timestamp.Format("2006-01-02 15:04") + "  " + rec.ProgramName))
		fmt.Printf("  audience:  %s\n", rec.TargetAudience)
		fmt.Printf("  localized: %t\n", rec.Localized)
		fmt.Printf("  ad copy:   %s\n", rec.AdCopy1)
		fmt.Printf("  score:     %s%%\n", strconv.FormatFloat(rec.PerformanceScore, 'f', -1, 64))
		fmt.Println()
	}
	return nil
}
