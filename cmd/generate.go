package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"adcraft/internal/engine"
	"adcraft/internal/history"
	"adcraft/internal/studio"
	"adcraft/pkg/config"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var (
	generateProgram  string
	generateAudience string
	generateLocalize bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a single creative",
	Long:  `Generate one creative for a program and audience without the interactive studio.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateProgram, "program", "p", "", "Program name")
	generateCmd.Flags().StringVarP(&generateAudience, "audience", "a", "", "Target audience")
	generateCmd.Flags().BoolVarP(&generateLocalize, "localize", "l", false, "Localize for regional markets")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateProgram == "" || generateAudience == "" {
		return errors.New("please provide --program and --audience")
	}

	ctx := cmd.Context()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	client := engine.NewClient(engine.ClientOptions{
		BaseURL: cfg.Studio.EngineURL,
		Timeout: time.Duration(cfg.Studio.TimeoutSeconds) * time.Second,
	})

	req := engine.GenerateRequest{
		ProgramName:    generateProgram,
		TargetAudience: generateAudience,
		Localize:       generateLocalize,
	}

	var (
		res    *engine.GenerateResponse
		genErr error
	)
	_ = spinner.New().
		Title("Generating creative...").
		Action(func() { res, genErr = client.Generate(ctx, req) }).
		Run()
	if genErr != nil {
		return genErr
	}

	fmt.Println(studio.RenderResult(res))

	journal := history.NewJournal[history.Record](cfg.History.Path, cfg.History.Limit)
	if err := journal.Append(history.Record{
		Timestamp:        time.Now(),
		ProgramName:      generateProgram,
		TargetAudience:   generateAudience,
		Localized:        generateLocalize,
		AdCopy1:          res.AdCopy1,
		AdCopy2:          res.AdCopy2,
		CreativeBrief:    res.CreativeBrief,
		PerformanceScore: res.PerformanceScore,
	}); err != nil {
		slog.Warn("Failed to record history", "error", err)
	}

	return nil
}
