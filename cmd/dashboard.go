package cmd

import (
	"fmt"
	"time"

	"adcraft/internal/engine"
	"adcraft/pkg/config"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var dashboardOpen bool

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the campaign dashboard",
	Long:  `Fetch the engine's campaign snapshot: brand, brief, creatives and bandit arms.`,
	RunE:  runDashboard,
}

func init() {
	dashboardCmd.Flags().BoolVarP(&dashboardOpen, "open", "o", false, "Open the dashboard endpoint in a browser")
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	if dashboardOpen {
		_ = browser.OpenURL(cfg.Studio.EngineURL + "/dashboard")
	}

	client := engine.NewClient(engine.ClientOptions{
		BaseURL: cfg.Studio.EngineURL,
		Timeout: time.Duration(cfg.Studio.TimeoutSeconds) * time.Second,
	})

	dash, err := client.Dashboard(ctx)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("📊 Campaign Dashboard"))

	if dash.Brand == nil {
		fmt.Println(warnStyle.Render("No campaign yet. Run a generation first."))
		return nil
	}

	fmt.Println(infoStyle.Render("Brand: ") + dash.Brand.Name)
	if dash.Brief != nil {
		fmt.Println(infoStyle.Render("Brief: ") + fmt.Sprintf("%s for %s", dash.Brief.Product, dash.Brief.Audience))
		fmt.Println(infoStyle.Render("Regions: ") + fmt.Sprintf("%v", dash.Brief.Regions))
	}
	fmt.Println()

	fmt.Println(infoStyle.Render(fmt.Sprintf("Creatives (%d):", len(dash.Creatives))))
	for _, c := range dash.Creatives {
		fmt.Printf("  %-10s %s\n", c.ID, c.Headline)
	}

	if len(dash.Localized) > 0 {
		fmt.Println()
		for region, creatives := range dash.Localized {
			fmt.Println(infoStyle.Render(fmt.Sprintf("Localized %s (%d):", region, len(creatives))))
			for _, c := range creatives {
				fmt.Printf("  %-13s %s\n", c.ID, c.Headline)
			}
		}
	}

	if len(dash.Bandit) > 0 {
		fmt.Println()
		fmt.Println(infoStyle.Render("Bandit arms:"))
		fmt.Printf("  %-6s %-13s %6s %7s %7s\n", "region", "creative", "imps", "clicks", "ctr")
		for _, arm := range dash.Bandit {
			fmt.Printf("  %-6s %-13s %6d %7d %7.4f\n", arm.Region, arm.CreativeID, arm.Impressions, arm.Clicks, arm.CTR)
		}
	}

	return nil
}
