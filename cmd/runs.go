package cmd

import (
	"log"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"mspro-labs/shoe-scout/internal/config"
	"mspro-labs/shoe-scout/internal/db"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List archived scrape runs",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		appCfg, err := config.GetAppConfig()
		if err != nil {
			log.Fatalf("Config error: %v", err)
		}
		database, err := db.Connect(appCfg.DBPath)
		if err != nil {
			log.Fatalf("Database error: %v", err)
		}
		defer database.Close()

		runs, err := db.ListRuns(database)
		if err != nil {
			log.Fatalf("Failed to list runs: %v", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"ID", "Query", "Pages", "Products", "Finished", "File"})
		for _, r := range runs {
			t.AppendRow(table.Row{
				r.ID, r.Query, r.Pages, r.ProductCount,
				r.FinishedAt.Local().Format("2006-01-02 15:04"), r.FilePath,
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
}
