package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shoe-scout",
	Short: "Search obuv-tut2000.ru and export the shoes it finds to a spreadsheet",
	Long: `shoe-scout runs a smart search on the shop, visits every product page in the
results, and saves name, price, sizes, material, article, shoe type, season,
color and country into a price-sorted .xlsx file in your Downloads folder.

Environment:
  OUTPUT_DIR   where spreadsheets are written (default ~/Downloads)
  CONFIG_PATH  YAML overlay for site settings and selectors
  LOCALE_PATH  YAML overlay for messages and column headers
  DB_PATH      run archive (default ./local-data/shoes.db)`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
