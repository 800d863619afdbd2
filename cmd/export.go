package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"mspro-labs/shoe-scout/internal/config"
	"mspro-labs/shoe-scout/internal/db"
	"mspro-labs/shoe-scout/internal/locale"
	"mspro-labs/shoe-scout/internal/models"
)

var exportFile string

var exportCmd = &cobra.Command{
	Use:   "export RUN_ID",
	Short: "Write the spreadsheet of an archived run again",
	Long:  `Loads the products of an archived run (see "shoe-scout runs") and writes them to the output directory without touching the shop.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runExport(cmd, args[0]); err != nil {
			log.Fatalf("%v", err)
		}
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "file name to write (default: output_file from the site config)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, runID string) error {
	appCfg, err := config.GetAppConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	siteCfg, err := config.LoadSiteConfig(appCfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load site config: %w", err)
	}
	msgs, err := locale.Load(appCfg.LocalePath)
	if err != nil {
		return fmt.Errorf("failed to load messages: %w", err)
	}

	database, err := db.Connect(appCfg.DBPath)
	if err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	defer database.Close()

	if _, err := db.GetRun(database, runID); err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}
	records, err := db.GetRunProducts(database, runID)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}

	filename := exportFile
	if filename == "" {
		filename = siteCfg.OutputFile
	}
	path, err := saveProducts(cmd.OutOrStdout(), msgs, appCfg.OutputDir, filename, models.NewCollection(records))
	if err != nil || path == "" {
		return err
	}
	if err := db.SetRunFile(database, runID, path); err != nil {
		log.Printf("⚠️ Warning: could not record export path: %v", err)
	}
	return nil
}
