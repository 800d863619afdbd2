package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mspro-labs/shoe-scout/internal/config"
	"mspro-labs/shoe-scout/internal/db"
	"mspro-labs/shoe-scout/internal/fetcher"
	"mspro-labs/shoe-scout/internal/locale"
	"mspro-labs/shoe-scout/internal/models"
	"mspro-labs/shoe-scout/internal/scraper"
)

var (
	scrapeQuery      string
	scrapeSinglePage bool
	scrapeNoArchive  bool
)

// scrapeCmd represents the scrape command
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Search the shop and export the results",
	Long: `Asks for a search query (or takes --query), walks every results page until
one comes back empty, visits each product page, and writes the price-sorted
spreadsheet. The run is archived so it can be exported again later.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScrape(cmd); err != nil {
			log.Fatalf("%v", err)
		}
	},
}

func init() {
	scrapeCmd.Flags().StringVarP(&scrapeQuery, "query", "q", "", "search text (skips the interactive prompt)")
	scrapeCmd.Flags().BoolVar(&scrapeSinglePage, "single-page", false, "only read the first results page")
	scrapeCmd.Flags().BoolVar(&scrapeNoArchive, "no-archive", false, "do not record the run in the archive")
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	// 1. Load Config
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

	// 2. Query
	query := scrapeQuery
	if !cmd.Flags().Changed("query") {
		query, err = promptQuery(cmd.InOrStdin(), out, msgs.SearchPrompt)
		if err != nil {
			return fmt.Errorf("failed to read search query: %w", err)
		}
	}

	// 3. Run Scraper
	f, err := fetcher.New(siteCfg)
	if err != nil {
		return fmt.Errorf("failed to create fetcher: %w", err)
	}
	defer f.Close()

	s, err := scraper.New(siteCfg, msgs, f, out)
	if err != nil {
		return fmt.Errorf("failed to create scraper: %w", err)
	}

	started := time.Now()
	res, err := s.Run(cmd.Context(), query, scrapeSinglePage)
	if err != nil {
		return fmt.Errorf("scraping failed: %w", err)
	}

	// 4. Export
	path, err := saveProducts(out, msgs, appCfg.OutputDir, siteCfg.OutputFile, res.Products)
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}

	// 5. Archive (don't fail the run if the archive is unavailable)
	if scrapeNoArchive {
		return nil
	}
	archiveRun(appCfg.DBPath, models.Run{
		Query:      query,
		Pages:      res.Pages,
		FilePath:   path,
		StartedAt:  started,
		FinishedAt: time.Now(),
	}, res.Products)
	return nil
}

// promptQuery prints prompt and reads one line. A last line without a
// trailing newline is accepted.
func promptQuery(in io.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func archiveRun(dbPath string, run models.Run, products *models.Collection) {
	database, err := db.Connect(dbPath)
	if err != nil {
		log.Printf("⚠️ Warning: could not open run archive: %v", err)
		return
	}
	defer database.Close()

	id, err := db.SaveRun(database, run, products.Records())
	if err != nil {
		log.Printf("⚠️ Warning: could not archive run: %v", err)
		return
	}
	log.Printf("Run archived as %s", id)
}
