package scraper

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"mspro-labs/shoe-scout/internal/config"
	"mspro-labs/shoe-scout/internal/locale"
	"mspro-labs/shoe-scout/internal/models"
)

var logger = log.New(os.Stderr, "SCRAPER: ", log.LstdFlags|log.Lshortfile)

// PageFetcher returns the HTML at url.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Scraper walks the search results of one query and collects a record per
// product card. Requests are issued one at a time.
type Scraper struct {
	cfg     *config.SiteConfig
	msgs    locale.Messages
	fetcher PageFetcher
	parser  *Parser
	out     io.Writer
}

// Result is the outcome of one run.
type Result struct {
	Products *models.Collection
	Pages    int // pages that returned at least one product
}

// New wires a scraper. Progress lines are written to out.
func New(cfg *config.SiteConfig, msgs locale.Messages, f PageFetcher, out io.Writer) (*Scraper, error) {
	parser, err := NewParser(cfg, msgs.NotSpecified, msgs.NotSpecifiedFeminine)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = io.Discard
	}
	return &Scraper{cfg: cfg, msgs: msgs, fetcher: f, parser: parser, out: out}, nil
}

// Run scrapes query starting at page 1. In single-page mode only the first
// page is read; otherwise paging continues until a page has no products,
// pausing cfg.PageDelay after every processed page.
func (s *Scraper) Run(ctx context.Context, query string, singlePage bool) (*Result, error) {
	res := &Result{Products: &models.Collection{}}

	for page := 1; ; page++ {
		pageURL := BuildSearchURL(s.cfg.BaseURL, s.cfg.SearchPath, query, page)
		logger.Printf("Fetching page %d: %s", page, pageURL)

		html, err := s.fetcher.Fetch(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch page %d: %w", page, err)
		}
		items, err := s.parser.ParseListing(html)
		if err != nil {
			return nil, fmt.Errorf("failed to parse page %d: %w", page, err)
		}
		if len(items) == 0 {
			logger.Printf("Page %d is empty, stopping.", page)
			break
		}

		fmt.Fprintf(s.out, s.msgs.PageInfo+"\n", page, len(items))

		for _, item := range items {
			rec, err := s.collect(ctx, item)
			if err != nil {
				return nil, err
			}
			res.Products.Append(rec)
		}
		res.Pages++

		if singlePage {
			break
		}
		if err := sleep(ctx, s.cfg.PageDelay); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// collect builds the record for one card, visiting its detail page if it has one.
func (s *Scraper) collect(ctx context.Context, item models.ProductSummary) (models.ProductRecord, error) {
	if item.DetailURL == "" {
		return models.NewRecord(item, models.EmptyDetail(s.msgs.NotSpecified)), nil
	}

	html, err := s.fetcher.Fetch(ctx, item.DetailURL)
	if err != nil {
		return models.ProductRecord{}, fmt.Errorf("failed to fetch product %s: %w", item.DetailURL, err)
	}
	detail, err := s.parser.ParseDetail(html)
	if err != nil {
		return models.ProductRecord{}, fmt.Errorf("failed to parse product %s: %w", item.DetailURL, err)
	}

	fmt.Fprintf(s.out, s.msgs.ProcessedProduct+"\n", item.Name)
	return models.NewRecord(item, detail), nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
