package scraper

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"mspro-labs/shoe-scout/internal/config"
	"mspro-labs/shoe-scout/internal/models"
)

// Parser extracts listing cards and product attributes from raw HTML.
type Parser struct {
	cfg  *config.SiteConfig
	base *url.URL

	notSpecified         string
	notSpecifiedFeminine string
}

// NewParser prepares a parser for the site in cfg. The sentinels replace any
// field whose region is missing from the page.
func NewParser(cfg *config.SiteConfig, notSpecified, notSpecifiedFeminine string) (*Parser, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}
	return &Parser{
		cfg:                  cfg,
		base:                 base,
		notSpecified:         notSpecified,
		notSpecifiedFeminine: notSpecifiedFeminine,
	}, nil
}

// ParseListing returns the product cards of one search results page in
// document order. An empty result means the search has no more pages.
func (p *Parser) ParseListing(html string) ([]models.ProductSummary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	sel := p.cfg.Selectors
	var items []models.ProductSummary

	doc.Find(sel.ProductCard).Each(func(_ int, s *goquery.Selection) {
		item := models.ProductSummary{
			Name:  p.notSpecified,
			Price: p.notSpecifiedFeminine,
		}

		if name := s.Find(sel.Name).First(); name.Length() > 0 {
			item.Name = nodeText(name, " ")
		}
		if price := s.Find(sel.Price).First(); price.Length() > 0 {
			item.Price = p.cleanPrice(nodeText(price, " "))
		}
		if href, ok := s.Find(sel.Link).First().Attr("href"); ok {
			item.DetailURL = p.resolve(href)
		}

		items = append(items, item)
	})

	return items, nil
}

// ParseDetail reads the product attributes from a detail page. Absent
// regions yield the sentinel and are never an error.
func (p *Parser) ParseDetail(html string) (models.ProductDetail, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return models.ProductDetail{}, err
	}

	sel := p.cfg.Selectors.Detail
	return models.ProductDetail{
		ShoeType: p.shoeType(doc),
		Article:  p.region(doc, sel.Article),
		Color:    p.region(doc, sel.Color),
		Country:  p.region(doc, sel.Country),
		Season:   p.region(doc, sel.Season),
		Material: p.region(doc, sel.Material),
		Size:     p.region(doc, sel.Size),
	}, nil
}

// shoeType scans the parameter blocks in order and stops at the first one
// whose title contains the label, even if that block has no body.
func (p *Parser) shoeType(doc *goquery.Document) string {
	sel := p.cfg.Selectors.Detail
	label := strings.ToLower(p.cfg.ShoeTypeLabel)

	blocks := doc.Find(sel.ParamBlock)
	for i := 0; i < blocks.Length(); i++ {
		block := blocks.Eq(i)
		title := block.Find(sel.ParamTitle).First()
		if title.Length() == 0 {
			continue
		}
		if !strings.Contains(strings.ToLower(nodeText(title, "")), label) {
			continue
		}
		if body := block.Find(sel.ParamBody).First(); body.Length() > 0 {
			return nodeText(body, "")
		}
		return p.notSpecified
	}
	return p.notSpecified
}

func (p *Parser) region(doc *goquery.Document, selector string) string {
	if selector == "" {
		return p.notSpecified
	}
	s := doc.Find(selector).First()
	if s.Length() == 0 {
		return p.notSpecified
	}
	return nodeText(s, " ")
}

func (p *Parser) cleanPrice(raw string) string {
	if p.cfg.CurrencySuffix != "" {
		raw = strings.ReplaceAll(raw, p.cfg.CurrencySuffix, "")
	}
	return strings.TrimSpace(raw)
}

func (p *Parser) resolve(href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		logger.Printf("Skipping malformed product link %q: %v", href, err)
		return ""
	}
	return p.base.ResolveReference(ref).String()
}
