package models

import "time"

// ProductSummary holds what a search results card exposes for a product.
type ProductSummary struct {
	Name      string
	Price     string
	DetailURL string // empty when the card has no link
}

// ProductDetail holds the attributes scraped from a product page.
type ProductDetail struct {
	ShoeType string
	Article  string
	Color    string
	Country  string
	Season   string
	Material string
	Size     string
}

// EmptyDetail returns a detail with every field set to the sentinel.
func EmptyDetail(sentinel string) ProductDetail {
	return ProductDetail{
		ShoeType: sentinel,
		Article:  sentinel,
		Color:    sentinel,
		Country:  sentinel,
		Season:   sentinel,
		Material: sentinel,
		Size:     sentinel,
	}
}

// ProductRecord is one exported row.
type ProductRecord struct {
	ProductSummary
	ProductDetail
}

// NewRecord merges a summary with its detail.
func NewRecord(s ProductSummary, d ProductDetail) ProductRecord {
	return ProductRecord{ProductSummary: s, ProductDetail: d}
}

// Collection is the ordered result of one scrape run.
type Collection struct {
	records []ProductRecord
}

// Append adds a record to the end of the collection.
func (c *Collection) Append(r ProductRecord) {
	c.records = append(c.records, r)
}

// Len returns the number of records.
func (c *Collection) Len() int {
	return len(c.records)
}

// Records returns a copy of the records in insertion order.
func (c *Collection) Records() []ProductRecord {
	out := make([]ProductRecord, len(c.records))
	copy(out, c.records)
	return out
}

// NewCollection wraps already-built records, e.g. rows loaded from the archive.
func NewCollection(records []ProductRecord) *Collection {
	c := &Collection{}
	for _, r := range records {
		c.Append(r)
	}
	return c
}

// Run describes one archived scrape.
type Run struct {
	ID           string
	Query        string
	Pages        int
	ProductCount int
	FilePath     string
	StartedAt    time.Time
	FinishedAt   time.Time
}
