package scraper

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildSearchURL returns the listing URL for one page of a smart search.
// Pages are numbered from 1.
func BuildSearchURL(baseURL, searchPath, query string, page int) string {
	escaped := strings.ReplaceAll(url.QueryEscape(query), "+", "%20")
	return fmt.Sprintf("%s%s?p=%d&gr_smart_search=1&search_text=%s",
		strings.TrimRight(baseURL, "/"), searchPath, page, escaped)
}
