package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"

	"mspro-labs/shoe-scout/internal/config"
)

var logger = log.New(os.Stderr, "FETCHER: ", log.LstdFlags|log.Lshortfile)

// Fetcher returns the HTML of a page as UTF-8 text.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
	Close() error
}

// New builds the fetcher selected by cfg.Fetcher.
func New(cfg *config.SiteConfig) (Fetcher, error) {
	switch cfg.Fetcher {
	case "", "http":
		return NewHTTP(cfg.UserAgent, cfg.RequestTimeout), nil
	case "browser":
		return NewBrowser(cfg.RequestTimeout)
	default:
		return nil, fmt.Errorf("unknown fetcher %q", cfg.Fetcher)
	}
}

// HTTP fetches pages with plain GET requests.
type HTTP struct {
	client *resty.Client
}

// NewHTTP returns an HTTP fetcher. A zero timeout leaves the client default
// (no timeout) in place.
func NewHTTP(userAgent string, timeout time.Duration) *HTTP {
	client := resty.New()
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTP{client: client}
}

func (h *HTTP) Fetch(ctx context.Context, url string) (string, error) {
	res, err := h.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to GET %s: %w", url, err)
	}
	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		return "", fmt.Errorf("GET %s: unexpected status %s", url, res.Status())
	}

	// The shop may still serve windows-1251; normalize to UTF-8 for goquery.
	r, err := charset.NewReader(bytes.NewReader(res.Body()), res.Header().Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", url, err)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", url, err)
	}
	return string(body), nil
}

func (h *HTTP) Close() error {
	return nil
}
