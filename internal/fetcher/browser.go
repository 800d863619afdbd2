package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
)

// Browser renders pages in a headless Chrome, for when the shop starts
// serving its catalog through JavaScript or bot checks.
type Browser struct {
	browser *rod.Browser
	timeout time.Duration
}

// NewBrowser launches a headless browser. A zero timeout means 90 seconds
// per page.
func NewBrowser(timeout time.Duration) (*Browser, error) {
	logger.Println("Launching headless browser...")
	u, err := launcher.New().Headless(true).NoSandbox(true).Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}
	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &Browser{browser: b, timeout: timeout}, nil
}

func (b *Browser) Fetch(ctx context.Context, url string) (html string, err error) {
	page, err := stealth.Page(b.browser)
	if err != nil {
		return "", fmt.Errorf("failed to open page: %w", err)
	}
	defer page.Close()

	err = rod.Try(func() {
		p := page.Context(ctx).Timeout(b.timeout)
		p.MustNavigate(url)
		p.MustWaitStable()
		html = p.MustHTML()
	})
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", url, err)
	}
	return html, nil
}

func (b *Browser) Close() error {
	return b.browser.Close()
}
