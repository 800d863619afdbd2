package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-rod/rod/lib/launcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserFetchRendersScript(t *testing.T) {
	if _, ok := launcher.LookPath(); !ok {
		t.Skip("no Chrome or Chromium found")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><body><div id="price"></div>
<script>document.getElementById("price").textContent = "1 200 руб.";</script>
</body></html>`))
	}))
	defer srv.Close()

	b, err := NewBrowser(30 * time.Second)
	require.NoError(t, err)
	defer b.Close()

	html, err := b.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, html, `<div id="price">1 200 руб.</div>`)
}
