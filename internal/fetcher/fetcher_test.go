package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"mspro-labs/shoe-scout/internal/config"
)

func TestHTTPFetchDecodesCharset(t *testing.T) {
	encoded, err := charmap.Windows1251.NewEncoder().String("<p>Ботинки зимние</p>")
	require.NoError(t, err)

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=windows-1251")
		_, _ = w.Write([]byte(encoded))
	}))
	defer srv.Close()

	f := NewHTTP("shoe-scout-test", 0)
	body, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "<p>Ботинки зимние</p>", body)
	assert.Equal(t, "shoe-scout-test", gotUA)
	assert.NoError(t, f.Close())
}

func TestHTTPFetchUTF8(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<p>1 200 руб.</p>"))
	}))
	defer srv.Close()

	body, err := NewHTTP("", 0).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "<p>1 200 руб.</p>", body)
}

func TestHTTPFetchNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewHTTP("", 0).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestNewUnknownFetcher(t *testing.T) {
	cfg := config.DefaultSiteConfig()
	cfg.Fetcher = "ftp"
	_, err := New(cfg)
	require.Error(t, err)

	cfg.Fetcher = "http"
	f, err := New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &HTTP{}, f)
}
