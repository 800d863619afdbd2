package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSiteConfig(t *testing.T) {
	cfg := DefaultSiteConfig()

	assert.Equal(t, "https://obuv-tut2000.ru", cfg.BaseURL)
	assert.Equal(t, "/magazin/search", cfg.SearchPath)
	assert.Equal(t, "http", cfg.Fetcher)
	assert.Equal(t, time.Second, cfg.PageDelay)
	assert.Zero(t, cfg.RequestTimeout)
	assert.Equal(t, "руб.", cfg.CurrencySuffix)
	assert.Equal(t, "обувь_товары.xlsx", cfg.OutputFile)
	assert.Equal(t, "form.shop2-product-item.product-item", cfg.Selectors.ProductCard)
	assert.Equal(t, "div.option-item.razmery_v_korobke.even", cfg.Selectors.Detail.Size)
}

func TestLoadSiteConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	overlay := `
page_delay: 250ms
fetcher: browser
selectors:
  price: "span.price"
`
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o644))

	cfg, err := LoadSiteConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.PageDelay)
	assert.Equal(t, "browser", cfg.Fetcher)
	assert.Equal(t, "span.price", cfg.Selectors.Price)
	// Untouched keys keep their defaults.
	assert.Equal(t, "div.gr-product-name", cfg.Selectors.Name)
	assert.Equal(t, "div.param-item", cfg.Selectors.Detail.ParamBlock)
	assert.Equal(t, "https://obuv-tut2000.ru", cfg.BaseURL)
}

func TestLoadSiteConfigErrors(t *testing.T) {
	_, err := LoadSiteConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fetcher: carrier-pigeon\n"), 0o644))
	_, err = LoadSiteConfig(path)
	require.ErrorContains(t, err, "unknown fetcher")
}

func TestLoadSiteConfigEmptyPath(t *testing.T) {
	cfg, err := LoadSiteConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSiteConfig(), cfg)
}

func TestGetAppConfig(t *testing.T) {
	t.Setenv("DB_PATH", "")
	t.Setenv("CONFIG_PATH", "site.yaml")
	t.Setenv("OUTPUT_DIR", "/tmp/out")
	t.Setenv("LOCALE_PATH", "")

	cfg, err := GetAppConfig()
	require.NoError(t, err)

	assert.Equal(t, "./local-data/shoes.db", cfg.DBPath)
	assert.Equal(t, "site.yaml", cfg.ConfigPath)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Empty(t, cfg.LocalePath)
}

func TestGetAppConfigDefaultOutputDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("OUTPUT_DIR", "")

	cfg, err := GetAppConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Downloads"), cfg.OutputDir)
}
