package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSite []byte

// AppConfig holds infrastructure config from standard env vars
type AppConfig struct {
	DBPath     string
	ConfigPath string // optional YAML overlay for the site config
	OutputDir  string
	LocalePath string
}

// SiteConfig holds all target-site specific settings (from YAML)
type SiteConfig struct {
	BaseURL        string        `yaml:"base_url"`
	SearchPath     string        `yaml:"search_path"`
	Fetcher        string        `yaml:"fetcher"` // "http" or "browser"
	UserAgent      string        `yaml:"user_agent"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	PageDelay      time.Duration `yaml:"page_delay"`
	CurrencySuffix string        `yaml:"currency_suffix"`
	ShoeTypeLabel  string        `yaml:"shoe_type_label"`
	OutputFile     string        `yaml:"output_file"`
	Selectors      Selectors     `yaml:"selectors"`
}

type Selectors struct {
	ProductCard string          `yaml:"product_card"`
	Name        string          `yaml:"name"`
	Price       string          `yaml:"price"`
	Link        string          `yaml:"link"`
	Detail      DetailSelectors `yaml:"detail"`
}

type DetailSelectors struct {
	ParamBlock string `yaml:"param_block"`
	ParamTitle string `yaml:"param_title"`
	ParamBody  string `yaml:"param_body"`
	Article    string `yaml:"article"`
	Color      string `yaml:"color"`
	Country    string `yaml:"country"`
	Season     string `yaml:"season"`
	Material   string `yaml:"material"`
	Size       string `yaml:"size"`
}

// GetAppConfig reads basic infrastructure settings from environment variables.
// A .env file in the working directory is loaded first if present.
func GetAppConfig() (AppConfig, error) {
	_ = godotenv.Load()

	cfg := AppConfig{
		DBPath:     os.Getenv("DB_PATH"),
		ConfigPath: os.Getenv("CONFIG_PATH"),
		OutputDir:  os.Getenv("OUTPUT_DIR"),
		LocalePath: os.Getenv("LOCALE_PATH"),
	}

	if cfg.DBPath == "" {
		cfg.DBPath = "./local-data/shoes.db"
	}
	if cfg.OutputDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		cfg.OutputDir = filepath.Join(home, "Downloads")
	}

	return cfg, nil
}

// DefaultSiteConfig returns the embedded settings for obuv-tut2000.ru.
func DefaultSiteConfig() *SiteConfig {
	var cfg SiteConfig
	if err := yaml.Unmarshal(defaultSite, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded site config is invalid: %v", err))
	}
	return &cfg
}

// LoadSiteConfig reads the YAML file at path over the embedded defaults.
// An empty path returns the defaults unchanged.
func LoadSiteConfig(path string) (*SiteConfig, error) {
	cfg := DefaultSiteConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file at '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if cfg.Fetcher != "http" && cfg.Fetcher != "browser" {
		return nil, fmt.Errorf("unknown fetcher %q (want http or browser)", cfg.Fetcher)
	}
	return cfg, nil
}
