package locale

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed ru.yaml
var defaultTable []byte

// Messages holds every user-facing string and column header.
type Messages struct {
	SearchPrompt         string  `yaml:"search_prompt"`
	NotSpecified         string  `yaml:"not_specified"`
	NotSpecifiedFeminine string  `yaml:"not_specified_feminine"`
	PageInfo             string  `yaml:"page_info"`
	ProcessedProduct     string  `yaml:"processed_product"`
	FileSaved            string  `yaml:"file_saved"`
	TotalProducts        string  `yaml:"total_products"`
	NoProducts           string  `yaml:"no_products"`
	Columns              Columns `yaml:"columns"`
}

// Columns are the spreadsheet headers, in export order.
type Columns struct {
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Sizes    string `yaml:"sizes"`
	Material string `yaml:"material"`
	Article  string `yaml:"article"`
	Type     string `yaml:"type"`
	Season   string `yaml:"season"`
	Color    string `yaml:"color"`
	Country  string `yaml:"country"`
}

// Headers returns the column titles in export order.
func (c Columns) Headers() []string {
	return []string{c.Name, c.Price, c.Sizes, c.Material, c.Article, c.Type, c.Season, c.Color, c.Country}
}

// Default returns the embedded Russian table.
func Default() Messages {
	var m Messages
	if err := yaml.Unmarshal(defaultTable, &m); err != nil {
		panic(fmt.Sprintf("locale: embedded table is invalid: %v", err))
	}
	return m
}

// Load reads a YAML table from path over the defaults. Keys missing from the
// file keep their default value. An empty path returns the defaults.
func Load(path string) (Messages, error) {
	m := Default()
	if path == "" {
		return m, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("failed to read locale file at '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("failed to parse locale YAML: %w", err)
	}
	return m, nil
}
