package exporter

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/xuri/excelize/v2"

	"mspro-labs/shoe-scout/internal/models"
)

var logger = log.New(os.Stderr, "EXPORTER: ", log.LstdFlags|log.Lshortfile)

// PriceKey converts a scraped price such as "1 200" into a sort key.
// Empty or non-numeric prices map to zero, so they sort first.
func PriceKey(price string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, price)

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Sort returns the records ordered by ascending price key. Records with
// equal keys keep their original order.
func Sort(records []models.ProductRecord) []models.ProductRecord {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b models.ProductRecord) int {
		ka, kb := PriceKey(a.Price), PriceKey(b.Price)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		}
		return 0
	})
	return sorted
}

// Rows renders records as spreadsheet rows, in column order: name, price,
// sizes, upper material, article, shoe type, season, color, country.
func Rows(records []models.ProductRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Name, r.Price, r.Size, r.Material, r.Article,
			r.ShoeType, r.Season, r.Color, r.Country,
		})
	}
	return rows
}

// Write sorts the collection by price and saves it as an .xlsx file named
// filename inside dir. It returns the full path of the written file.
func Write(dir, filename string, headers []string, products *models.Collection) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, filename)

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	rows := append([][]string{headers}, Rows(Sort(products.Records()))...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return "", err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return "", fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", path, err)
	}
	logger.Printf("Wrote %d rows to %s", len(rows)-1, path)
	return path, nil
}
