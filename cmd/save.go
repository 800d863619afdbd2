package cmd

import (
	"fmt"
	"io"

	"mspro-labs/shoe-scout/internal/exporter"
	"mspro-labs/shoe-scout/internal/locale"
	"mspro-labs/shoe-scout/internal/models"
)

// saveProducts writes products to dir/filename and reports the result on out.
// An empty collection writes nothing and returns an empty path.
func saveProducts(out io.Writer, msgs locale.Messages, dir, filename string, products *models.Collection) (string, error) {
	if products.Len() == 0 {
		fmt.Fprintln(out, msgs.NoProducts)
		return "", nil
	}

	path, err := exporter.Write(dir, filename, msgs.Columns.Headers(), products)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}
	fmt.Fprintf(out, msgs.FileSaved+"\n", path)
	fmt.Fprintf(out, msgs.TotalProducts+"\n", products.Len())
	return path, nil
}
