package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mspro-labs/shoe-scout/internal/locale"
	"mspro-labs/shoe-scout/internal/models"
)

func TestSaveProductsEmptyCollection(t *testing.T) {
	msgs := locale.Default()
	dir := filepath.Join(t.TempDir(), "Downloads")

	var out bytes.Buffer
	path, err := saveProducts(&out, msgs, dir, "обувь_товары.xlsx", &models.Collection{})
	require.NoError(t, err)

	assert.Empty(t, path)
	assert.Equal(t, msgs.NoProducts+"\n", out.String())
	assert.NoDirExists(t, dir)
}

func TestSaveProductsWritesFile(t *testing.T) {
	msgs := locale.Default()
	dir := t.TempDir()
	products := models.NewCollection([]models.ProductRecord{
		models.NewRecord(models.ProductSummary{Name: "Кеды", Price: "990"}, models.EmptyDetail(msgs.NotSpecified)),
		models.NewRecord(models.ProductSummary{Name: "Сапоги", Price: "4 500"}, models.EmptyDetail(msgs.NotSpecified)),
	})

	var out bytes.Buffer
	path, err := saveProducts(&out, msgs, dir, "обувь_товары.xlsx", products)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "обувь_товары.xlsx"), path)
	assert.FileExists(t, path)
	assert.Equal(t, "Файл сохранён: "+path+"\nВсего товаров: 2\n", out.String())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
