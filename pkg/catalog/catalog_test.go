package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/ritual/pkg/item"
)

func TestLoadDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ListItems())
	assert.Equal(t, []string{"morning", "evening", "sleep", "after-prayer"}, c.Categories())

	it, ok := c.Lookup(102)
	require.True(t, ok)
	assert.Equal(t, "evening", it.Category)
	assert.Equal(t, 3, it.Count)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := []byte("items:\n  - {id: 7, category: night, text: hello, count: 0}\n")
	require.NoError(t, os.WriteFile(path, doc, 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	items := c.ListItems()
	require.Len(t, items, 1)
	assert.Equal(t, item.ID(7), items[0].ID)
	assert.Equal(t, 1, items[0].Count, "non-positive counts default to one")
}

func TestNewRejectsBadItems(t *testing.T) {
	_, err := New(item.CatalogItem{ID: 1, Category: "a"}, item.CatalogItem{ID: 1, Category: "a"})
	assert.Error(t, err)

	_, err = New(item.CatalogItem{ID: 0, Category: "a"})
	assert.Error(t, err)

	_, err = New(item.CatalogItem{ID: 2, Category: " "})
	assert.Error(t, err)
}

func TestParseRejectsReservedCategoryPrefix(t *testing.T) {
	doc := []byte("items:\n  - {id: 1, category: \"custom:5\", text: a}\n  - {id: 2, category: \"custom:5\", text: b}\n")
	_, err := Parse(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved category prefix")

	_, err = New(item.CatalogItem{ID: 3, Category: " " + item.CustomCategoryPrefix + "x"})
	assert.Error(t, err, "prefix is checked after trimming")

	_, err = New(item.CatalogItem{ID: 4, Category: "customs"})
	assert.NoError(t, err)
}

func TestListItemsIsACopy(t *testing.T) {
	c := MustNew(item.CatalogItem{ID: 1, Category: "a", Text: "x", Count: 1})
	items := c.ListItems()
	items[0].Text = "mutated"
	assert.Equal(t, "x", c.ListItems()[0].Text)
}
