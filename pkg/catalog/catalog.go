// Package catalog provides the read-only default items every overlay view
// starts from.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tableflip.dev/ritual/pkg/item"
)

// Catalog lists the canonical items. Implementations must return the same
// items, in the same order, for the life of the process.
type Catalog interface {
	ListItems() []item.CatalogItem
}

//go:embed default.yaml
var defaultCatalog []byte

// Static is an in-memory Catalog loaded once.
type Static struct {
	items []item.CatalogItem
	byID  map[item.ID]item.CatalogItem
}

var _ Catalog = (*Static)(nil)

type document struct {
	Items []item.CatalogItem `yaml:"items"`
}

// New builds a Static catalog from items, validating ids.
func New(items ...item.CatalogItem) (*Static, error) {
	s := &Static{
		items: make([]item.CatalogItem, 0, len(items)),
		byID:  make(map[item.ID]item.CatalogItem, len(items)),
	}
	for _, it := range items {
		if it.ID <= 0 {
			return nil, fmt.Errorf("catalog: item %q has non-positive id %d", it.Text, it.ID)
		}
		if _, dup := s.byID[it.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate id %d", it.ID)
		}
		it.Category = strings.TrimSpace(it.Category)
		if it.Category == "" {
			return nil, fmt.Errorf("catalog: item %d has no category", it.ID)
		}
		if strings.HasPrefix(it.Category, item.CustomCategoryPrefix) {
			return nil, fmt.Errorf("catalog: item %d uses reserved category prefix %q", it.ID, item.CustomCategoryPrefix)
		}
		if it.Count < 1 {
			it.Count = 1
		}
		s.items = append(s.items, it)
		s.byID[it.ID] = it
	}
	return s, nil
}

// MustNew is New for tests and fixed data; it panics on error.
func MustNew(items ...item.CatalogItem) *Static {
	s, err := New(items...)
	if err != nil {
		panic(err)
	}
	return s
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Static, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	return New(doc.Items...)
}

// Load reads the catalog at path, or the built-in catalog when path is empty.
func Load(path string) (*Static, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return Parse(data)
}

// ListItems returns a copy of the items in catalog order.
func (s *Static) ListItems() []item.CatalogItem {
	out := make([]item.CatalogItem, len(s.items))
	copy(out, s.items)
	return out
}

// Lookup finds a catalog item by id.
func (s *Static) Lookup(id item.ID) (item.CatalogItem, bool) {
	it, ok := s.byID[id]
	return it, ok
}

// Categories returns the distinct categories in first-seen order.
func (s *Static) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range s.items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}
