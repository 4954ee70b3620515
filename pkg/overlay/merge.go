// Package overlay reconciles the read-only catalog with the user's edits,
// deletions, custom items and custom ordering into one ordered view per
// category.
package overlay

import (
	"sort"
	"strings"

	"tableflip.dev/ritual/pkg/item"
)

// CustomCategoryKey is the category key addressing a user-defined category.
func CustomCategoryKey(id item.ID) string {
	return item.CustomCategoryPrefix + id.String()
}

// ParseCustomCategoryKey reports the custom category id behind key, if any.
func ParseCustomCategoryKey(key string) (item.ID, bool) {
	if !strings.HasPrefix(key, item.CustomCategoryPrefix) {
		return 0, false
	}
	id, err := item.ParseID(strings.TrimPrefix(key, item.CustomCategoryPrefix))
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// Overlays is a snapshot of every user edit layered over the catalog.
type Overlays struct {
	Overrides  map[item.ID]item.Override
	Custom     []item.Custom
	Tombstones map[item.ID]bool
}

// Merge projects the catalog and overlays into the ordered view for
// categoryKey.
//
// Catalog-derived items come first in catalog order, tombstoned ids dropped
// and overridden ids replaced by their override. Custom items follow in
// creation order. The result is then stably reordered by order: listed ids
// first in list order, unlisted ids after them in their original relative
// order.
func Merge(defaults []item.CatalogItem, ov Overlays, categoryKey string, order []item.ID) []item.Effective {
	customID, isCustomKey := ParseCustomCategoryKey(categoryKey)

	out := make([]item.Effective, 0)
	if !isCustomKey {
		for _, def := range defaults {
			if def.Category != categoryKey || ov.Tombstones[def.ID] {
				continue
			}
			if o, ok := ov.Overrides[def.ID]; ok {
				out = append(out, item.FromOverride(o))
				continue
			}
			out = append(out, item.FromCatalog(def))
		}
	}
	for _, c := range ov.Custom {
		if isCustomKey {
			if c.CustomCategoryID != customID {
				continue
			}
		} else if c.CustomCategoryID != 0 || c.Category != categoryKey {
			continue
		}
		out = append(out, item.FromCustom(c))
	}
	return applyOrder(out, order)
}

func applyOrder(items []item.Effective, order []item.ID) []item.Effective {
	if len(order) == 0 || len(items) < 2 {
		return items
	}
	rank := make(map[item.ID]int, len(order))
	for i, id := range order {
		if _, seen := rank[id]; !seen {
			rank[id] = i
		}
	}

	type ranked struct {
		it     item.Effective
		listed bool
		key    int
	}
	rs := make([]ranked, len(items))
	for i, it := range items {
		if idx, ok := rank[it.ID]; ok {
			rs[i] = ranked{it: it, listed: true, key: idx}
		} else {
			rs[i] = ranked{it: it, key: i}
		}
	}
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].listed != rs[j].listed {
			return rs[i].listed
		}
		return rs[i].key < rs[j].key
	})

	out := make([]item.Effective, len(rs))
	for i, r := range rs {
		out[i] = r.it
	}
	return out
}

// IDs returns the ids of items in order.
func IDs(items []item.Effective) []item.ID {
	ids := make([]item.ID, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
