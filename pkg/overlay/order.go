package overlay

import (
	"context"
	"fmt"
	"strings"

	"tableflip.dev/ritual/pkg/item"
	"tableflip.dev/ritual/pkg/store"
)

// SetOrder replaces the order list of a category key. The list may name only
// some of the category's items.
func (s *Store) SetOrder(categoryKey string, ids []item.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setOrderLocked(categoryKey, ids)
}

func (s *Store) setOrderLocked(categoryKey string, ids []item.ID) error {
	if strings.TrimSpace(categoryKey) == "" {
		return fmt.Errorf("%w: category key required", store.ErrInvalidArgument)
	}
	seen := make(map[item.ID]bool, len(ids))
	order := make([]item.ID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			order = append(order, id)
		}
	}
	if err := store.WriteJSON(s.p, store.OrderKey(categoryKey), order); err != nil {
		return err
	}
	delete(s.views, categoryKey)
	return nil
}

// Order returns the stored order list of a category key, nil if none.
func (s *Store) Order(categoryKey string) ([]item.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadOrder(categoryKey)
}

// ClearOrder forgets the custom order of a category key.
func (s *Store) ClearOrder(categoryKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(categoryKey) == "" {
		return fmt.Errorf("%w: category key required", store.ErrInvalidArgument)
	}
	if err := store.EraseRecord(s.p, store.OrderKey(categoryKey)); err != nil {
		return err
	}
	delete(s.views, categoryKey)
	return nil
}

// OrderedCategories lists the category keys that carry an order list.
func (s *Store) OrderedCategories(ctx context.Context) []string {
	var out []string
	for _, key := range s.p.Keys(ctx, store.PrefixOrder) {
		if name, ok := store.CategoryForOrderKey(key); ok {
			out = append(out, name)
		}
	}
	return out
}

// MoveAdjacent swaps id with its neighbour in the current view and persists
// the whole resulting sequence as the category's order list. Moving past
// either end, or moving an id not in the view, changes nothing.
func (s *Store) MoveAdjacent(categoryKey string, id item.ID, dir Direction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	view, err := s.effectiveLocked(categoryKey)
	if err != nil {
		return err
	}
	ids := IDs(view)
	from := -1
	for i, candidate := range ids {
		if candidate == id {
			from = i
			break
		}
	}
	if from < 0 {
		return nil
	}
	to := from - 1
	if dir == Down {
		to = from + 1
	}
	if to < 0 || to >= len(ids) {
		return nil
	}
	ids[from], ids[to] = ids[to], ids[from]
	return s.setOrderLocked(categoryKey, ids)
}

func (s *Store) loadOrder(categoryKey string) ([]item.ID, error) {
	if strings.TrimSpace(categoryKey) == "" {
		return nil, nil
	}
	var order []item.ID
	if _, err := store.ReadJSON(s.p, store.OrderKey(categoryKey), &order); err != nil {
		return nil, err
	}
	return order, nil
}
