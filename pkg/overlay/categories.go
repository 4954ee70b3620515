package overlay

import (
	"fmt"
	"strings"

	"tableflip.dev/ritual/pkg/item"
	"tableflip.dev/ritual/pkg/store"
)

// CustomCategories lists the user-defined categories in creation order.
func (s *Store) CustomCategories() ([]item.CustomCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadCategories()
}

// UpsertCustomCategory creates or renames a user-defined category. A zero id
// allocates a new one.
func (s *Store) UpsertCustomCategory(cc item.CustomCategory) (item.CustomCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cc.Title = strings.TrimSpace(cc.Title)
	if cc.Title == "" {
		return cc, fmt.Errorf("%w: title required", store.ErrInvalidArgument)
	}
	cats, err := s.loadCategories()
	if err != nil {
		return cc, err
	}
	if cc.ID == 0 {
		cc.ID = item.ID(s.now().UnixMilli())
		for _, c := range cats {
			if c.ID >= cc.ID {
				cc.ID = c.ID + 1
			}
		}
		cats = append(cats, cc)
	} else {
		replaced := false
		for i := range cats {
			if cats[i].ID == cc.ID {
				cats[i] = cc
				replaced = true
				break
			}
		}
		if !replaced {
			cats = append(cats, cc)
		}
	}
	if err := store.WriteJSON(s.p, store.KeyCustomCategories, cats); err != nil {
		return cc, err
	}
	return cc, nil
}

// DeleteCustomCategory removes a user-defined category. Its items and order
// list are left alone; callers cascade explicitly.
func (s *Store) DeleteCustomCategory(id item.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cats, err := s.loadCategories()
	if err != nil {
		return err
	}
	kept := cats[:0]
	for _, c := range cats {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(cats) {
		return nil
	}
	return store.WriteJSON(s.p, store.KeyCustomCategories, kept)
}

func (s *Store) loadCategories() ([]item.CustomCategory, error) {
	var cats []item.CustomCategory
	if _, err := store.ReadJSON(s.p, store.KeyCustomCategories, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}
