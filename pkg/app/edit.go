package app

import (
	"context"
	"fmt"

	"tableflip.dev/ritual/pkg/item"
	"tableflip.dev/ritual/pkg/overlay"
	"tableflip.dev/ritual/pkg/store"
)

// Patch lists the fields an edit changes; nil fields keep their value.
type Patch struct {
	Text    *string
	Count   *int
	Source  *string
	Benefit *string
}

func (p Patch) applyOverride(o *item.Override) {
	if p.Text != nil {
		o.Text = *p.Text
	}
	if p.Count != nil {
		o.Count = *p.Count
	}
	if p.Source != nil {
		o.Source = *p.Source
	}
	if p.Benefit != nil {
		o.Benefit = *p.Benefit
	}
}

func (p Patch) applyCustom(c *item.Custom) {
	if p.Text != nil {
		c.Text = *p.Text
	}
	if p.Count != nil {
		c.Count = *p.Count
	}
	if p.Source != nil {
		c.Source = *p.Source
	}
	if p.Benefit != nil {
		c.Benefit = *p.Benefit
	}
}

// Edit changes an item. Catalog items get an override seeded from their
// current content; custom items are rewritten in place.
func (s *Service) Edit(ctx context.Context, id item.ID, patch Patch) (item.Effective, error) {
	if err := s.ready(); err != nil {
		return item.Effective{}, err
	}
	if def, ok := s.Overlay.Default(id); ok {
		snap, err := s.Overlay.Snapshot()
		if err != nil {
			return item.Effective{}, err
		}
		o, ok := snap.Overrides[id]
		if !ok {
			o = item.OverrideOf(def)
		}
		patch.applyOverride(&o)
		if err := s.Overlay.UpsertOverride(o); err != nil {
			return item.Effective{}, err
		}
		o.Category = def.Category
		return item.FromOverride(o), nil
	}

	customs, err := s.Overlay.CustomItems()
	if err != nil {
		return item.Effective{}, err
	}
	for _, c := range customs {
		if c.ID != id {
			continue
		}
		patch.applyCustom(&c)
		saved, err := s.Overlay.UpsertCustomItem(c)
		if err != nil {
			return item.Effective{}, err
		}
		return item.FromCustom(saved), nil
	}
	return item.Effective{}, fmt.Errorf("%w: item %d", store.ErrNotFound, id)
}

// Revert drops the user edit of a catalog item.
func (s *Service) Revert(ctx context.Context, id item.ID) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.Overlay.RevertOverride(id)
}

// Delete removes an item: catalog items are tombstoned, custom items are
// dropped. Unknown ids are ignored.
func (s *Service) Delete(ctx context.Context, id item.ID) error {
	if err := s.ready(); err != nil {
		return err
	}
	if _, ok := s.Overlay.Default(id); ok {
		return s.Overlay.DeleteDefault(id)
	}
	return s.Overlay.DeleteCustomItem(id)
}

// Restore brings back a deleted catalog item.
func (s *Service) Restore(ctx context.Context, id item.ID) error {
	if err := s.ready(); err != nil {
		return err
	}
	if _, ok := s.Overlay.Default(id); !ok {
		return fmt.Errorf("%w: %d is not a catalog item", store.ErrInvalidArgument, id)
	}
	return s.Overlay.RestoreDefault(id)
}

// AddCustom creates a user item in a category key. A custom category key
// files the item under that category.
func (s *Service) AddCustom(ctx context.Context, key string, text string, count int) (item.Effective, error) {
	if err := s.ready(); err != nil {
		return item.Effective{}, err
	}
	c := item.Custom{Text: text, Count: count}
	if ccID, ok := overlay.ParseCustomCategoryKey(key); ok {
		c.CustomCategoryID = ccID
	} else {
		c.Category = key
	}
	saved, err := s.Overlay.UpsertCustomItem(c)
	if err != nil {
		return item.Effective{}, err
	}
	return item.FromCustom(saved), nil
}

// AddCustomCategory creates a user-defined category.
func (s *Service) AddCustomCategory(ctx context.Context, title string) (item.CustomCategory, error) {
	if err := s.ready(); err != nil {
		return item.CustomCategory{}, err
	}
	return s.Overlay.UpsertCustomCategory(item.CustomCategory{Title: title})
}

// DeleteCustomCategory removes a user-defined category. With cascade, its
// items and its order list go first so nothing is left pointing at a category
// that no longer exists.
func (s *Service) DeleteCustomCategory(ctx context.Context, id item.ID, cascade bool) error {
	if err := s.ready(); err != nil {
		return err
	}
	if cascade {
		customs, err := s.Overlay.CustomItems()
		if err != nil {
			return err
		}
		for _, c := range customs {
			if c.CustomCategoryID != id {
				continue
			}
			if err := s.Overlay.DeleteCustomItem(c.ID); err != nil {
				return err
			}
		}
		if err := s.Overlay.ClearOrder(overlay.CustomCategoryKey(id)); err != nil {
			return err
		}
	}
	return s.Overlay.DeleteCustomCategory(id)
}
