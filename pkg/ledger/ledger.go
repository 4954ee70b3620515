// Package ledger keeps the small user lists around the items: favorites,
// pinned shortcuts and recently viewed screens.
package ledger

import (
	"sort"

	"tableflip.dev/ritual/pkg/item"
	"tableflip.dev/ritual/pkg/store"
)

// Entry is a pinned shortcut or a recently viewed screen.
type Entry struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

// Ledger persists favorites, pins and recents as three records.
type Ledger struct {
	p         store.Persistence
	recentCap int
}

// New builds a Ledger over p. recentCap bounds the recents list; values
// below one use store.DefaultRecentCap.
func New(p store.Persistence, recentCap int) *Ledger {
	if recentCap < 1 {
		recentCap = store.DefaultRecentCap
	}
	return &Ledger{p: p, recentCap: recentCap}
}

// ToggleFavorite adds id to the favorites, or removes it if present, and
// returns the resulting set in ascending order.
func (l *Ledger) ToggleFavorite(id item.ID) ([]item.ID, error) {
	favs, err := l.Favorites()
	if err != nil {
		return nil, err
	}
	out := favs[:0]
	found := false
	for _, f := range favs {
		if f == id {
			found = true
			continue
		}
		out = append(out, f)
	}
	if !found {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	if err := store.WriteJSON(l.p, store.KeyFavorites, out); err != nil {
		return nil, err
	}
	return out, nil
}

// IsFavorite reports whether id is a favorite.
func (l *Ledger) IsFavorite(id item.ID) (bool, error) {
	favs, err := l.Favorites()
	if err != nil {
		return false, err
	}
	for _, f := range favs {
		if f == id {
			return true, nil
		}
	}
	return false, nil
}

// Favorites returns the favorite ids in ascending order.
func (l *Ledger) Favorites() ([]item.ID, error) {
	var favs []item.ID
	if _, err := store.ReadJSON(l.p, store.KeyFavorites, &favs); err != nil {
		return nil, err
	}
	return favs, nil
}

// TogglePin pins e, or unpins the entry with the same id, and returns the
// resulting list. New pins go last.
func (l *Ledger) TogglePin(e Entry) ([]Entry, error) {
	pins, err := l.Pinned()
	if err != nil {
		return nil, err
	}
	out, removed := without(pins, e.ID)
	if !removed {
		out = append(out, e)
	}
	if err := store.WriteJSON(l.p, store.KeyPinned, out); err != nil {
		return nil, err
	}
	return out, nil
}

// IsPinned reports whether an entry with id is pinned.
func (l *Ledger) IsPinned(id string) (bool, error) {
	pins, err := l.Pinned()
	if err != nil {
		return false, err
	}
	for _, p := range pins {
		if p.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// Pinned returns the pinned entries.
func (l *Ledger) Pinned() ([]Entry, error) {
	var pins []Entry
	if _, err := store.ReadJSON(l.p, store.KeyPinned, &pins); err != nil {
		return nil, err
	}
	return pins, nil
}

// AddRecent puts e at the front of the recents, dropping any older entry with
// the same id and anything past the cap.
func (l *Ledger) AddRecent(e Entry) error {
	recent, err := l.Recent()
	if err != nil {
		return err
	}
	rest, _ := without(recent, e.ID)
	out := append([]Entry{e}, rest...)
	if len(out) > l.recentCap {
		out = out[:l.recentCap]
	}
	return store.WriteJSON(l.p, store.KeyRecent, out)
}

// Recent returns the recents, most recent first.
func (l *Ledger) Recent() ([]Entry, error) {
	var recent []Entry
	if _, err := store.ReadJSON(l.p, store.KeyRecent, &recent); err != nil {
		return nil, err
	}
	return recent, nil
}

func without(entries []Entry, id string) ([]Entry, bool) {
	out := make([]Entry, 0, len(entries))
	removed := false
	for _, e := range entries {
		if e.ID == id {
			removed = true
			continue
		}
		out = append(out, e)
	}
	return out, removed
}
