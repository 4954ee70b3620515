package overlay

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"tableflip.dev/ritual/pkg/catalog"
	"tableflip.dev/ritual/pkg/item"
	"tableflip.dev/ritual/pkg/store"
)

// Direction moves an item one slot within its category.
type Direction int

const (
	// Up moves an item towards the start of the sequence.
	Up Direction = iota
	// Down moves an item towards the end of the sequence.
	Down
)

// ParseDirection accepts "up" or "down".
func ParseDirection(raw string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return Up, fmt.Errorf("%w: direction %q", store.ErrInvalidArgument, raw)
}

// Store owns the overlay collections. Every collection is its own record, so
// a failed write leaves the others and the previous value intact.
type Store struct {
	p          store.Persistence
	defaults   []item.CatalogItem
	byID       map[item.ID]item.CatalogItem
	maxDefault item.ID
	now        func() time.Time

	mu    sync.Mutex
	views map[string][]item.Effective
}

// Option customises a Store.
type Option func(*Store)

// WithClock sets the clock custom ids are derived from.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New builds a Store over the catalog, read once, and p.
func New(c catalog.Catalog, p store.Persistence, opts ...Option) *Store {
	s := &Store{
		p:     p,
		byID:  make(map[item.ID]item.CatalogItem),
		now:   time.Now,
		views: make(map[string][]item.Effective),
	}
	if c != nil {
		s.defaults = c.ListItems()
	}
	for _, def := range s.defaults {
		s.byID[def.ID] = def
		if def.ID > s.maxDefault {
			s.maxDefault = def.ID
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EffectiveItems returns the merged, ordered view of a category key. Calls
// without an intervening mutation return identical sequences.
func (s *Store) EffectiveItems(categoryKey string) ([]item.Effective, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.effectiveLocked(categoryKey)
}

func (s *Store) effectiveLocked(categoryKey string) ([]item.Effective, error) {
	if view, ok := s.views[categoryKey]; ok {
		return cloneView(view), nil
	}
	ov, err := s.loadOverlays()
	if err != nil {
		return nil, err
	}
	order, err := s.loadOrder(categoryKey)
	if err != nil {
		return nil, err
	}
	view := Merge(s.defaults, ov, categoryKey, order)
	s.views[categoryKey] = view
	return cloneView(view), nil
}

// Lookup resolves a single id regardless of category.
func (s *Store) Lookup(id item.ID) (item.Effective, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ov, err := s.loadOverlays()
	if err != nil {
		return item.Effective{}, false, err
	}
	if def, ok := s.byID[id]; ok {
		if ov.Tombstones[id] {
			return item.Effective{}, false, nil
		}
		if o, ok := ov.Overrides[id]; ok {
			return item.FromOverride(o), true, nil
		}
		return item.FromCatalog(def), true, nil
	}
	for _, c := range ov.Custom {
		if c.ID == id {
			return item.FromCustom(c), true, nil
		}
	}
	return item.Effective{}, false, nil
}

// Default returns the catalog item behind id, ignoring every overlay.
func (s *Store) Default(id item.ID) (item.CatalogItem, bool) {
	def, ok := s.byID[id]
	return def, ok
}

// Categories lists the catalog categories in first-seen order.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, def := range s.defaults {
		if !seen[def.Category] {
			seen[def.Category] = true
			out = append(out, def.Category)
		}
	}
	return out
}

// Snapshot returns the current overlay collections.
func (s *Store) Snapshot() (Overlays, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadOverlays()
}

// UpsertOverride stores a user edit of a catalog item. The edit is kept even
// while the item is tombstoned so restoring it brings back the edited text.
func (s *Store) UpsertOverride(o item.Override) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	def, ok := s.byID[o.ID]
	if !ok {
		return fmt.Errorf("%w: %d is not a catalog item", store.ErrInvalidArgument, o.ID)
	}
	if o.Count < 1 {
		return fmt.Errorf("%w: count %d", store.ErrInvalidArgument, o.Count)
	}
	o.Category = def.Category

	overrides, err := s.loadOverrides()
	if err != nil {
		return err
	}
	overrides[o.ID] = o
	if err := store.WriteJSON(s.p, store.KeyOverrides, overrides); err != nil {
		return err
	}
	s.invalidate()
	slog.Debug("overlay: override stored", "id", o.ID)
	return nil
}

// RevertOverride drops the user edit of a catalog item, if any.
func (s *Store) RevertOverride(id item.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropOverrideLocked(id)
}

func (s *Store) dropOverrideLocked(id item.ID) error {
	overrides, err := s.loadOverrides()
	if err != nil {
		return err
	}
	if _, ok := overrides[id]; !ok {
		return nil
	}
	delete(overrides, id)
	if err := store.WriteJSON(s.p, store.KeyOverrides, overrides); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// DeleteDefault hides a catalog item and drops its override. Ids that are not
// catalog items are rejected without touching state.
func (s *Store) DeleteDefault(id item.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return fmt.Errorf("%w: %d is not a catalog item", store.ErrInvalidArgument, id)
	}
	tombstones, err := s.loadTombstones()
	if err != nil {
		return err
	}
	// Tombstone before dropping the override: an interrupted pair still
	// hides the item.
	if !tombstones[id] {
		tombstones[id] = true
		if err := store.WriteJSON(s.p, store.KeyTombstones, sortedIDs(tombstones)); err != nil {
			return err
		}
		s.invalidate()
		slog.Debug("overlay: tombstoned", "id", id)
	}
	return s.dropOverrideLocked(id)
}

// RestoreDefault removes the tombstone of a catalog item. An override stored
// for it becomes visible again.
func (s *Store) RestoreDefault(id item.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tombstones, err := s.loadTombstones()
	if err != nil {
		return err
	}
	if !tombstones[id] {
		return nil
	}
	delete(tombstones, id)
	if err := store.WriteJSON(s.p, store.KeyTombstones, sortedIDs(tombstones)); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// UpsertCustomItem creates or replaces a user item. A zero id allocates a new
// one above every catalog and custom id; new items go last in creation order.
func (s *Store) UpsertCustomItem(c item.Custom) (item.Custom, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.Text = strings.TrimSpace(c.Text)
	c.Category = strings.TrimSpace(c.Category)
	switch {
	case c.Text == "":
		return c, fmt.Errorf("%w: text required", store.ErrInvalidArgument)
	case c.Count < 1:
		return c, fmt.Errorf("%w: count %d", store.ErrInvalidArgument, c.Count)
	case c.Category == "" && c.CustomCategoryID == 0:
		return c, fmt.Errorf("%w: category required", store.ErrInvalidArgument)
	}
	if _, ok := s.byID[c.ID]; ok {
		return c, fmt.Errorf("%w: %d is a catalog id", store.ErrInvalidArgument, c.ID)
	}

	custom, err := s.loadCustom()
	if err != nil {
		return c, err
	}
	if c.ID == 0 {
		c.ID = s.nextID(custom)
		custom = append(custom, c)
	} else {
		replaced := false
		for i := range custom {
			if custom[i].ID == c.ID {
				custom[i] = c
				replaced = true
				break
			}
		}
		if !replaced {
			custom = append(custom, c)
		}
	}
	if err := store.WriteJSON(s.p, store.KeyCustomItems, custom); err != nil {
		return c, err
	}
	s.invalidate()
	slog.Debug("overlay: custom item stored", "id", c.ID)
	return c, nil
}

// DeleteCustomItem removes a user item. Unknown ids are ignored.
func (s *Store) DeleteCustomItem(id item.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	custom, err := s.loadCustom()
	if err != nil {
		return err
	}
	kept := custom[:0]
	for _, c := range custom {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(custom) {
		return nil
	}
	if err := store.WriteJSON(s.p, store.KeyCustomItems, kept); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// CustomItems lists every user item in creation order.
func (s *Store) CustomItems() ([]item.Custom, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadCustom()
}

func (s *Store) nextID(existing []item.Custom) item.ID {
	id := item.ID(s.now().UnixMilli())
	if id <= s.maxDefault {
		id = s.maxDefault + 1
	}
	for _, c := range existing {
		if c.ID >= id {
			id = c.ID + 1
		}
	}
	return id
}

// Invalidate drops every cached view. Use it when another process may have
// changed the records.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidate()
}

func (s *Store) invalidate() {
	s.views = make(map[string][]item.Effective)
}

func (s *Store) loadOverlays() (Overlays, error) {
	overrides, err := s.loadOverrides()
	if err != nil {
		return Overlays{}, err
	}
	custom, err := s.loadCustom()
	if err != nil {
		return Overlays{}, err
	}
	tombstones, err := s.loadTombstones()
	if err != nil {
		return Overlays{}, err
	}
	return Overlays{Overrides: overrides, Custom: custom, Tombstones: tombstones}, nil
}

func (s *Store) loadOverrides() (map[item.ID]item.Override, error) {
	overrides := make(map[item.ID]item.Override)
	if _, err := store.ReadJSON(s.p, store.KeyOverrides, &overrides); err != nil {
		return nil, err
	}
	if overrides == nil {
		overrides = make(map[item.ID]item.Override)
	}
	return overrides, nil
}

func (s *Store) loadCustom() ([]item.Custom, error) {
	var custom []item.Custom
	if _, err := store.ReadJSON(s.p, store.KeyCustomItems, &custom); err != nil {
		return nil, err
	}
	return custom, nil
}

func (s *Store) loadTombstones() (map[item.ID]bool, error) {
	var ids []item.ID
	if _, err := store.ReadJSON(s.p, store.KeyTombstones, &ids); err != nil {
		return nil, err
	}
	set := make(map[item.ID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func sortedIDs(set map[item.ID]bool) []item.ID {
	ids := make([]item.ID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func cloneView(view []item.Effective) []item.Effective {
	out := make([]item.Effective, len(view))
	copy(out, view)
	return out
}
