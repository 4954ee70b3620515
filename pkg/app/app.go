// Package app composes the catalog, overlay, progress and ledger stores into
// the operations a front end needs, so UIs and CLIs can share logic.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tableflip.dev/ritual/pkg/catalog"
	"tableflip.dev/ritual/pkg/item"
	"tableflip.dev/ritual/pkg/ledger"
	"tableflip.dev/ritual/pkg/overlay"
	"tableflip.dev/ritual/pkg/progress"
	"tableflip.dev/ritual/pkg/store"
)

// Service provides high-level operations over the ritual stores.
type Service struct {
	Persistence store.Persistence
	Overlay     *overlay.Store
	Progress    *progress.Store
	Ledger      *ledger.Ledger
}

// ErrNotConfigured is returned when a Service was built without its stores.
var ErrNotConfigured = errors.New("app: no persistence configured")

// NewService wires the stores over one persistence handle.
func NewService(c catalog.Catalog, p store.Persistence, recentCap int, opts ...progress.Option) *Service {
	return &Service{
		Persistence: p,
		Overlay:     overlay.New(c, p),
		Progress:    progress.New(p, opts...),
		Ledger:      ledger.New(p, recentCap),
	}
}

// Open loads config, persistence and catalog and returns a ready Service.
func Open(cfg store.Config) (*Service, error) {
	if cfg == nil {
		var err error
		cfg, err = store.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	c, err := catalog.Load(cfg.CatalogPath())
	if err != nil {
		return nil, err
	}
	return NewService(c, p, cfg.RecentCap()), nil
}

func (s *Service) ready() error {
	if s == nil || s.Persistence == nil || s.Overlay == nil || s.Progress == nil || s.Ledger == nil {
		return ErrNotConfigured
	}
	return nil
}

// Row is one item of a category view with today's progress.
type Row struct {
	Item     item.Effective `json:"item"`
	Count    int            `json:"count"`
	Target   int            `json:"target"`
	State    progress.State `json:"state"`
	Favorite bool           `json:"favorite"`
}

// CategoryView is the ordered content of a category for today.
type CategoryView struct {
	Key        string `json:"key"`
	Title      string `json:"title"`
	Day        string `json:"day"`
	Rows       []Row  `json:"rows"`
	RolledOver bool   `json:"rolledOver"`
}

// Remaining returns the rows still outstanding today.
func (v *CategoryView) Remaining() []Row {
	out := make([]Row, 0, len(v.Rows))
	for _, r := range v.Rows {
		if r.State == progress.StateRemaining {
			out = append(out, r)
		}
	}
	return out
}

// CategoryInfo describes a browsable category.
type CategoryInfo struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	Custom bool   `json:"custom"`
	Items  int    `json:"items"`
}

// Categories lists the catalog categories followed by the custom ones.
func (s *Service) Categories(ctx context.Context) ([]CategoryInfo, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var out []CategoryInfo
	for _, name := range s.Overlay.Categories() {
		items, err := s.Overlay.EffectiveItems(name)
		if err != nil {
			return nil, err
		}
		out = append(out, CategoryInfo{Key: name, Title: name, Items: len(items)})
	}
	customs, err := s.Overlay.CustomCategories()
	if err != nil {
		return nil, err
	}
	for _, cc := range customs {
		key := overlay.CustomCategoryKey(cc.ID)
		items, err := s.Overlay.EffectiveItems(key)
		if err != nil {
			return nil, err
		}
		out = append(out, CategoryInfo{Key: key, Title: cc.Title, Custom: true, Items: len(items)})
	}
	return out, nil
}

// Category loads the view of a category key. When every item in it is
// already completed today, the counters are reset first and the category
// starts over.
func (s *Service) Category(ctx context.Context, key string) (*CategoryView, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	key = strings.TrimSpace(key)
	items, err := s.Overlay.EffectiveItems(key)
	if err != nil {
		return nil, err
	}
	scope, err := s.Progress.ScopeOf(items)
	if err != nil {
		return nil, err
	}
	rolled, err := s.Progress.Rollover(scope)
	if err != nil {
		return nil, err
	}
	counts, err := s.Progress.GetToday()
	if err != nil {
		return nil, err
	}
	favs, err := s.Ledger.Favorites()
	if err != nil {
		return nil, err
	}
	isFav := make(map[item.ID]bool, len(favs))
	for _, id := range favs {
		isFav[id] = true
	}

	title, known := s.describe(key)
	view := &CategoryView{
		Key:        key,
		Title:      title,
		Day:        s.Progress.Today(),
		Rows:       make([]Row, len(items)),
		RolledOver: rolled,
	}
	for i, it := range items {
		n := counts[it.ID]
		view.Rows[i] = Row{
			Item:     it,
			Count:    n,
			Target:   scope[i].Target,
			State:    progress.StateOf(n, scope[i].Target),
			Favorite: isFav[it.ID],
		}
	}

	if known {
		recent := ledger.Entry{ID: "category:" + key, Type: "category", Title: view.Title, Path: "/category/" + key}
		if err := s.Ledger.AddRecent(recent); err != nil {
			slog.Warn("app: record recent view", "key", key, "error", err)
		}
	}
	return view, nil
}

// describe returns the display title of a category key and whether the key
// names a catalog category or an existing custom category.
func (s *Service) describe(key string) (string, bool) {
	id, ok := overlay.ParseCustomCategoryKey(key)
	if !ok {
		for _, name := range s.Overlay.Categories() {
			if name == key {
				return key, true
			}
		}
		return key, false
	}
	customs, err := s.Overlay.CustomCategories()
	if err != nil {
		return key, false
	}
	for _, cc := range customs {
		if cc.ID == id {
			return cc.Title, true
		}
	}
	return key, false
}

// Tap counts one repetition of id for today.
func (s *Service) Tap(ctx context.Context, id item.ID) (Row, error) {
	it, err := s.lookup(id)
	if err != nil {
		return Row{}, err
	}
	n, err := s.Progress.Increment(id)
	if err != nil {
		return Row{}, err
	}
	return s.row(it, n)
}

// Skip marks id as skipped for today.
func (s *Service) Skip(ctx context.Context, id item.ID) (Row, error) {
	it, err := s.lookup(id)
	if err != nil {
		return Row{}, err
	}
	if err := s.Progress.MarkSkipped(id); err != nil {
		return Row{}, err
	}
	return s.row(it, progress.SkipSentinel)
}

// ResetCategory zeroes today's counters of every item in a category.
func (s *Service) ResetCategory(ctx context.Context, key string) error {
	if err := s.ready(); err != nil {
		return err
	}
	items, err := s.Overlay.EffectiveItems(key)
	if err != nil {
		return err
	}
	return s.Progress.ResetToday(overlay.IDs(items))
}

func (s *Service) lookup(id item.ID) (item.Effective, error) {
	if err := s.ready(); err != nil {
		return item.Effective{}, err
	}
	it, ok, err := s.Overlay.Lookup(id)
	if err != nil {
		return item.Effective{}, err
	}
	if !ok {
		return item.Effective{}, fmt.Errorf("%w: item %d", store.ErrNotFound, id)
	}
	return it, nil
}

func (s *Service) row(it item.Effective, n int) (Row, error) {
	target, err := s.Progress.EffectiveTarget(it.ID, it.Count)
	if err != nil {
		return Row{}, err
	}
	fav, err := s.Ledger.IsFavorite(it.ID)
	if err != nil {
		return Row{}, err
	}
	return Row{Item: it, Count: n, Target: target, State: progress.StateOf(n, target), Favorite: fav}, nil
}
