package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/ritual/pkg/catalog"
	"tableflip.dev/ritual/pkg/item"
	"tableflip.dev/ritual/pkg/overlay"
	"tableflip.dev/ritual/pkg/progress"
	"tableflip.dev/ritual/pkg/store"
	"tableflip.dev/ritual/pkg/store/storetest"
)

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func newTestService(t *testing.T, items ...item.CatalogItem) (*Service, *testClock) {
	t.Helper()
	if len(items) == 0 {
		items = []item.CatalogItem{
			{ID: 1, Category: "morning", Text: "first", Count: 3},
			{ID: 2, Category: "morning", Text: "second", Count: 1},
		}
	}
	cat, err := catalog.New(items...)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	clock := &testClock{t: time.Date(2024, 5, 3, 8, 0, 0, 0, time.UTC)}
	svc := NewService(cat, storetest.NewMemory(), 0,
		progress.WithClock(clock.now), progress.WithLocation(time.UTC))
	return svc, clock
}

func tap(t *testing.T, svc *Service, id item.ID, times int) Row {
	t.Helper()
	var row Row
	for i := 0; i < times; i++ {
		var err error
		row, err = svc.Tap(context.Background(), id)
		if err != nil {
			t.Fatalf("tap %d: %v", id, err)
		}
	}
	return row
}

func TestMorningScenario(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	view, err := svc.Category(ctx, "morning")
	if err != nil {
		t.Fatalf("category: %v", err)
	}
	if len(view.Rows) != 2 || view.Rows[0].Item.ID != 1 || view.Rows[1].Item.ID != 2 {
		t.Fatalf("unexpected rows %+v", view.Rows)
	}
	if view.RolledOver {
		t.Fatalf("fresh category must not roll over")
	}

	if row := tap(t, svc, 1, 3); row.Count != 3 || row.State != progress.StateCompleted {
		t.Fatalf("item 1 after three taps: %+v", row)
	}
	if row := tap(t, svc, 2, 1); row.Count != 1 || row.State != progress.StateCompleted {
		t.Fatalf("item 2 after one tap: %+v", row)
	}

	view, err = svc.Category(ctx, "morning")
	if err != nil {
		t.Fatalf("category: %v", err)
	}
	if !view.RolledOver {
		t.Fatalf("expected rollover once everything is complete")
	}
	for _, r := range view.Rows {
		if r.Count != 0 || r.State != progress.StateRemaining {
			t.Fatalf("row not reset: %+v", r)
		}
	}
	if got := len(view.Remaining()); got != 2 {
		t.Fatalf("expected 2 remaining, got %d", got)
	}
}

func TestSkipBlocksRollover(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	tap(t, svc, 1, 3)
	if _, err := svc.Skip(ctx, 2); err != nil {
		t.Fatalf("skip: %v", err)
	}

	view, err := svc.Category(ctx, "morning")
	if err != nil {
		t.Fatalf("category: %v", err)
	}
	if view.RolledOver {
		t.Fatalf("a skipped item must not trigger rollover")
	}
	if view.Rows[1].State != progress.StateSkipped {
		t.Fatalf("expected skipped, got %v", view.Rows[1].State)
	}
	if got := len(view.Remaining()); got != 0 {
		t.Fatalf("expected nothing remaining, got %d", got)
	}
}

func TestTargetOverrideUsedByView(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	if err := svc.Progress.SetTarget(2, 5); err != nil {
		t.Fatalf("set target: %v", err)
	}
	row := tap(t, svc, 2, 1)
	if row.Target != 5 || row.State != progress.StateRemaining {
		t.Fatalf("unexpected row %+v", row)
	}
	view, err := svc.Category(ctx, "morning")
	if err != nil {
		t.Fatalf("category: %v", err)
	}
	if view.Rows[1].Target != 5 {
		t.Fatalf("view ignored the target override: %+v", view.Rows[1])
	}
}

func TestNewDayStartsFresh(t *testing.T) {
	ctx := context.Background()
	svc, clock := newTestService(t)
	tap(t, svc, 1, 2)

	clock.t = clock.t.Add(24 * time.Hour)
	view, err := svc.Category(ctx, "morning")
	if err != nil {
		t.Fatalf("category: %v", err)
	}
	if view.Day != "2024-05-04" || view.Rows[0].Count != 0 {
		t.Fatalf("unexpected view %+v", view)
	}
}

func TestTapUnknownItem(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Tap(context.Background(), 404)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestEditDeleteRestore(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	text := "edited"
	count := 7
	got, err := svc.Edit(ctx, 1, Patch{Text: &text, Count: &count})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got.Kind != item.KindOverridden || got.Text != "edited" || got.Count != 7 {
		t.Fatalf("unexpected edit result %+v", got)
	}

	// A second edit starts from the override, not the catalog.
	source := "book"
	got, err = svc.Edit(ctx, 1, Patch{Source: &source})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got.Text != "edited" || got.Source != "book" {
		t.Fatalf("second edit lost the first: %+v", got)
	}

	if err := svc.Delete(ctx, 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	view, err := svc.Category(ctx, "morning")
	if err != nil {
		t.Fatalf("category: %v", err)
	}
	if len(view.Rows) != 1 {
		t.Fatalf("expected one row after delete, got %d", len(view.Rows))
	}
	if err := svc.Restore(ctx, 2); err != nil {
		t.Fatalf("restore: %v", err)
	}
	view, err = svc.Category(ctx, "morning")
	if err != nil {
		t.Fatalf("category: %v", err)
	}
	if len(view.Rows) != 2 {
		t.Fatalf("expected two rows after restore, got %d", len(view.Rows))
	}

	if err := svc.Revert(ctx, 1); err != nil {
		t.Fatalf("revert: %v", err)
	}
	if view, _ = svc.Category(ctx, "morning"); view.Rows[0].Item.Text != "first" {
		t.Fatalf("revert kept the edit: %+v", view.Rows[0])
	}
}

func TestCustomItemsAndCategories(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	mine, err := svc.AddCustom(ctx, "morning", "my own", 2)
	if err != nil {
		t.Fatalf("add custom: %v", err)
	}
	cc, err := svc.AddCustomCategory(ctx, "travel")
	if err != nil {
		t.Fatalf("add category: %v", err)
	}
	key := overlay.CustomCategoryKey(cc.ID)
	trip, err := svc.AddCustom(ctx, key, "on the road", 1)
	if err != nil {
		t.Fatalf("add custom: %v", err)
	}

	cats, err := svc.Categories(ctx)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(cats) != 2 || cats[0].Items != 3 || !cats[1].Custom || cats[1].Title != "travel" || cats[1].Items != 1 {
		t.Fatalf("unexpected categories %+v", cats)
	}

	view, err := svc.Category(ctx, key)
	if err != nil {
		t.Fatalf("category: %v", err)
	}
	if view.Title != "travel" || len(view.Rows) != 1 || view.Rows[0].Item.ID != trip.ID {
		t.Fatalf("unexpected custom view %+v", view)
	}

	if err := svc.DeleteCustomCategory(ctx, cc.ID, true); err != nil {
		t.Fatalf("delete category: %v", err)
	}
	if _, ok, _ := svc.Overlay.Lookup(trip.ID); ok {
		t.Fatalf("cascade left the item behind")
	}
	if _, ok, _ := svc.Overlay.Lookup(mine.ID); !ok {
		t.Fatalf("cascade removed an unrelated item")
	}
}

func TestCategoryRecordsRecent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	if _, err := svc.Category(ctx, "morning"); err != nil {
		t.Fatalf("category: %v", err)
	}
	recent, err := svc.Ledger.Recent()
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 || recent[0].ID != "category:morning" {
		t.Fatalf("unexpected recents %+v", recent)
	}
}

func TestUnknownCategoryNotRecorded(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	for _, key := range []string{"typo", "", overlay.CustomCategoryKey(42)} {
		view, err := svc.Category(ctx, key)
		if err != nil {
			t.Fatalf("category %q: %v", key, err)
		}
		if len(view.Rows) != 0 {
			t.Fatalf("unknown category %q has rows %+v", key, view.Rows)
		}
	}
	cc, err := svc.AddCustomCategory(ctx, "Before work")
	if err != nil {
		t.Fatalf("add category: %v", err)
	}
	if _, err := svc.Category(ctx, overlay.CustomCategoryKey(cc.ID)); err != nil {
		t.Fatalf("category: %v", err)
	}

	recent, err := svc.Ledger.Recent()
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 || recent[0].Title != "Before work" {
		t.Fatalf("only the existing custom category belongs in recents: %+v", recent)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	svc, clock := newTestService(t)
	tap(t, svc, 2, 1)
	clock.t = clock.t.Add(24 * time.Hour)
	tap(t, svc, 1, 1)

	r, err := svc.Stats(ctx, 0)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(r.Days) != 2 || r.Completed != 1 || r.Taps != 2 || r.Streak != 1 || r.Window != "all" {
		t.Fatalf("unexpected report %+v", r)
	}

	r, err = svc.Stats(ctx, 1)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(r.Days) != 1 || r.Days[0].Day != svc.Progress.Today() || r.Streak != 1 || r.Window != "1d" {
		t.Fatalf("unexpected windowed report %+v", r)
	}
}

func TestStatsSurviveDeletion(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, item.CatalogItem{ID: 1, Category: "morning", Text: "long", Count: 33})
	tap(t, svc, 1, 2)

	before, err := svc.Stats(ctx, 0)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(before.Days) != 1 || before.Days[0].InProgress != 1 || before.Completed != 0 {
		t.Fatalf("unexpected report before delete %+v", before)
	}

	if err := svc.Delete(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	after, err := svc.Stats(ctx, 0)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(after.Days) != 1 || after.Days[0].InProgress != 1 || after.Completed != 0 {
		t.Fatalf("deleting an item rewrote its history: %+v", after)
	}

	custom, err := svc.AddCustom(ctx, "morning", "mine", 4)
	if err != nil {
		t.Fatalf("add custom: %v", err)
	}
	tap(t, svc, custom.ID, 1)
	if err := svc.Delete(ctx, custom.ID); err != nil {
		t.Fatalf("delete custom: %v", err)
	}
	gone, err := svc.Stats(ctx, 0)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if gone.Completed != 0 || gone.Unresolved != 1 || gone.Days[0].InProgress != 1 {
		t.Fatalf("deleted custom item must stay unresolved: %+v", gone)
	}
}

func TestUnconfiguredService(t *testing.T) {
	var svc Service
	if _, err := svc.Category(context.Background(), "morning"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
