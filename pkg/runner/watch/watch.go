// Package watch provides a runner that reprints a category whenever its
// stored state changes, for example from another terminal.
package watch

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/ritual/pkg/app"
	"tableflip.dev/ritual/pkg/printers"
	"tableflip.dev/ritual/pkg/store"
)

type Watch struct {
	Category string
	Service  *app.Service
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not watch, no service")
	}
	events, err := n.Service.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	if err := n.show(ctx); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !Relevant(ev, n.Category, n.Service.Progress.Today()) {
				continue
			}
			if ev.Type == store.EventInvalidated || ev.Family == store.FamilyOverlay || ev.Family == store.FamilyOrder {
				n.Service.Overlay.Invalidate()
			}
			if err := n.show(ctx); err != nil {
				return err
			}
		}
	}
}

func (n *Watch) show(ctx context.Context) error {
	view, err := n.Service.Category(ctx, n.Category)
	if err != nil {
		return err
	}
	fmt.Print("\033[H\033[2J")
	pp := printers.PrettyPrint{ShowID: true}
	pp.Category(view)
	return nil
}

// Relevant reports whether ev can change the view of categoryKey on today.
// Recents and pins never do; the reprint itself writes the recents.
func Relevant(ev store.Event, categoryKey, today string) bool {
	if ev.Type == store.EventInvalidated {
		return true
	}
	switch ev.Family {
	case store.FamilyOverlay, store.FamilyTargets:
		return true
	case store.FamilyOrder:
		return ev.Key == store.OrderKey(categoryKey)
	case store.FamilyDay:
		return ev.Key == store.DayKey(today)
	case store.FamilyLedger:
		return ev.Key == store.KeyFavorites
	}
	return true
}
