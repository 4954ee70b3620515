// Package favorite provides runners for favorites, pins and recents.
package favorite

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/ritual/pkg/app"
	"tableflip.dev/ritual/pkg/item"
	"tableflip.dev/ritual/pkg/ledger"
	"tableflip.dev/ritual/pkg/printers"
)

// Favorite toggles an item in the favorites.
type Favorite struct {
	ID      item.ID
	Service *app.Service
}

// Do toggles and reports the new membership.
func (n *Favorite) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not favorite, no service")
	}
	set, err := n.Service.Ledger.ToggleFavorite(n.ID)
	if err != nil {
		return err
	}
	for _, id := range set {
		if id == n.ID {
			fmt.Printf("%s added to favorites\n", n.ID)
			return nil
		}
	}
	fmt.Printf("%s removed from favorites\n", n.ID)
	return nil
}

// Pin toggles a pinned shortcut; with no entry it lists the pins.
type Pin struct {
	Entry   *ledger.Entry
	JSON    bool
	Service *app.Service
}

// Do toggles or lists.
func (n *Pin) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not pin, no service")
	}
	var pins []ledger.Entry
	var err error
	if n.Entry != nil {
		pins, err = n.Service.Ledger.TogglePin(*n.Entry)
	} else {
		pins, err = n.Service.Ledger.Pinned()
	}
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(pins)
	}
	pp := printers.PrettyPrint{}
	pp.Entries("Pinned", pins)
	return nil
}

// Recent lists the recently viewed screens.
type Recent struct {
	JSON    bool
	Service *app.Service
}

// Do prints the recents, most recent first.
func (n *Recent) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list recents, no service")
	}
	recent, err := n.Service.Ledger.Recent()
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(recent)
	}
	pp := printers.PrettyPrint{}
	pp.Entries("Recent", recent)
	return nil
}
