// Package order provides runners that change the order of a category.
package order

import (
	"context"
	"errors"

	"tableflip.dev/ritual/pkg/app"
	"tableflip.dev/ritual/pkg/item"
	"tableflip.dev/ritual/pkg/overlay"
	"tableflip.dev/ritual/pkg/printers"
)

// Order stores a (possibly partial) order list for a category.
type Order struct {
	Category string
	IDs      []item.ID
	Clear    bool
	Service  *app.Service
}

// Do stores the order and prints the resulting category.
func (n *Order) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not order, no service")
	}
	var err error
	if n.Clear {
		err = n.Service.Overlay.ClearOrder(n.Category)
	} else {
		err = n.Service.Overlay.SetOrder(n.Category, n.IDs)
	}
	if err != nil {
		return err
	}
	return reprint(ctx, n.Service, n.Category)
}

// Move shifts one item up or down by one place.
type Move struct {
	Category  string
	ID        item.ID
	Direction overlay.Direction
	Service   *app.Service
}

// Do moves the item and prints the resulting category.
func (n *Move) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not move, no service")
	}
	if err := n.Service.Overlay.MoveAdjacent(n.Category, n.ID, n.Direction); err != nil {
		return err
	}
	return reprint(ctx, n.Service, n.Category)
}

func reprint(ctx context.Context, svc *app.Service, key string) error {
	view, err := svc.Category(ctx, key)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: true}
	pp.Category(view)
	return nil
}
