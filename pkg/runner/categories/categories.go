// Package categories provides runners that manage user-defined categories.
package categories

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/ritual/pkg/app"
	"tableflip.dev/ritual/pkg/item"
	"tableflip.dev/ritual/pkg/overlay"
)

// Add creates a user-defined category.
type Add struct {
	Title   string
	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add category, no service")
	}
	cc, err := n.Service.AddCustomCategory(ctx, n.Title)
	if err != nil {
		return err
	}
	fmt.Printf("created %q as %s\n", cc.Title, overlay.CustomCategoryKey(cc.ID))
	return nil
}

// Remove deletes a user-defined category, optionally with its items.
type Remove struct {
	ID      item.ID
	Cascade bool
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove category, no service")
	}
	return n.Service.DeleteCustomCategory(ctx, n.ID, n.Cascade)
}
