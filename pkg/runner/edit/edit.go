// Package edit provides runners that change item content: editing, adding,
// deleting and restoring.
package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/ritual/pkg/app"
	"tableflip.dev/ritual/pkg/item"
	"tableflip.dev/ritual/pkg/printers"
)

// Mode selects what an Edit does.
type Mode int

const (
	ModeEdit Mode = iota
	ModeRevert
	ModeDelete
	ModeRestore
)

// Edit changes a single item.
type Edit struct {
	ID      item.ID
	Mode    Mode
	Patch   app.Patch
	JSON    bool
	Service *app.Service
}

// Do applies the change.
func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	switch n.Mode {
	case ModeRevert:
		return n.Service.Revert(ctx, n.ID)
	case ModeDelete:
		return n.Service.Delete(ctx, n.ID)
	case ModeRestore:
		return n.Service.Restore(ctx, n.ID)
	}

	it, err := n.Service.Edit(ctx, n.ID, n.Patch)
	if err != nil {
		return err
	}
	return show(it, n.JSON)
}

// Add creates a user item.
type Add struct {
	Category string
	Text     string
	Count    int
	Source   string
	Benefit  string
	JSON     bool
	Service  *app.Service
}

// Do stores the item and prints it with its new id.
func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	it, err := n.Service.AddCustom(ctx, n.Category, n.Text, n.Count)
	if err != nil {
		return err
	}
	if n.Source != "" || n.Benefit != "" {
		it, err = n.Service.Edit(ctx, it.ID, app.Patch{Source: &n.Source, Benefit: &n.Benefit})
		if err != nil {
			return err
		}
	}
	return show(it, n.JSON)
}

func show(it item.Effective, asJSON bool) error {
	if asJSON {
		return printers.JSON(it)
	}
	fmt.Printf("%s  %s (%s, x%d)\n", it.ID, it.Text, it.Kind, it.Count)
	return nil
}
