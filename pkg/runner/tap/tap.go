// Package tap provides the runners behind the primary interaction: counting
// a repetition, skipping an item and resetting a category.
package tap

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/ritual/pkg/app"
	"tableflip.dev/ritual/pkg/item"
	"tableflip.dev/ritual/pkg/printers"
)

// Tap counts one repetition of an item, or skips it.
type Tap struct {
	ID      item.ID
	Times   int
	Skip    bool
	JSON    bool
	Service *app.Service
}

// Do records the taps and prints the resulting row.
func (n *Tap) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not tap, no service")
	}

	var row app.Row
	var err error
	if n.Skip {
		row, err = n.Service.Skip(ctx, n.ID)
	} else {
		times := n.Times
		if times < 1 {
			times = 1
		}
		for i := 0; i < times; i++ {
			if row, err = n.Service.Tap(ctx, n.ID); err != nil {
				break
			}
		}
	}
	if err != nil {
		return err
	}

	if n.JSON {
		return printers.JSON(row)
	}
	pp := printers.PrettyPrint{ShowID: true}
	pp.Row(row)
	return nil
}

// Reset zeroes today's counters of a category.
type Reset struct {
	Category string
	Service  *app.Service
}

// Do resets the category and reports it.
func (n *Reset) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not reset, no service")
	}
	if err := n.Service.ResetCategory(ctx, n.Category); err != nil {
		return err
	}
	fmt.Printf("reset %s for %s\n", n.Category, n.Service.Progress.Today())
	return nil
}

// Target sets or clears the target override of an item.
type Target struct {
	ID      item.ID
	Target  int
	Clear   bool
	Service *app.Service
}

// Do applies the override.
func (n *Target) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set target, no service")
	}
	if n.Clear {
		return n.Service.Progress.ClearTarget(n.ID)
	}
	return n.Service.Progress.SetTarget(n.ID, n.Target)
}
