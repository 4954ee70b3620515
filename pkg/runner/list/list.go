// Package list provides the runner that shows a category with today's
// progress.
package list

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/ritual/pkg/app"
	"tableflip.dev/ritual/pkg/printers"
)

// List prints one category, or every category when Category is empty.
type List struct {
	Category  string
	ShowID    bool
	Remaining bool
	JSON      bool
	Service   *app.Service
}

// Do loads the category. Loading a fully completed category starts it over.
func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}

	if n.Category == "" {
		cats, err := n.Service.Categories(ctx)
		if err != nil {
			return err
		}
		if n.JSON {
			return printers.JSON(cats)
		}
		fmt.Println("")
		pp.Categories(cats)
		return nil
	}

	view, err := n.Service.Category(ctx, n.Category)
	if err != nil {
		return err
	}
	if n.Remaining {
		view.Rows = view.Remaining()
	}
	if n.JSON {
		return printers.JSON(view)
	}
	fmt.Println("")
	pp.Category(view)
	return nil
}
