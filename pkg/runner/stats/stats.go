// Package stats provides the runner that summarises recorded progress.
package stats

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/ritual/pkg/app"
	"tableflip.dev/ritual/pkg/printers"
)

type Stats struct {
	Window  int
	JSON    bool
	Service *app.Service
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no service")
	}
	r, err := n.Service.Stats(ctx, n.Window)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(r)
	}
	fmt.Println("")
	pp := printers.PrettyPrint{}
	pp.Report(r)
	return nil
}
