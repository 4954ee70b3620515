package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/ritual/pkg/commands/options"
	"tableflip.dev/ritual/pkg/item"
	"tableflip.dev/ritual/pkg/overlay"
	"tableflip.dev/ritual/pkg/runner/order"
)

func addOrder(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	var ids []item.ID
	clearOrder := false

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Set the order of a category. Listed items come first, the rest keep their place after them.",
		Example: `
ritual order morning 4 1
ritual order morning --clear
`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return categoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a category")
			}
			co.Category = args[0]
			if clearOrder {
				return nil
			}
			if len(args) < 2 {
				return errors.New("requires at least one item id, or --clear")
			}
			ids = ids[:0]
			for _, raw := range args[1:] {
				id, err := item.ParseID(raw)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service()
			if err != nil {
				return output.HandleError(err)
			}
			s := order.Order{
				Category: co.Category,
				IDs:      ids,
				Clear:    clearOrder,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&clearOrder, "clear", false, "Go back to the catalog order.")

	topLevel.AddCommand(cmd)
}

func addMove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	co := &options.CategoryOptions{}
	var dir overlay.Direction

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move an item one place up or down within its category.",
		Example: `
ritual move morning 3 up
ritual move morning 1 down
`,
		ValidArgs: []string{"up", "down"},
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 3 {
				return errors.New("requires a category, an item id and up or down")
			}
			co.Category = args[0]
			if err := io.ParseID(args[1]); err != nil {
				return err
			}
			var err error
			dir, err = overlay.ParseDirection(args[2])
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service()
			if err != nil {
				return output.HandleError(err)
			}
			s := order.Move{
				Category:  co.Category,
				ID:        io.ID,
				Direction: dir,
				Service:   svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
