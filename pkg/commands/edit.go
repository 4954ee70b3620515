package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/ritual/pkg/commands/options"
	"tableflip.dev/ritual/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	ito := &options.ItemOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit an item. Catalog items keep the catalog copy and can be reverted.",
		Example: `
ritual edit 1 --count 3
ritual edit 1 --text "A shorter wording" --benefit ""
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an item id")
			}
			return io.ParseID(args[0])
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service()
			if err != nil {
				return output.HandleError(err)
			}
			s := edit.Edit{
				ID:      io.ID,
				Mode:    edit.ModeEdit,
				Patch:   ito.Patch(cmd),
				JSON:    output.JSON,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddItemArgs(cmd, ito)

	topLevel.AddCommand(cmd)
}

func addRevert(topLevel *cobra.Command) {
	addIDEdit(topLevel, edit.ModeRevert, &cobra.Command{
		Use:   "revert",
		Short: "Drop your edits to a catalog item.",
		Example: `
ritual revert 1
`,
	})
}

func addDelete(topLevel *cobra.Command) {
	addIDEdit(topLevel, edit.ModeDelete, &cobra.Command{
		Use:     "delete",
		Aliases: []string{"rm"},
		Short:   "Hide a catalog item, or remove one of your own items.",
		Example: `
ritual delete 3
`,
	})
}

func addRestore(topLevel *cobra.Command) {
	addIDEdit(topLevel, edit.ModeRestore, &cobra.Command{
		Use:   "restore",
		Short: "Bring back a hidden catalog item.",
		Example: `
ritual restore 3
`,
	})
}

func addIDEdit(topLevel *cobra.Command, mode edit.Mode, cmd *cobra.Command) {
	io := &options.IDOptions{}

	cmd.Args = func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("requires an item id")
		}
		return io.ParseID(args[0])
	}
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true
		svc, err := service()
		if err != nil {
			return output.HandleError(err)
		}
		s := edit.Edit{
			ID:      io.ID,
			Mode:    mode,
			Service: svc,
		}
		err = s.Do(context.Background())
		return output.HandleError(err)
	}

	topLevel.AddCommand(cmd)
}

func addAdd(topLevel *cobra.Command) {
	ito := &options.ItemOptions{}
	co := &options.CategoryOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add your own item to a category.",
		Example: `
ritual add morning "Read one page"
ritual add custom:1712345678901 "Walk" --count 1
ritual add "Read one page" --category morning --source "habit"
`,
		Args: func(_ *cobra.Command, args []string) error {
			switch {
			case co.Category != "" && len(args) == 1:
				ito.Text = args[0]
			case co.Category == "" && len(args) == 2:
				co.Category, ito.Text = args[0], args[1]
			default:
				return errors.New("requires a category and the item text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service()
			if err != nil {
				return output.HandleError(err)
			}
			s := edit.Add{
				Category: co.Category,
				Text:     ito.Text,
				Count:    ito.Count,
				Source:   ito.Source,
				Benefit:  ito.Benefit,
				JSON:     output.JSON,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCategoryArgs(cmd, co)
	cmd.Flags().IntVarP(&ito.Count, "count", "n", 1, "Repetitions needed to complete the item.")
	cmd.Flags().StringVar(&ito.Source, "source", "", "Where the item comes from.")
	cmd.Flags().StringVar(&ito.Benefit, "benefit", "", "Why the item is worth doing.")

	topLevel.AddCommand(cmd)
}
