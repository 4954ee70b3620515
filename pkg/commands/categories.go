package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/ritual/pkg/commands/options"
	"tableflip.dev/ritual/pkg/overlay"
	"tableflip.dev/ritual/pkg/runner/categories"
	"tableflip.dev/ritual/pkg/runner/list"
)

func addCategories(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cats"},
		Short:   "List categories, or manage your own.",
		Example: `
ritual categories
ritual categories add "Before work"
ritual categories rm custom:1712345678901 --items
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service()
			if err != nil {
				return output.HandleError(err)
			}
			s := list.List{
				JSON:    output.JSON,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addCategoryAdd(cmd)
	addCategoryRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addCategoryAdd(parent *cobra.Command) {
	title := ""

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a category of your own.",
		Args: func(_ *cobra.Command, args []string) error {
			title = strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return errors.New("requires a title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service()
			if err != nil {
				return output.HandleError(err)
			}
			s := categories.Add{
				Title:   title,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	parent.AddCommand(cmd)
}

func addCategoryRemove(parent *cobra.Command) {
	io := &options.IDOptions{}
	cascade := false

	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a category of your own. Its items stay unless --items is given.",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return customCategoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a category id")
			}
			if id, ok := overlay.ParseCustomCategoryKey(args[0]); ok {
				io.ID = id
				return nil
			}
			return io.ParseID(args[0])
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service()
			if err != nil {
				return output.HandleError(err)
			}
			s := categories.Remove{
				ID:      io.ID,
				Cascade: cascade,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&cascade, "items", false, "Also delete the items in the category.")

	parent.AddCommand(cmd)
}
