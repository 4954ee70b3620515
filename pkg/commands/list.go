package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ritual/pkg/commands/options"
	"tableflip.dev/ritual/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	io := &options.IDOptions{}
	remaining := false

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "show"},
		Short:   "List categories, or the items of one category with today's progress.",
		Example: `
ritual list
ritual list morning
ritual list custom:1712345678901 --remaining
`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return categoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		Args: func(_ *cobra.Command, args []string) error {
			co.SetFromArgs(args)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service()
			if err != nil {
				return output.HandleError(err)
			}
			s := list.List{
				Category:  co.Category,
				ShowID:    io.ShowID,
				Remaining: remaining,
				JSON:      output.JSON,
				Service:   svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVarP(&remaining, "remaining", "r", false, "Only show items not yet completed or skipped.")

	topLevel.AddCommand(cmd)
}
