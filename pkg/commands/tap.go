package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/ritual/pkg/commands/options"
	"tableflip.dev/ritual/pkg/runner/tap"
)

func addTap(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	times := 1

	cmd := &cobra.Command{
		Use:     "tap",
		Aliases: []string{"t", "count"},
		Short:   "Count one repetition of an item.",
		Example: `
ritual tap 1
ritual tap 1 --times 33
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
			s := tap.Tap{
				ID:      io.ID,
				Times:   times,
				JSON:    output.JSON,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVarP(&times, "times", "x", 1, "Number of repetitions to count.")

	topLevel.AddCommand(cmd)
}

func addSkip(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "skip",
		Short: "Skip an item for today. A skipped item keeps its category from starting over.",
		Example: `
ritual skip 3
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
			s := tap.Tap{
				ID:      io.ID,
				Skip:    true,
				JSON:    output.JSON,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addReset(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Zero today's counters of every item in a category.",
		Example: `
ritual reset morning
`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return categoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		Args: func(_ *cobra.Command, args []string) error {
			co.SetFromArgs(args)
			if co.Category == "" {
				return errors.New("requires a category")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service()
			if err != nil {
				return output.HandleError(err)
			}
			s := tap.Reset{
				Category: co.Category,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addTarget(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	clearTarget := false
	target := 0

	cmd := &cobra.Command{
		Use:   "target",
		Short: "Override how many repetitions complete an item.",
		Example: `
ritual target 1 100
ritual target 1 --clear
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an item id")
			}
			if err := io.ParseID(args[0]); err != nil {
				return err
			}
			if clearTarget {
				return nil
			}
			if len(args) != 2 {
				return errors.New("requires a target, or --clear")
			}
			var err error
			target, err = strconv.Atoi(args[1])
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service()
			if err != nil {
				return output.HandleError(err)
			}
			s := tap.Target{
				ID:      io.ID,
				Target:  target,
				Clear:   clearTarget,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&clearTarget, "clear", false, "Remove the override and use the item count.")

	topLevel.AddCommand(cmd)
}
