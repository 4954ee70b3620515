package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/ritual/pkg/commands/options"
	"tableflip.dev/ritual/pkg/ledger"
	"tableflip.dev/ritual/pkg/runner/favorite"
)

func addFavorite(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "fav",
		Aliases: []string{"favorite", "star"},
		Short:   "Toggle an item in your favorites.",
		Example: `
ritual fav 1
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
			s := favorite.Favorite{
				ID:      io.ID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addPin(topLevel *cobra.Command) {
	e := ledger.Entry{}

	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Toggle a pinned shortcut, or list the pins.",
		Example: `
ritual pin
ritual pin category:morning --title "Morning" --type category
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("accepts at most one id")
			}
			if len(args) == 1 {
				e.ID = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service()
			if err != nil {
				return output.HandleError(err)
			}
			s := favorite.Pin{
				JSON:    output.JSON,
				Service: svc,
			}
			if e.ID != "" {
				if e.Title == "" {
					e.Title = e.ID
				}
				s.Entry = &e
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&e.Type, "type", "category", "Kind of screen the pin opens.")
	cmd.Flags().StringVar(&e.Title, "title", "", "Title shown for the pin.")
	cmd.Flags().StringVar(&e.Path, "path", "", "Where the pin leads.")

	topLevel.AddCommand(cmd)
}

func addRecent(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently viewed categories.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service()
			if err != nil {
				return output.HandleError(err)
			}
			s := favorite.Recent{
				JSON:    output.JSON,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
