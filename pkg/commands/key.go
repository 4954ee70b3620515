package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ritual/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "key",
		Aliases: []string{"legend"},
		Short:   "Show the meaning of the marks printed next to items.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := key.Key{}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
