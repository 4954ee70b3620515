package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ritual/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the catalog, categories and where progress is stored.",
		Example: `
ritual info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service()
			if err != nil {
				return output.HandleError(err)
			}
			s := info.Info{
				Config:  config,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
