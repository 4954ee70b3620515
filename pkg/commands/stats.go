package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ritual/pkg/runner/stats"
	"tableflip.dev/ritual/pkg/timeutil"
)

func addStats(topLevel *cobra.Command) {
	window := timeutil.DefaultWindow
	days := 0

	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"report"},
		Short:   "Summarise recorded days and the current streak.",
		Example: `
ritual stats
ritual stats --window 2w3d
ritual stats --window all
`,
		Args: func(_ *cobra.Command, _ []string) error {
			var err error
			days, _, err = timeutil.ParseWindow(window)
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := service()
			if err != nil {
				return output.HandleError(err)
			}
			s := stats.Stats{
				Window:  days,
				JSON:    output.JSON,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&window, "window", "w", timeutil.DefaultWindow, "Days to report, such as 3d or 2w, or all.")

	topLevel.AddCommand(cmd)
}
