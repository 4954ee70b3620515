package commands

import (
	"io"

	"github.com/spf13/cobra"

	"tableflip.dev/ritual/pkg/app"
	"tableflip.dev/ritual/pkg/commands/options"
	"tableflip.dev/ritual/pkg/logging"
	"tableflip.dev/ritual/pkg/store"
)

var (
	output = &options.OutputOptions{}

	config store.Config
	logs   io.Closer
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "ritual",
		Short: options.Wrap80("Daily rituals on the command line: count repetitions, skip, reorder and edit your own copy of the catalog."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			config = cfg
			logs, err = logging.Setup(logging.Options{File: cfg.LogFile(), Level: cfg.LogLevel()})
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logs != nil {
				return logs.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddOutputArg(cmd, output)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addList(topLevel)
	addTap(topLevel)
	addSkip(topLevel)
	addReset(topLevel)
	addTarget(topLevel)
	addEdit(topLevel)
	addRevert(topLevel)
	addDelete(topLevel)
	addRestore(topLevel)
	addAdd(topLevel)
	addOrder(topLevel)
	addMove(topLevel)
	addCategories(topLevel)
	addFavorite(topLevel)
	addPin(topLevel)
	addRecent(topLevel)
	addStats(topLevel)
	addWatch(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// service opens the stores named by the loaded config.
func service() (*app.Service, error) {
	return app.Open(config)
}
