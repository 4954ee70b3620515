package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/ritual/pkg/app"
	"tableflip.dev/ritual/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(ritual completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(ritual completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func categoryCompletions(toComplete string) []string {
	cats := completionCategories()
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		if strings.HasPrefix(c.Key, toComplete) {
			out = append(out, c.Key)
		}
	}
	return out
}

func customCategoryCompletions(toComplete string) []string {
	cats := completionCategories()
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		if c.Custom && strings.HasPrefix(c.Key, toComplete) {
			out = append(out, c.Key+"\t"+c.Title)
		}
	}
	return out
}

// completionCategories runs outside PersistentPreRunE, so it loads config
// itself.
func completionCategories() []app.CategoryInfo {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil
	}
	svc, err := app.Open(cfg)
	if err != nil {
		return nil
	}
	cats, err := svc.Categories(context.Background())
	if err != nil {
		return nil
	}
	return cats
}
