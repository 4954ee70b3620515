// Package options defines shared flag helpers for CLI commands.
package options

import (
	"strings"

	"github.com/spf13/cobra"
)

// CategoryOptions captures the category a command works on.
type CategoryOptions struct {
	Category string
}

// SetFromArgs joins args into a category key, so multi-word names need no
// quoting.
func (o *CategoryOptions) SetFromArgs(args []string) {
	o.Category = strings.TrimSpace(strings.Join(args, " "))
}

// AddCategoryArgs wires the --category flag on the provided command.
func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Specify the category.")
}
