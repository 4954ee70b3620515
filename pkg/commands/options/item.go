package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/ritual/pkg/app"
)

// ItemOptions holds the editable item fields.
type ItemOptions struct {
	Text    string
	Count   int
	Source  string
	Benefit string
}

func AddItemArgs(cmd *cobra.Command, o *ItemOptions) {
	cmd.Flags().StringVar(&o.Text, "text", "", "Item text.")
	cmd.Flags().IntVarP(&o.Count, "count", "n", 1, "Repetitions needed to complete the item.")
	cmd.Flags().StringVar(&o.Source, "source", "", "Where the item comes from.")
	cmd.Flags().StringVar(&o.Benefit, "benefit", "", "Why the item is worth doing.")
}

// Patch builds an app.Patch holding only the flags the user set.
func (o *ItemOptions) Patch(cmd *cobra.Command) app.Patch {
	var p app.Patch
	if cmd.Flags().Changed("text") {
		p.Text = &o.Text
	}
	if cmd.Flags().Changed("count") {
		p.Count = &o.Count
	}
	if cmd.Flags().Changed("source") {
		p.Source = &o.Source
	}
	if cmd.Flags().Changed("benefit") {
		p.Benefit = &o.Benefit
	}
	return p
}
