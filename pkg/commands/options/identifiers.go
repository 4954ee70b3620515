package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/ritual/pkg/item"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     item.ID
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each item.")
}

// ParseID fills o.ID from a positional argument.
func (o *IDOptions) ParseID(raw string) error {
	id, err := item.ParseID(raw)
	if err != nil {
		return err
	}
	o.ID = id
	return nil
}
