package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func extractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <description>",
		Short: "Extract device attributes from a description",
		Example: `  pit extract "Apple iPhone 13 Pro 256GB, excellent condition"
  pit extract "dell xps 15 like new" --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			attrs, err := c.Extract(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(attrs)
			}

			return printAttributes(attrs)
		},
	}
}
