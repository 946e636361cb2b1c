package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Short:   "Show appraisal statistics",
		Example: `  pit stats`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			s, err := c.Stats(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(s)
			}

			return printStats(s)
		},
	}
}
