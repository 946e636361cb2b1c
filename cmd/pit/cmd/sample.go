package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func sampleCmd() *cobra.Command {
	var (
		deviceType string
		brand      string
		model      string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate a simulated market sample",
		Long: "Generate a fresh simulated market sample for a device. Each run\n" +
			"draws new random listings, so results differ between calls.",
		Example: `  pit sample --type smartphone --brand apple --model "iPhone 13"
  pit sample --type laptop --brand lenovo --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			s, err := c.MarketSample(context.Background(), deviceType, brand, model)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(s)
			}

			return printSample(s)
		},
	}

	cmd.Flags().StringVar(&deviceType, "type", "smartphone", "device category")
	cmd.Flags().StringVar(&brand, "brand", "", "device brand")
	cmd.Flags().StringVar(&model, "model", "", "device model")

	return cmd
}
