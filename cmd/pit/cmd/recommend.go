package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func recommendCmd() *cobra.Command {
	var (
		deviceType string
		brand      string
		model      string
		price      float64
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Get cross-sell recommendations",
		Example: `  pit recommend --type smartphone --brand apple --model "iPhone 13" --price 650
  pit recommend --type laptop --brand dell`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.Recommendations(context.Background(), deviceType, brand, model, price)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			return printRecommendationsTable(resp.Recommendations)
		},
	}

	cmd.Flags().StringVar(&deviceType, "type", "smartphone", "device category")
	cmd.Flags().StringVar(&brand, "brand", "", "device brand")
	cmd.Flags().StringVar(&model, "model", "", "device model")
	cmd.Flags().Float64Var(&price, "price", 0, "reference price (0 uses defaults)")

	return cmd
}
