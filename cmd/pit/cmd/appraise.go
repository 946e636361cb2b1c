package cmd

import (
	"context"

	"github.com/spf13/cobra"

	apiclient "github.com/di-awab/priseitup/internal/api/client"
)

func appraiseCmd() *cobra.Command {
	var (
		deviceType string
		brand      string
		model      string
		specs      string
		condition  string
		region     string
		marketAvg  float64
	)

	cmd := &cobra.Command{
		Use:   "appraise [description]",
		Short: "Appraise a used device",
		Long: "Appraise a used device from a free-text description or explicit\n" +
			"attribute flags. Structured flags skip extraction entirely.",
		Example: `  # Appraise from a free-text description
  pit appraise "Apple iPhone 13 Pro 256GB, excellent condition"

  # Appraise with explicit attributes
  pit appraise --type laptop --brand dell --model "XPS 15" --condition good

  # Supply an externally known market average
  pit appraise "Samsung Galaxy S21" --market-avg 420`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			req := &apiclient.AppraiseRequest{
				DeviceType: deviceType,
				Brand:      brand,
				Model:      model,
				Specs:      specs,
				Condition:  condition,
				Region:     region,
				MarketAvg:  marketAvg,
			}
			if len(args) == 1 {
				req.Description = args[0]
			}

			c := newClient()
			result, err := c.Appraise(context.Background(), req)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(result)
			}

			return printAppraisalResult(result)
		},
	}

	cmd.Flags().StringVar(&deviceType, "type", "smartphone", "device category")
	cmd.Flags().StringVar(&brand, "brand", "", "device brand (skips extraction)")
	cmd.Flags().StringVar(&model, "model", "", "device model (skips extraction)")
	cmd.Flags().StringVar(&specs, "specs", "", "free-form specs string")
	cmd.Flags().StringVar(&condition, "condition", "", "device condition")
	cmd.Flags().StringVar(&region, "region", "", "two-letter region code")
	cmd.Flags().Float64Var(&marketAvg, "market-avg", 0, "externally supplied market average")

	return cmd
}
