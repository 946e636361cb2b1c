package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/di-awab/priseitup/internal/api/client"
)

func historyCmd() *cobra.Command {
	historyRoot := &cobra.Command{
		Use:   "history",
		Short: "Browse appraisal history",
	}

	historyRoot.AddCommand(
		historyListCmd(),
		historyGetCmd(),
	)

	return historyRoot
}

func historyListCmd() *cobra.Command {
	var (
		deviceType string
		brand      string
		limit      int
		offset     int
		orderBy    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List past appraisals with optional filters",
		Example: `  # List all appraisals
  pit history list

  # Filter by device type and brand
  pit history list --type smartphone --brand apple

  # Sort by amount with pagination
  pit history list --order-by amount --limit 20 --offset 40`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListAppraisals(context.Background(), &apiclient.ListAppraisalsParams{
				DeviceType: deviceType,
				Brand:      brand,
				Limit:      limit,
				Offset:     offset,
				OrderBy:    orderBy,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Appraisals) == 0 {
				fmt.Println("No appraisals found.")
				return nil
			}

			fmt.Printf("Showing %d of %d appraisals\n\n", len(resp.Appraisals), resp.Total)
			return printAppraisalsTable(resp.Appraisals)
		},
	}

	cmd.Flags().StringVar(&deviceType, "type", "", "device type filter")
	cmd.Flags().StringVar(&brand, "brand", "", "brand filter")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort order (created_at, amount)")

	return cmd
}

func historyGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show appraisal details",
		Example: `  pit history get abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			a, err := c.GetAppraisal(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(a)
			}

			return printAppraisalDetail(a)
		},
	}
}
