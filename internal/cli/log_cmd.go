package cli

import (
	"context"
	"fmt"

	"github.com/periotto3/kintai-app/internal/cli/formatter"
	"github.com/periotto3/kintai-app/internal/report"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the work log with day and range totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var r *report.Report
			var err error
			label := "all time"
			if month != "" {
				r, err = app.Reports.Monthly(ctx, month)
				label = month
			} else {
				r, err = app.Reports.All(ctx)
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(r, label))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Restrict to a month (YYYY-MM)")

	return cmd
}
