package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/periotto3/kintai-app/internal/cli/formatter"
	"github.com/periotto3/kintai-app/internal/service"
	"github.com/spf13/cobra"
)

func newOutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "out",
		Short: "Clock out of the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			today := app.today()

			sess, err := app.Attendance.ClockOut(ctx, today)
			if errors.Is(err, service.ErrNoOpenSession) {
				// Severity depends on whether today has any attendance at
				// all: a first-ever clock-out is an error, one after
				// closing is just a reminder.
				day, dayErr := app.Attendance.Day(ctx, today)
				if dayErr == nil && len(day.Sessions) > 0 {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Warning("Already clocked out."))
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Failure("Clock in first."))
				}
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(),
				formatter.Success("Clocked out at "+formatter.FormatTimestamp(*sess.ClockOut)))
			return nil
		},
	}
}
