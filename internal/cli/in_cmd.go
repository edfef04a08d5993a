package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/periotto3/kintai-app/internal/cli/formatter"
	"github.com/periotto3/kintai-app/internal/service"
	"github.com/spf13/cobra"
)

func newInCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "in",
		Short: "Clock in for today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Attendance.ClockIn(context.Background(), app.today())
			if errors.Is(err, service.ErrAlreadyClockedIn) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Warning("Already clocked in."))
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(),
				formatter.Success("Clocked in at "+formatter.FormatTimestamp(*sess.ClockIn)))
			return nil
		},
	}
}
