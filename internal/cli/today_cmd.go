package cli

import (
	"context"
	"fmt"

	"github.com/periotto3/kintai-app/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's sessions and clock state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := app.Attendance.Day(context.Background(), app.today())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDay(day))
			return nil
		},
	}
}
