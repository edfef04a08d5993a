package cli

import (
	"github.com/periotto3/kintai-app/internal/domain"
	"github.com/periotto3/kintai-app/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Attendance service.AttendanceService
	Reports    service.ReportService
	Clock      service.Clock
}

// today returns the current calendar date; every command operates on it.
func (a *App) today() string {
	return a.Clock.Now().Format(domain.DateLayout)
}

// NewRootCmd creates the top-level "kintai" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "kintai",
		Short: "Personal attendance tracker",
	}

	root.AddCommand(
		newInCmd(app),
		newOutCmd(app),
		newTodayCmd(app),
		newLogCmd(app),
	)

	return root
}
