package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/periotto3/kintai-app/internal/cli"
	"github.com/periotto3/kintai-app/internal/cli/formatter"
	"github.com/periotto3/kintai-app/internal/db"
	"github.com/periotto3/kintai-app/internal/repository"
	"github.com/periotto3/kintai-app/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.kintai/kintai.db
	dbPath := os.Getenv("KINTAI_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".kintai", "kintai.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	sessionRepo := repository.NewSQLiteSessionRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	clock := service.RealClock{}

	var observers []service.UseCaseObserver
	if os.Getenv("KINTAI_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Attendance: service.NewAttendanceService(sessionRepo, uow, clock, observers...),
		Reports:    service.NewReportService(sessionRepo, observers...),
		Clock:      clock,
	}

	// Plain output when piped or redirected.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.DisableColor()
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
