package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mvcarvalho/clinigo/internal/config"
	"github.com/mvcarvalho/clinigo/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "clinigo",
	Short: "Single-clinic scheduling, patient records and billing",
	Long: `clinigo manages a therapy clinic from the terminal: patients and
their clinical records, therapist schedules with conflict-checked
bookings, and a simple ledger of session payments and expenses.`,
}

// initApp loads configuration, sets up logging and opens the database.
// Panics on failure: without the store nothing below can run.
func initApp() {
	c, err := config.Load()
	if err != nil {
		panic(err)
	}
	cfg = c

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)

	if err := db.Initialize(cfg.DatabasePath()); err != nil {
		panic(err)
	}
}

// withDB wraps a command function to initialize the app first
func withDB(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initApp()
		fn(cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("clinigo %s (commit %s, built %s)\n", version, commit, date)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(patientCmd)
	rootCmd.AddCommand(therapistCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(availCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(financeCmd)
	rootCmd.AddCommand(expenseCmd)
	rootCmd.AddCommand(agendaCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(versionCmd)
}
