// Package root contains the root command for the application.
package root

import (
	"github.com/spf13/cobra"

	"mrichard/bourso-import/internal/config"
	"mrichard/bourso-import/internal/logging"
	"mrichard/bourso-import/internal/store"
)

var (
	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg holds the resolved configuration, populated before any command runs.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "bourso-import",
		Short: "Import Boursorama CSV statements into a transaction database.",
		Long: `bourso-import reads Boursorama CSV exports, skips rows already imported
and categorizes the rest before inserting them into Postgres.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bourso-import!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("Failed to initialize configuration")
			}
			Cfg = cfg
			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
		},
	}

	// Import command flags.
	InputFile string
	AccountID int64
	Format    string

	// Batch command flags.
	InputDir string

	// Transactions command flags.
	Limit  int
	Offset int

	// Categorize command flags.
	Description string
	Merchant    string
	Hint        string
)

// OpenStore connects to the configured Postgres database.
func OpenStore() (*store.PostgresStore, error) {
	return store.NewPostgresStore(Cfg.DSN(), Log)
}
