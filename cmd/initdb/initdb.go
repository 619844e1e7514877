// Package initdb handles database schema creation and seeding.
package initdb

import (
	"github.com/spf13/cobra"

	"mrichard/bourso-import/cmd/root"
	"mrichard/bourso-import/internal/store"
)

// Cmd represents the init-db command.
var Cmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the database schema and seed categories and accounts",
	Long: `Create the database tables if they do not exist, then seed the category
taxonomy and default accounts from the configured seed file. Re-running is
safe; existing rows are left untouched.`,
	Run: initDBFunc,
}

func initDBFunc(cmd *cobra.Command, args []string) {
	st, err := root.OpenStore()
	if err != nil {
		root.Log.WithError(err).Fatal("Unable to connect to database")
	}
	defer func() { _ = st.Close() }()

	ctx := cmd.Context()
	if err := st.InitSchema(ctx); err != nil {
		root.Log.WithError(err).Fatal("Unable to create schema")
	}

	seed, err := store.LoadSeedFile(root.Cfg.Seed.File)
	if err != nil {
		root.Log.WithError(err).Fatal("Unable to load seed file")
	}
	if err := store.Seed(ctx, st, seed, root.Log); err != nil {
		root.Log.WithError(err).Fatal("Seeding failed")
	}

	root.Log.Info("Database initialized")
}
