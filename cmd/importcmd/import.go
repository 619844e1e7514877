// Package importcmd handles the statement import command.
package importcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mrichard/bourso-import/cmd/root"
	"mrichard/bourso-import/internal/categorizer"
	"mrichard/bourso-import/internal/importer"
	"mrichard/bourso-import/internal/parser"
)

// Cmd represents the import command.
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import a bank statement file into an account",
	Long: `Import a bank statement file into an account. Rows already imported are
skipped; new rows are categorized and inserted.`,
	Run: importFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.InputFile, "input", "i", "", "Statement file to import")
	Cmd.Flags().Int64VarP(&root.AccountID, "account", "a", 0, "Target account ID (default from configuration)")
	Cmd.Flags().StringVarP(&root.Format, "format", "f", "", "Statement format (default from configuration)")
	_ = Cmd.MarkFlagRequired("input")
}

func importFunc(cmd *cobra.Command, args []string) {
	accountID := root.AccountID
	if accountID == 0 {
		accountID = root.Cfg.Import.DefaultAccount
	}
	format := root.Format
	if format == "" {
		format = root.Cfg.Import.DefaultFormat
	}

	f, err := os.Open(root.InputFile) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		root.Log.WithError(err).Fatal("Unable to open input file")
	}
	defer func() { _ = f.Close() }()

	st, err := root.OpenStore()
	if err != nil {
		root.Log.WithError(err).Fatal("Unable to connect to database")
	}
	defer func() { _ = st.Close() }()

	cat := categorizer.NewCategorizer(st, st, root.Log)
	imp := importer.New(st, st, cat, root.Log)

	stats, err := imp.ImportBatch(cmd.Context(), f, accountID, parser.Format(format))
	if err != nil {
		root.Log.WithError(err).Fatal("Import failed")
	}

	fmt.Printf("Imported %d of %d rows (%d duplicates, %d errors)\n",
		stats.Imported, stats.TotalRows, stats.Duplicates, stats.Errors)
	for _, detail := range stats.ErrorDetails {
		fmt.Println(detail)
	}
}
