// Package batch handles the directory import command.
package batch

import (
	"fmt"

	"github.com/spf13/cobra"

	"mrichard/bourso-import/cmd/root"
	"mrichard/bourso-import/internal/batch"
	"mrichard/bourso-import/internal/categorizer"
	"mrichard/bourso-import/internal/importer"
	"mrichard/bourso-import/internal/parser"
)

// Cmd represents the batch command.
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Import every statement file in a directory",
	Long: `Import every .csv file in a directory into an account, in filename order.
Rows already imported by earlier runs or earlier files are skipped.`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.InputDir, "dir", "d", "", "Directory of statement files to import")
	Cmd.Flags().Int64VarP(&root.AccountID, "account", "a", 0, "Target account ID (default from configuration)")
	Cmd.Flags().StringVarP(&root.Format, "format", "f", "", "Statement format (default from configuration)")
	_ = Cmd.MarkFlagRequired("dir")
}

func batchFunc(cmd *cobra.Command, args []string) {
	accountID := root.AccountID
	if accountID == 0 {
		accountID = root.Cfg.Import.DefaultAccount
	}
	format := root.Format
	if format == "" {
		format = root.Cfg.Import.DefaultFormat
	}

	st, err := root.OpenStore()
	if err != nil {
		root.Log.WithError(err).Fatal("Unable to connect to database")
	}
	defer func() { _ = st.Close() }()

	cat := categorizer.NewCategorizer(st, st, root.Log)
	imp := importer.New(st, st, cat, root.Log)
	p := batch.NewProcessor(imp, root.Log)

	stats, err := p.Run(cmd.Context(), root.InputDir, accountID, parser.Format(format))
	if err != nil {
		root.Log.WithError(err).Fatal("Batch import failed")
	}

	fmt.Printf("Imported %d of %d rows (%d duplicates, %d errors)\n",
		stats.Imported, stats.TotalRows, stats.Duplicates, stats.Errors)
	for _, detail := range stats.ErrorDetails {
		fmt.Println(detail)
	}
}
