// Package transactions handles the transaction listing command.
package transactions

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mrichard/bourso-import/cmd/root"
	"mrichard/bourso-import/internal/dateutils"
	"mrichard/bourso-import/internal/models"
)

// Cmd represents the transactions command.
var Cmd = &cobra.Command{
	Use:   "transactions",
	Short: "List imported transactions",
	Long:  `List imported transactions for an account, most recent first.`,
	Run:   transactionsFunc,
}

func init() {
	Cmd.Flags().Int64VarP(&root.AccountID, "account", "a", 0, "Account ID to list (0 for all accounts)")
	Cmd.Flags().IntVarP(&root.Limit, "limit", "l", 50, "Maximum number of transactions to show")
	Cmd.Flags().IntVar(&root.Offset, "offset", 0, "Number of transactions to skip")
}

func transactionsFunc(cmd *cobra.Command, args []string) {
	st, err := root.OpenStore()
	if err != nil {
		root.Log.WithError(err).Fatal("Unable to connect to database")
	}
	defer func() { _ = st.Close() }()

	ctx := cmd.Context()
	txs, err := st.ListTransactions(ctx, root.AccountID, root.Limit, root.Offset)
	if err != nil {
		root.Log.WithError(err).Fatal("Unable to list transactions")
	}

	categories, err := st.ListCategories(ctx)
	if err != nil {
		root.Log.WithError(err).Fatal("Unable to list categories")
	}
	names := make(map[int64]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tAMOUNT\tCATEGORY\tDESCRIPTION")
	for _, tx := range txs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			dateutils.ToISODate(tx.Date), tx.Type, tx.Amount.StringFixed(2),
			categoryName(tx, names), tx.Description)
	}
	_ = w.Flush()
}

func categoryName(tx models.Transaction, names map[int64]string) string {
	if tx.CategoryID == nil {
		return "-"
	}
	if name, ok := names[*tx.CategoryID]; ok {
		return name
	}
	return fmt.Sprintf("#%d", *tx.CategoryID)
}
