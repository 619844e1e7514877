// Package categorize handles the categorization dry-run command.
package categorize

import (
	"fmt"

	"github.com/spf13/cobra"

	"mrichard/bourso-import/cmd/root"
	"mrichard/bourso-import/internal/categorizer"
	"mrichard/bourso-import/internal/store"
)

// Cmd represents the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Resolve the category a transaction would get",
	Long: `Resolve the category a transaction would get, without touching the
database. The taxonomy is loaded from the configured seed file, so the result
shows the hint and keyword tiers; user rules live in the database and are not
consulted here.`,
	Run: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Transaction description")
	Cmd.Flags().StringVarP(&root.Merchant, "merchant", "m", "", "Merchant name (optional)")
	Cmd.Flags().StringVarP(&root.Hint, "hint", "b", "", "Bank-supplied category hint (optional)")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	if root.Description == "" && root.Merchant == "" {
		root.Log.Error("A description or a merchant is required")
		return
	}

	seed, err := store.LoadSeedFile(root.Cfg.Seed.File)
	if err != nil {
		root.Log.WithError(err).Fatal("Unable to load seed file")
	}

	ctx := cmd.Context()
	mem := store.NewMemoryStore()
	if err := store.Seed(ctx, mem, seed, root.Log); err != nil {
		root.Log.WithError(err).Fatal("Unable to seed taxonomy")
	}

	cat := categorizer.NewCategorizer(mem, mem, root.Log)
	categoryID, err := cat.Resolve(ctx, categorizer.Transaction{
		Description: root.Description,
		Merchant:    root.Merchant,
		BankHint:    root.Hint,
	})
	if err != nil {
		root.Log.WithError(err).Fatal("Categorization failed")
	}

	if categoryID == nil {
		fmt.Println("No category matched")
		return
	}

	categories, err := mem.ListCategories(ctx)
	if err != nil {
		root.Log.WithError(err).Fatal("Unable to list categories")
	}
	for _, c := range categories {
		if c.ID == *categoryID {
			fmt.Printf("Category: %s\n", c.Name)
			return
		}
	}
	fmt.Printf("Category ID: %d\n", *categoryID)
}
