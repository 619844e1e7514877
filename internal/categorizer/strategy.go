package categorizer

import "context"

// Transaction carries the fields the categorizer looks at. Everything else
// about the row is irrelevant to category resolution.
type Transaction struct {
	Description string // cleaned statement label
	Merchant    string // counterpart found by the bank, may be empty
	BankHint    string // bank-supplied category label, may be empty
}

// Strategy defines one method for resolving a transaction's category.
// Strategies are tried in a fixed order and the first match wins.
type Strategy interface {
	// Resolve attempts to resolve a category ID for the transaction.
	// Returns the category ID, a boolean indicating whether resolution
	// succeeded, and any error encountered.
	Resolve(ctx context.Context, tx Transaction) (int64, bool, error)

	// Name returns the name of this strategy for logging purposes.
	Name() string
}
