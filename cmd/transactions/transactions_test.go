package transactions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrichard/bourso-import/cmd/transactions"
)

func TestTransactionsCommand_Metadata(t *testing.T) {
	assert.Equal(t, "transactions", transactions.Cmd.Use)
	assert.Contains(t, transactions.Cmd.Short, "List")
	assert.NotNil(t, transactions.Cmd.Run)
}

func TestTransactionsCommand_Flags(t *testing.T) {
	accountFlag := transactions.Cmd.Flags().Lookup("account")
	require.NotNil(t, accountFlag)
	assert.Equal(t, "a", accountFlag.Shorthand)
	assert.Equal(t, "0", accountFlag.DefValue)

	limitFlag := transactions.Cmd.Flags().Lookup("limit")
	require.NotNil(t, limitFlag)
	assert.Equal(t, "50", limitFlag.DefValue)

	offsetFlag := transactions.Cmd.Flags().Lookup("offset")
	require.NotNil(t, offsetFlag)
	assert.Equal(t, "0", offsetFlag.DefValue)
}
