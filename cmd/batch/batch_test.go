package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrichard/bourso-import/cmd/batch"
)

func TestBatchCommand_Metadata(t *testing.T) {
	assert.Equal(t, "batch", batch.Cmd.Use)
	assert.Contains(t, batch.Cmd.Short, "directory")
	assert.NotNil(t, batch.Cmd.Run)
}

func TestBatchCommand_Flags(t *testing.T) {
	dirFlag := batch.Cmd.Flags().Lookup("dir")
	require.NotNil(t, dirFlag)
	assert.Equal(t, "d", dirFlag.Shorthand)

	accountFlag := batch.Cmd.Flags().Lookup("account")
	require.NotNil(t, accountFlag)
	assert.Equal(t, "a", accountFlag.Shorthand)

	formatFlag := batch.Cmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "f", formatFlag.Shorthand)
}
