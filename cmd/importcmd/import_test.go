package importcmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrichard/bourso-import/cmd/importcmd"
)

func TestImportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "import", importcmd.Cmd.Use)
	assert.Contains(t, importcmd.Cmd.Short, "Import")
	assert.NotNil(t, importcmd.Cmd.Run)
}

func TestImportCommand_Flags(t *testing.T) {
	inputFlag := importcmd.Cmd.Flags().Lookup("input")
	require.NotNil(t, inputFlag)
	assert.Equal(t, "i", inputFlag.Shorthand)

	accountFlag := importcmd.Cmd.Flags().Lookup("account")
	require.NotNil(t, accountFlag)
	assert.Equal(t, "a", accountFlag.Shorthand)
	assert.Equal(t, "int64", accountFlag.Value.Type())

	formatFlag := importcmd.Cmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "f", formatFlag.Shorthand)
	assert.Equal(t, "", formatFlag.DefValue)
}
