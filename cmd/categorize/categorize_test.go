package categorize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrichard/bourso-import/cmd/categorize"
)

func TestCategorizeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "categorize", categorize.Cmd.Use)
	assert.Contains(t, categorize.Cmd.Short, "category")
	assert.NotNil(t, categorize.Cmd.Run)
}

func TestCategorizeCommand_Flags(t *testing.T) {
	descriptionFlag := categorize.Cmd.Flags().Lookup("description")
	require.NotNil(t, descriptionFlag)
	assert.Equal(t, "d", descriptionFlag.Shorthand)

	merchantFlag := categorize.Cmd.Flags().Lookup("merchant")
	require.NotNil(t, merchantFlag)
	assert.Equal(t, "m", merchantFlag.Shorthand)

	hintFlag := categorize.Cmd.Flags().Lookup("hint")
	require.NotNil(t, hintFlag)
	assert.Equal(t, "b", hintFlag.Shorthand)
}
