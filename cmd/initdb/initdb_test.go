package initdb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mrichard/bourso-import/cmd/initdb"
)

func TestInitDBCommand_Metadata(t *testing.T) {
	assert.Equal(t, "init-db", initdb.Cmd.Use)
	assert.Contains(t, initdb.Cmd.Short, "schema")
	assert.Contains(t, initdb.Cmd.Long, "Re-running is\nsafe")
	assert.NotNil(t, initdb.Cmd.Run)
}
