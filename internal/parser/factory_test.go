package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrichard/bourso-import/internal/logging"
	"mrichard/bourso-import/internal/parsererror"
)

func TestGet_Boursorama(t *testing.T) {
	p, err := Get(Boursorama, &logging.MockLogger{})
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestGet_UnsupportedFormat(t *testing.T) {
	_, err := Get("hsbc", &logging.MockLogger{})
	require.Error(t, err)

	var unsupported *parsererror.UnsupportedFormatError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "hsbc", unsupported.Format)
}
