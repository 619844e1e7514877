package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnsupportedFormatError(t *testing.T) {
	err := &UnsupportedFormatError{Format: "hsbc"}
	assert.Equal(t, `unsupported statement format: "hsbc"`, err.Error())
}

func TestParseError_Unwrap(t *testing.T) {
	cause := errors.New("not a number")
	err := &ParseError{Field: "amount", Value: "abc", Err: cause}

	assert.Contains(t, err.Error(), `amount="abc"`)
	assert.True(t, errors.Is(err, cause))

	wrapped := fmt.Errorf("row 3: %w", err)
	var parseErr *ParseError
	assert.True(t, errors.As(wrapped, &parseErr))
}

func TestMissingDataError(t *testing.T) {
	err := &MissingDataError{Row: 7}
	assert.Equal(t, "row 7: missing data", err.Error())
}
