package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("did not find expected key")
	err := NewParseError("content.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "content.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: content.yaml:12: did not find expected key", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("content.yaml", 0, stdErrors.New("permission denied"))
	require.Equal(t, "parse error: content.yaml: permission denied", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("gallery.images", "gallery.images failed validation for tag 'min'", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "gallery.images", validationErr.Field)
	require.Contains(t, err.Error(), "failed validation")
}

func TestCommandErrorIncludesSuggestion(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("no such file")
	err := NewCommandError("validate", "reading content", underlying, "Check the path and try again.")

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	require.Equal(t, "validate", cmdErr.Command)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "Suggestion: Check the path and try again.")
}
