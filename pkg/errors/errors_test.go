package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("config.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "config.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "config.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("config.toml", 0, stdErrors.New("bad key"))
	require.Equal(t, "parse error: config.toml: bad key", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("snippet.title", "title is required", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "snippet.title", validationErr.Field)
	require.Equal(t, "validation error: snippet.title: title is required", err.Error())
}

func TestStorageErrorIncludesBackendAndKey(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("disk full")
	err := NewStorageError("file", "set", "devtools-snippets", underlying)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, "file", storageErr.Backend)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), `set "devtools-snippets"`)
}

func TestClipboardErrorUnwraps(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("no display")
	err := NewClipboardError("system", underlying)

	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "clipboard error [system]: no display", err.Error())
}
