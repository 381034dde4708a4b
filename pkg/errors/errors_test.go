// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/hilite/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "unterminated_string",
			code:    errors.ErrUnterminatedString,
			message: "string not closed",
			wantStr: "[UNTERMINATED_STRING] string not closed",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "no input files",
			wantStr: "[INVALID_INPUT] no input files",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrFileCreate, "cannot create %s with mode %o", "out.html", 0644)
	assert.Equal(t, "cannot create out.html with mode 644", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("disk full")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileWrite, "write failed")

		assert.Equal(t, errors.ErrFileWrite, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[FILE_WRITE] write failed: disk full", err.Error())
		assert.True(t, stderrors.Is(err, baseErr))
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrUnterminatedComment, "comment not closed").
		WithDetail("line", 3)
	wrapped := fmt.Errorf("highlighting Foo.java: %w", err)

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrUnterminatedComment))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrUnterminatedString))
	assert.Equal(t, errors.ErrUnterminatedComment, errors.GetErrorCode(wrapped))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))

	details := errors.GetErrorDetails(wrapped)
	require.NotNil(t, details)
	assert.Equal(t, 3, details["line"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIs(t *testing.T) {
	a := errors.New(errors.ErrFileExists, "a")
	b := errors.New(errors.ErrFileExists, "b")
	c := errors.New(errors.ErrAborted, "c")

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, c))
}

func TestIsScanError(t *testing.T) {
	assert.True(t, errors.IsScanError(errors.New(errors.ErrUnterminatedString, "x")))
	assert.True(t, errors.IsScanError(errors.New(errors.ErrUnterminatedComment, "x")))
	assert.False(t, errors.IsScanError(errors.New(errors.ErrFileWrite, "x")))
	assert.False(t, errors.IsScanError(nil))
}
