package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	err := New(CodeMissingRequiredField)

	assert.Equal(t, CodeMissingRequiredField, err.Code)
	assert.NotEmpty(t, err.UserMessage)
	assert.Equal(t, err.UserMessage, err.Message)
	assert.Nil(t, err.Cause)
}

func TestNew_UnknownCodeFallsBack(t *testing.T) {
	err := New(Code("SOMETHING_ELSE"))
	assert.Equal(t, CodeUnknown, err.Code)
}

func TestEveryCodeHasUserMessage(t *testing.T) {
	for _, code := range Codes() {
		t.Run(string(code), func(t *testing.T) {
			assert.True(t, code.Valid())
			assert.NotEmpty(t, New(code).UserMessage)
			assert.NotZero(t, code.HTTPStatus())
		})
	}
}

func TestFrom(t *testing.T) {
	t.Run("structured error passes through", func(t *testing.T) {
		orig := New(CodeAuthFailed, WithMessage("token expired"))
		assert.Same(t, orig, From(orig))
	})

	t.Run("wrapped structured error is unwrapped", func(t *testing.T) {
		orig := New(CodeNetworkError)
		got := From(fmt.Errorf("insert: %w", orig))
		assert.Same(t, orig, got)
	})

	t.Run("plain error becomes UNKNOWN", func(t *testing.T) {
		cause := errors.New("boom: relation \"intakes\" does not exist")
		got := From(cause)

		assert.Equal(t, CodeUnknown, got.Code)
		assert.Equal(t, cause.Error(), got.Message)
		assert.NotContains(t, got.UserMessage, "intakes")
		assert.ErrorIs(t, got, cause)
	})

	t.Run("non-error value becomes UNKNOWN", func(t *testing.T) {
		got := From(42)
		assert.Equal(t, CodeUnknown, got.Code)
		assert.Equal(t, "42", got.Message)
		require.Error(t, got.Cause)
	})

	t.Run("nil becomes UNKNOWN", func(t *testing.T) {
		assert.Equal(t, CodeUnknown, From(nil).Code)
		var typedNil *Error
		assert.Equal(t, CodeUnknown, From(typedNil).Code)
	})
}

func TestFromBackend(t *testing.T) {
	tests := []struct {
		backend string
		want    Code
	}{
		{BackendConnection, CodeNetworkError},
		{BackendUniqueViolation, CodeDBUniqueViolation},
		{BackendForeignKeyViolation, CodeDBForeignKeyViolation},
		{BackendServiceUnavailable, CodeServiceUnavailable},
		{BackendNoRows, CodeDBInsertFailed},
		{"42P01", CodeDBInsertFailed},
		{"", CodeDBInsertFailed},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			raw := `duplicate key value violates unique constraint "intakes_pkey"`
			got := FromBackend(tt.backend, raw, nil)

			assert.Equal(t, tt.want, got.Code)
			assert.Equal(t, raw, got.Message)
			assert.NotContains(t, got.UserMessage, "intakes_pkey")
		})
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("submit: %w", New(CodeDBUniqueViolation, WithMessage("raw")))
	assert.ErrorIs(t, err, New(CodeDBUniqueViolation))
	assert.NotErrorIs(t, err, New(CodeDBInsertFailed))
	assert.Equal(t, CodeDBUniqueViolation, CodeOf(err))
	assert.Equal(t, CodeUnknown, CodeOf(errors.New("plain")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, CodeMissingRequiredField.HTTPStatus())
	assert.Equal(t, http.StatusConflict, CodeDBUniqueViolation.HTTPStatus())
	assert.Equal(t, http.StatusUnauthorized, CodeAuthFailed.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, CodeUnknown.HTTPStatus())
}
