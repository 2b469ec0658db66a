package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidationIssueString tests the log rendering of an issue
func TestValidationIssueString(t *testing.T) {
	issue := ValidationIssue{
		Location: []string{"body", "items", "0", "price"},
		Message:  "Field required",
		Type:     "missing",
	}
	assert.Equal(t, "body.items.0.price: Field required (missing)", issue.String())
}

// TestNewValidationError tests validation error construction
func TestNewValidationError(t *testing.T) {
	issues := []ValidationIssue{{Location: []string{"query", "q"}, Message: "Field required", Type: "missing"}}
	err := NewValidationError(issues)

	assert.Equal(t, http.StatusUnprocessableEntity, err.StatusCode)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "query.q")
}

// TestParseError tests error classification
func TestParseError(t *testing.T) {
	t.Run("AppErrorPassthrough", func(t *testing.T) {
		original := NewBadRequestError("bad input")
		assert.Same(t, original, ParseError(original))
	})

	t.Run("WrappedSentinel", func(t *testing.T) {
		err := ParseError(ErrBadRequest)
		assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	})

	t.Run("NotFoundSentinel", func(t *testing.T) {
		err := ParseError(ErrNotFound)
		assert.Equal(t, http.StatusNotFound, err.StatusCode)
		assert.Equal(t, "Not Found", err.Message)
	})

	t.Run("UnknownError", func(t *testing.T) {
		err := ParseError(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	})
}

// TestIsValidationError tests validation error detection
func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError(nil)))
	assert.False(t, IsValidationError(NewBadRequestError("nope")))
	assert.False(t, IsValidationError(errors.New("boom")))
}

// TestStatusCode tests the status code helper
func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusCode(NewBadRequestError("bad")))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("plain")))
}
