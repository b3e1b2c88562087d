package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrorWrapsUnknownAsInternal(t *testing.T) {
	appErr := FromError(fmt.Errorf("boom"))
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, "internal server error: boom", appErr.Error())
}

func TestCloneMatchesTemplate(t *testing.T) {
	err := fmt.Errorf("handler: %w", Clone(ErrNotFound, "lesson not found"))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrDuplicate))
	assert.Equal(t, "lesson not found", FromError(err).Message)
}

func TestInternalKeepsUnderlyingMessage(t *testing.T) {
	appErr := Internal(errors.New("connection refused"), "failed to copy schedule")
	assert.Equal(t, "failed to copy schedule: connection refused", appErr.Error())
	assert.Equal(t, ErrInternal.Code, appErr.Code)
}
