package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "failed to create subscription")

	var appErr AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_ERROR", appErr.ErrorCode())
	assert.Equal(t, "connection refused", appErr.Details())
	assert.Contains(t, err.Error(), "failed to create subscription")
}

func TestWithDetailsReturnsCopy(t *testing.T) {
	detailed := ErrSubscriptionInvalid.WithDetails("quantity must be a number")

	assert.Equal(t, "quantity must be a number", detailed.Details())
	assert.Empty(t, ErrSubscriptionInvalid.Details())
	assert.Equal(t, ErrSubscriptionInvalid.ErrorCode(), detailed.ErrorCode())
	assert.Equal(t, ErrSubscriptionInvalid.HTTPCode(), detailed.HTTPCode())
}
