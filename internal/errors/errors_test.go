package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Creation(t *testing.T) {
	message := "order not found"
	err := NewNotFoundError(message)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
}

func TestNotFoundError_IsNotFoundError(t *testing.T) {
	err := NewNotFoundError("test not found")

	notFoundErr, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, notFoundErr)
	assert.Equal(t, "test not found", notFoundErr.Message)
}

func TestNotFoundError_IsNotFoundError_Wrapped(t *testing.T) {
	err := fmt.Errorf("finding order: %w", NewNotFoundError("order not found"))

	notFoundErr, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.Equal(t, "order not found", notFoundErr.Message)
}

func TestNotFoundError_IsNotFoundError_WithOtherError(t *testing.T) {
	err := errors.New("some other error")

	notFoundErr, ok := IsNotFoundError(err)
	assert.False(t, ok)
	assert.Nil(t, notFoundErr)
}

func TestValidationError_Creation(t *testing.T) {
	message := "validation failed"
	details := []ValidationDetail{
		{Field: "user_id", Message: "user_id is required"},
		{Field: "items[0].price", Message: "price is required"},
	}

	err := NewValidationError(message, details...)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
	assert.Len(t, err.Details, 2)

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, details, ve.Details)
}

func TestInvalidArgumentError(t *testing.T) {
	err := NewInvalidArgumentError("no fields provided for update")

	assert.Equal(t, "no fields provided for update", err.Error())

	_, ok := IsInvalidArgumentError(err)
	assert.True(t, ok)

	_, ok = IsNotFoundError(err)
	assert.False(t, ok)
}

func TestPaymentRequiredError(t *testing.T) {
	tests := []struct {
		name     string
		reason   string
		expected string
	}{
		{name: "with reason", reason: "card declined", expected: "payment required: card declined"},
		{name: "without reason", reason: "", expected: "payment required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewPaymentRequiredError("payment required", tt.reason)
			assert.Equal(t, tt.expected, err.Error())

			pre, ok := IsPaymentRequiredError(err)
			assert.True(t, ok)
			assert.Equal(t, tt.reason, pre.Reason)
		})
	}
}

func TestUnimplementedError(t *testing.T) {
	var err error = NewUnimplementedError("payment provider is not implemented")

	ue, ok := IsUnimplementedError(err)
	assert.True(t, ok)
	assert.Equal(t, "payment provider is not implemented", ue.Message)
}

func TestInternalError_Creation(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError("failed to query orders", cause)

	assert.NotNil(t, err)
	assert.Equal(t, "failed to query orders", err.Message)
	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.Error(), "failed to query orders")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewInternalError("wrapper", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestInternalError_NilCause(t *testing.T) {
	err := NewInternalError("no cause", nil)

	assert.Equal(t, "no cause", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestInternalError_IsInternalError_Wrapped(t *testing.T) {
	err := fmt.Errorf("get order: %w", NewInternalError("querying order by id", errors.New("timeout")))

	ie, ok := IsInternalError(err)
	assert.True(t, ok)
	assert.Equal(t, "querying order by id", ie.Message)

	_, ok = IsInternalError(NewNotFoundError("order not found"))
	assert.False(t, ok)
}
