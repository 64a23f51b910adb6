package errors

import (
	stderrors "errors"
	"fmt"
)

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	var nfe *NotFoundError
	if stderrors.As(err, &nfe) {
		return nfe, true
	}
	return nil, false
}

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if stderrors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// InvalidArgumentError is a well-formed request that carries nothing to act on,
// such as an update with no recognised fields.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

func NewInvalidArgumentError(message string) *InvalidArgumentError {
	return &InvalidArgumentError{Message: message}
}

func IsInvalidArgumentError(err error) (*InvalidArgumentError, bool) {
	var iae *InvalidArgumentError
	if stderrors.As(err, &iae) {
		return iae, true
	}
	return nil, false
}

type PaymentRequiredError struct {
	Message string
	Reason  string
}

func (e *PaymentRequiredError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Reason)
	}
	return e.Message
}

func NewPaymentRequiredError(message, reason string) *PaymentRequiredError {
	return &PaymentRequiredError{
		Message: message,
		Reason:  reason,
	}
}

func IsPaymentRequiredError(err error) (*PaymentRequiredError, bool) {
	var pre *PaymentRequiredError
	if stderrors.As(err, &pre) {
		return pre, true
	}
	return nil, false
}

type UnimplementedError struct {
	Message string
}

func (e *UnimplementedError) Error() string {
	return e.Message
}

func NewUnimplementedError(message string) *UnimplementedError {
	return &UnimplementedError{Message: message}
}

func IsUnimplementedError(err error) (*UnimplementedError, bool) {
	var ue *UnimplementedError
	if stderrors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}

func IsInternalError(err error) (*InternalError, bool) {
	var ie *InternalError
	if stderrors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}
