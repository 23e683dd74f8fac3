package domain

import (
	"context"
	"fmt"
)

// PaymentMethodsProvider looks up payment methods at the payment provider
type PaymentMethodsProvider interface {
	GetPaymentMethods(ctx context.Context, credentials Credentials, request SelectionRequest) (*MethodSet, error)
}

// ProviderError is a failure reported by the payment provider or its transport.
// Code is the provider status code, 0 when no response was received.
type ProviderError struct {
	Message string
	Code    int
	Err     error
}

// NewProviderError creates a new provider error
func NewProviderError(code int, message string, err error) *ProviderError {
	return &ProviderError{
		Message: message,
		Code:    code,
		Err:     err,
	}
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("paynow: %s (code %d): %v", e.Message, e.Code, e.Err)
	}
	return fmt.Sprintf("paynow: %s (code %d)", e.Message, e.Code)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
