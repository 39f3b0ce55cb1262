package domain

import (
	"go-shop/pkg/errors"
)

// Domain-specific errors
var (
	ErrNameRequired   = errors.NewValidation("The field name is required", nil)
	ErrTypeRequired   = errors.NewValidation("The field type is required", nil)
	ErrTypeNotAllowed = errors.NewValidation(
		"Invalid payment type. Allowed types are: "+AllowedTypesList(), nil)
)

// NewPaymentTypeNotFound creates a not found error with the payment type ID
func NewPaymentTypeNotFound(id string) error {
	return errors.NewNotFound("payment type", id)
}
