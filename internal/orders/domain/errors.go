package domain

import (
	"fmt"

	"go-shop/pkg/errors"
)

// Domain-specific errors
var (
	ErrUserRequired        = errors.NewValidation("user is required", nil)
	ErrItemsRequired       = errors.NewValidation("order must contain at least one item", nil)
	ErrItemProductRequired = errors.NewValidation("order item product is required", nil)
	ErrItemAmountInvalid   = errors.NewValidation("order item amount must be greater than 0", nil)
	ErrTotalNegative       = errors.NewValidation("total price must be non-negative", nil)
)

// NewOrderNotFound creates a not found error with the order ID
func NewOrderNotFound(id string) error {
	return errors.NewNotFound("order", id)
}

// ShortageError reports that a product had insufficient stock for the
// requested amount. It is a reservation outcome, not an infrastructure
// failure.
type ShortageError struct {
	ProductID string
}

func (e *ShortageError) Error() string {
	return fmt.Sprintf("product %s is out of stock", e.ProductID)
}

// LedgerError reports an infrastructure failure while touching the stock
// of a specific product.
type LedgerError struct {
	ProductID string
	Err       error
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("stock update failed for product %s: %v", e.ProductID, e.Err)
}

func (e *LedgerError) Unwrap() error {
	return e.Err
}
