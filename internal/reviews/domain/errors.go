package domain

import (
	"go-shop/pkg/errors"
)

// Domain-specific errors
var (
	ErrUserRequired    = errors.NewValidation("The field user is required", nil)
	ErrProductRequired = errors.NewValidation("The field product is required", nil)
	ErrContentRequired = errors.NewValidation("The field content is required", nil)
	ErrStarOutOfRange  = errors.NewValidation("The star must be between 1 and 5", nil)
)

// NewReviewNotFound creates a not found error with the review ID
func NewReviewNotFound(id string) error {
	return errors.NewNotFound("review", id)
}
