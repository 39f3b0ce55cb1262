package ports

import (
	"context"

	"go-shop/internal/payments/domain"
	"go-shop/pkg/listing"
)

// PaymentTypeRepository defines the interface for payment type persistence
type PaymentTypeRepository interface {
	// Create creates a new payment type
	Create(ctx context.Context, paymentType *domain.PaymentType) error

	// GetByID retrieves a payment type by ID
	GetByID(ctx context.Context, id string) (*domain.PaymentType, error)

	// Update persists the full state of an existing payment type
	Update(ctx context.Context, paymentType *domain.PaymentType) error

	// Delete deletes a payment type by ID
	Delete(ctx context.Context, id string) error

	// DeleteMany deletes the given payment types and returns how many
	// rows were removed
	DeleteMany(ctx context.Context, ids []string) (int64, error)

	// List returns the matching page of payment types and the total
	// count of rows matching the query predicate
	List(ctx context.Context, params listing.Params) ([]*domain.PaymentType, int64, error)
}
