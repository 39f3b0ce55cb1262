package ports

import (
	"context"

	"go-shop/internal/orders/domain"
	"go-shop/pkg/listing"
)

// ListOrdersQuery carries the coerced list parameters plus the order
// filter dimensions. Each id slice means "is one of"; empty means
// unfiltered.
type ListOrdersQuery struct {
	listing.Params
	UserIDs    []string
	ProductIDs []string
	CityIDs    []string
	Statuses   []int
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// Create creates a new order
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order by ID with its relations populated
	GetByID(ctx context.Context, id string) (*domain.Order, error)

	// Update persists the full state of an existing order
	Update(ctx context.Context, order *domain.Order) error

	// Delete deletes an order by ID
	Delete(ctx context.Context, id string) error

	// List returns the matching page of orders and the total count of
	// rows matching the query predicate
	List(ctx context.Context, query ListOrdersQuery) ([]*domain.Order, int64, error)
}

// StockLedger mutates product stock counters. Reserve must be a single
// conditional update so concurrent orders cannot oversell.
type StockLedger interface {
	// Reserve decrements count_in_stock and increments sold, only when
	// enough stock remains. Returns *domain.ShortageError when the
	// product is missing or short, *domain.LedgerError on
	// infrastructure failure.
	Reserve(ctx context.Context, productID string, amount int) error

	// Restore reverses a reservation. A missing product reports a
	// not-found error the caller may skip.
	Restore(ctx context.Context, productID string, amount int) error
}

// PaymentTypeReader resolves the type attribute of a payment method.
type PaymentTypeReader interface {
	// GetType returns the payment type string for the given payment
	// method id, or a not-found error
	GetType(ctx context.Context, id string) (string, error)
}

// EventPublisher defines the interface for publishing order events.
// Publication is best-effort; callers must not fail on publish errors.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *domain.Order) error
	PublishOrderCancelled(ctx context.Context, order *domain.Order) error
}
