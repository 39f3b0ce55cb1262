package ports

import (
	"context"

	"go-shop/internal/reviews/domain"
	"go-shop/pkg/listing"
)

// ListReviewsQuery carries the coerced list parameters plus the review
// filter dimensions. Each id slice means "is one of"; empty means
// unfiltered.
type ListReviewsQuery struct {
	listing.Params
	UserIDs    []string
	ProductIDs []string
}

// ReviewRepository defines the interface for review persistence
type ReviewRepository interface {
	// Create creates a new review
	Create(ctx context.Context, review *domain.Review) error

	// GetByID retrieves a review by ID
	GetByID(ctx context.Context, id string) (*domain.Review, error)

	// Update persists the full state of an existing review
	Update(ctx context.Context, review *domain.Review) error

	// Delete deletes a review by ID
	Delete(ctx context.Context, id string) error

	// DeleteMany deletes the given reviews and returns how many rows
	// were removed
	DeleteMany(ctx context.Context, ids []string) (int64, error)

	// List returns the matching page of reviews and the total count of
	// rows matching the query predicate
	List(ctx context.Context, query ListReviewsQuery) ([]*domain.Review, int64, error)
}
