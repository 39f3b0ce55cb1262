package domain

import "time"

// Star rating bounds.
const (
	MinStar = 1
	MaxStar = 5
)

// Review is a product review left by a user.
type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProductID string    `json:"productId"`
	Content   string    `json:"content"`
	Star      int       `json:"star"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate validates the review entity
func (r *Review) Validate() error {
	if r.UserID == "" {
		return ErrUserRequired
	}
	if r.ProductID == "" {
		return ErrProductRequired
	}
	if r.Content == "" {
		return ErrContentRequired
	}
	if r.Star < MinStar || r.Star > MaxStar {
		return ErrStarOutOfRange
	}
	return nil
}

// OwnedBy reports whether the review belongs to the given user.
func (r *Review) OwnedBy(userID string) bool {
	return r.UserID == userID
}
