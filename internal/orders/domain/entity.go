package domain

import (
	"time"
)

// Status is the order lifecycle state, persisted as an integer.
// The value 2 is deliberately unassigned.
type Status int

const (
	StatusAwaitingPayment Status = 0
	StatusProcessing      Status = 1
	StatusCancelled       Status = 3
)

// Valid reports whether s is an assigned lifecycle value.
func (s Status) Valid() bool {
	switch s {
	case StatusAwaitingPayment, StatusProcessing, StatusCancelled:
		return true
	}
	return false
}

// Payment states for the IsPaid field.
const (
	PaymentUnpaid = 0
	PaymentPaid   = 1
)

// OrderItem is one line of an order. It has no lifecycle of its own.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Amount    int     `json:"amount"`
	Price     float64 `json:"price"`
}

// ShippingAddress is embedded in the order. CityName is filled from the
// referenced city on reads.
type ShippingAddress struct {
	FullName string `json:"fullName"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	CityID   string `json:"cityId,omitempty"`
	CityName string `json:"cityName,omitempty"`
}

// Order represents the order domain entity
type Order struct {
	ID               string          `json:"id"`
	UserID           string          `json:"userId"`
	Email            string          `json:"email,omitempty"`
	Items            []OrderItem     `json:"items"`
	Shipping         ShippingAddress `json:"shippingAddress"`
	PaymentMethodID  string          `json:"paymentMethodId,omitempty"`
	DeliveryMethodID string          `json:"deliveryMethodId,omitempty"`
	ItemsPrice       float64         `json:"itemsPrice"`
	ShippingPrice    float64         `json:"shippingPrice"`
	TotalPrice       float64         `json:"totalPrice"`
	IsPaid           int             `json:"isPaid"`
	IsDelivered      bool            `json:"isDelivered"`
	PaidAt           *time.Time      `json:"paidAt,omitempty"`
	DeliveryAt       *time.Time      `json:"deliveryAt,omitempty"`
	Status           Status          `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// Validate validates the order entity
func (o *Order) Validate() error {
	if o.UserID == "" {
		return ErrUserRequired
	}
	if len(o.Items) == 0 {
		return ErrItemsRequired
	}
	for _, item := range o.Items {
		if item.ProductID == "" {
			return ErrItemProductRequired
		}
		if item.Amount <= 0 {
			return ErrItemAmountInvalid
		}
	}
	if o.TotalPrice < 0 {
		return ErrTotalNegative
	}
	return nil
}

// Cancellable reports whether the order may still be cancelled.
// A paid order cannot be.
func (o *Order) Cancellable() bool {
	return o.IsPaid != PaymentPaid
}

// Cancel transitions the order to the cancelled state
func (o *Order) Cancel() {
	o.Status = StatusCancelled
	o.UpdatedAt = time.Now()
}
