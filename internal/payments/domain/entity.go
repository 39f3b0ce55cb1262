package domain

import (
	"strings"
	"time"
)

// Payment type codes accepted by the platform. PAYMENT_LATER means cash
// on delivery and keeps a new order in the processing state.
const (
	TypePayLater = "PAYMENT_LATER"
	TypeVNPay    = "VN_PAYMENT"
	TypePaypal   = "PAYPAL"
)

// AllowedTypes returns the accepted payment type codes in display order.
func AllowedTypes() []string {
	return []string{TypePayLater, TypeVNPay, TypePaypal}
}

// AllowedTypesList renders the accepted codes for error messages.
func AllowedTypesList() string {
	return strings.Join(AllowedTypes(), ", ")
}

// TypeAllowed reports whether a type code belongs to the accepted set.
func TypeAllowed(t string) bool {
	for _, allowed := range AllowedTypes() {
		if t == allowed {
			return true
		}
	}
	return false
}

// PaymentType is a payment method offered at checkout.
type PaymentType struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate validates the payment type entity
func (p *PaymentType) Validate() error {
	if p.Name == "" {
		return ErrNameRequired
	}
	if p.Type == "" {
		return ErrTypeRequired
	}
	if !TypeAllowed(p.Type) {
		return ErrTypeNotAllowed
	}
	return nil
}
