package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "go-shop/pkg/errors"
)

// PaymentTypeRef is a read model over the payment_types table owned by
// the payments module. Orders only needs the type code.
type PaymentTypeRef struct {
	ID   string `gorm:"type:uuid;primaryKey"`
	Type string `gorm:"size:100"`
}

// TableName returns the table name for GORM
func (PaymentTypeRef) TableName() string {
	return "payment_types"
}

// GormPaymentTypeReader resolves payment method ids to their type codes.
type GormPaymentTypeReader struct {
	db *gorm.DB
}

// NewGormPaymentTypeReader creates a new payment type reader
func NewGormPaymentTypeReader(db *gorm.DB) *GormPaymentTypeReader {
	return &GormPaymentTypeReader{db: db}
}

// GetType returns the type code for a payment method id
func (r *GormPaymentTypeReader) GetType(ctx context.Context, paymentMethodID string) (string, error) {
	var ref PaymentTypeRef
	err := r.db.WithContext(ctx).First(&ref, "id = ?", paymentMethodID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.NewNotFound("payment type", paymentMethodID)
		}
		return "", apperrors.Wrap(err, "failed to get payment type")
	}
	return ref.Type, nil
}
