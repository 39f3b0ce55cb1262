package adapters

import (
	"context"

	"gorm.io/gorm"

	"go-shop/internal/orders/domain"
	apperrors "go-shop/pkg/errors"
)

// ProductModel covers the product counters the ledger mutates.
type ProductModel struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Name         string `gorm:"size:255"`
	Slug         string `gorm:"size:255;index"`
	Price        float64
	CountInStock int `gorm:"not null;default:0"`
	Sold         int `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// GormStockLedger implements StockLedger with single conditional updates,
// so concurrent orders race on the database row, not in this process.
type GormStockLedger struct {
	db *gorm.DB
}

// NewGormStockLedger creates a new stock ledger
func NewGormStockLedger(db *gorm.DB) *GormStockLedger {
	return &GormStockLedger{db: db}
}

// Migrate runs auto-migration for the product model
func (l *GormStockLedger) Migrate() error {
	return l.db.AutoMigrate(&ProductModel{})
}

// Reserve decrements stock and increments sold in one conditional UPDATE.
// Zero rows affected means the product is missing or short; both are
// reported as a shortage carrying the product id.
func (l *GormStockLedger) Reserve(ctx context.Context, productID string, amount int) error {
	result := l.db.WithContext(ctx).
		Model(&ProductModel{}).
		Where("id = ? AND count_in_stock >= ?", productID, amount).
		Updates(map[string]interface{}{
			"count_in_stock": gorm.Expr("count_in_stock - ?", amount),
			"sold":           gorm.Expr("sold + ?", amount),
		})
	if result.Error != nil {
		return &domain.LedgerError{ProductID: productID, Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &domain.ShortageError{ProductID: productID}
	}
	return nil
}

// Restore unconditionally reverses a reservation. A missing product
// answers not-found so callers can skip it.
func (l *GormStockLedger) Restore(ctx context.Context, productID string, amount int) error {
	result := l.db.WithContext(ctx).
		Model(&ProductModel{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"count_in_stock": gorm.Expr("count_in_stock + ?", amount),
			"sold":           gorm.Expr("sold - ?", amount),
		})
	if result.Error != nil {
		return &domain.LedgerError{ProductID: productID, Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("product", productID)
	}
	return nil
}
