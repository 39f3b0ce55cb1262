package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-shop/internal/payments/domain"
	apperrors "go-shop/pkg/errors"
	"go-shop/pkg/listing"
)

// PaymentTypeModel is the GORM model for payment types
type PaymentTypeModel struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255;uniqueIndex;not null"`
	Type      string    `gorm:"size:100;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM
func (PaymentTypeModel) TableName() string {
	return "payment_types"
}

func paymentTypeToModel(p *domain.PaymentType) *PaymentTypeModel {
	return &PaymentTypeModel{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func paymentTypeToDomain(m *PaymentTypeModel) *domain.PaymentType {
	return &domain.PaymentType{
		ID:        m.ID,
		Name:      m.Name,
		Type:      m.Type,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// sortColumns maps exposed sort fields to database columns.
var sortColumns = map[string]string{
	"created": "created_at",
	"updated": "updated_at",
	"name":    "name",
	"type":    "type",
}

// PostgresPaymentTypeRepository implements PaymentTypeRepository with GORM
type PostgresPaymentTypeRepository struct {
	db *gorm.DB
}

// NewPostgresPaymentTypeRepository creates a new repository
func NewPostgresPaymentTypeRepository(db *gorm.DB) *PostgresPaymentTypeRepository {
	return &PostgresPaymentTypeRepository{db: db}
}

// Migrate runs auto-migration for the payment type model
func (r *PostgresPaymentTypeRepository) Migrate() error {
	return r.db.AutoMigrate(&PaymentTypeModel{})
}

// Create creates a new payment type
func (r *PostgresPaymentTypeRepository) Create(ctx context.Context, paymentType *domain.PaymentType) error {
	if paymentType.ID == "" {
		paymentType.ID = uuid.New().String()
	}
	err := r.db.WithContext(ctx).Create(paymentTypeToModel(paymentType)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflict("payment type name already exists")
		}
		return apperrors.NewInternal("failed to create payment type", err)
	}
	return nil
}

// GetByID retrieves a payment type by ID
func (r *PostgresPaymentTypeRepository) GetByID(ctx context.Context, id string) (*domain.PaymentType, error) {
	var model PaymentTypeModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewPaymentTypeNotFound(id)
		}
		return nil, apperrors.NewInternal("failed to get payment type", err)
	}
	return paymentTypeToDomain(&model), nil
}

// Update persists the full state of an existing payment type
func (r *PostgresPaymentTypeRepository) Update(ctx context.Context, paymentType *domain.PaymentType) error {
	err := r.db.WithContext(ctx).Save(paymentTypeToModel(paymentType)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflict("payment type name already exists")
		}
		return apperrors.NewInternal("failed to update payment type", err)
	}
	return nil
}

// Delete deletes a payment type by ID
func (r *PostgresPaymentTypeRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&PaymentTypeModel{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.NewInternal("failed to delete payment type", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewPaymentTypeNotFound(id)
	}
	return nil
}

// DeleteMany deletes the given payment types
func (r *PostgresPaymentTypeRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&PaymentTypeModel{}, "id IN ?", ids)
	if result.Error != nil {
		return 0, apperrors.NewInternal("failed to delete payment types", result.Error)
	}
	return result.RowsAffected, nil
}

// List returns a page of payment types matching the query
func (r *PostgresPaymentTypeRepository) List(ctx context.Context, params listing.Params) ([]*domain.PaymentType, int64, error) {
	query := r.db.WithContext(ctx).Model(&PaymentTypeModel{})

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, apperrors.NewInternal("failed to count payment types", err)
	}

	column, ok := sortColumns[params.Sort.Field]
	if !ok {
		column = "created_at"
	}
	direction := "ASC"
	if params.Sort.Desc {
		direction = "DESC"
	}
	query = query.Order(column + " " + direction)

	if !params.Unpaged() {
		query = query.Offset(params.Offset()).Limit(params.Limit)
	}

	var models []PaymentTypeModel
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, apperrors.NewInternal("failed to list payment types", err)
	}

	paymentTypes := make([]*domain.PaymentType, 0, len(models))
	for i := range models {
		paymentTypes = append(paymentTypes, paymentTypeToDomain(&models[i]))
	}
	return paymentTypes, count, nil
}
