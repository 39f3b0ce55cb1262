package adapters

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-shop/internal/orders/domain"
	"go-shop/internal/orders/ports"
	apperrors "go-shop/pkg/errors"
)

// sortColumns maps the public sort field tokens to order columns.
// Unknown tokens fall back to created_at.
var sortColumns = map[string]string{
	"created":    "created_at",
	"updated":    "updated_at",
	"totalPrice": "total_price",
	"status":     "status",
}

// PostgresOrderRepository implements OrderRepository using PostgreSQL
type PostgresOrderRepository struct {
	db *gorm.DB
}

// NewPostgresOrderRepository creates a new PostgreSQL order repository
func NewPostgresOrderRepository(db *gorm.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

// Migrate runs auto-migration for the order models
func (r *PostgresOrderRepository) Migrate() error {
	return r.db.AutoMigrate(&CityModel{}, &OrderModel{}, &OrderItemModel{})
}

// Create creates a new order with its items
func (r *PostgresOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}

	model := toModel(order)
	for i := range model.Items {
		model.Items[i].ID = uuid.New().String()
		model.Items[i].OrderID = model.ID
	}

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}

	order.CreatedAt = model.CreatedAt
	order.UpdatedAt = model.UpdatedAt
	return nil
}

// GetByID retrieves an order by ID with its relations populated
func (r *PostgresOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var model OrderModel

	result := r.db.WithContext(ctx).
		Preload("Items").
		Preload("City").
		First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.NewOrderNotFound(id)
		}
		return nil, apperrors.NewInternal("failed to get order", result.Error)
	}

	return toDomain(&model), nil
}

// Update persists the full order state, replacing its items
func (r *PostgresOrderRepository) Update(ctx context.Context, order *domain.Order) error {
	model := toModel(order)
	for i := range model.Items {
		model.Items[i].ID = uuid.New().String()
		model.Items[i].OrderID = model.ID
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&OrderItemModel{}, "order_id = ?", model.ID).Error; err != nil {
			return err
		}
		items := model.Items
		model.Items = nil
		if err := tx.Save(model).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.NewInternal("failed to update order", err)
	}

	order.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete deletes an order and its items
func (r *PostgresOrderRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&OrderItemModel{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&OrderModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.NewOrderNotFound(id)
		}
		return nil
	})
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return err
		}
		return apperrors.NewInternal("failed to delete order", err)
	}
	return nil
}

// List returns the page matching the query plus the total row count
func (r *PostgresOrderRepository) List(ctx context.Context, query ports.ListOrdersQuery) ([]*domain.Order, int64, error) {
	tx := r.db.WithContext(ctx).Model(&OrderModel{})

	if query.Search != "" {
		sub := r.db.Model(&OrderItemModel{}).
			Select("order_id").
			Where("name ILIKE ?", "%"+query.Search+"%")
		tx = tx.Where("orders.id IN (?)", sub)
	}
	if len(query.UserIDs) > 0 {
		tx = tx.Where("user_id IN ?", query.UserIDs)
	}
	if len(query.ProductIDs) > 0 {
		sub := r.db.Model(&OrderItemModel{}).
			Select("order_id").
			Where("product_id IN ?", query.ProductIDs)
		tx = tx.Where("orders.id IN (?)", sub)
	}
	if len(query.CityIDs) > 0 {
		tx = tx.Where("city_id IN ?", query.CityIDs)
	}
	if len(query.Statuses) > 0 {
		tx = tx.Where("status IN ?", query.Statuses)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[query.Sort.Field]
	if !ok {
		column = "created_at"
	}
	direction := "ASC"
	if query.Sort.Desc {
		direction = "DESC"
	}
	tx = tx.Order(column + " " + direction)

	if !query.Unpaged() {
		tx = tx.Offset(query.Offset()).Limit(query.Limit)
	}

	var models []OrderModel
	if err := tx.Preload("Items").Preload("City").Find(&models).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*domain.Order, len(models))
	for i := range models {
		orders[i] = toDomain(&models[i])
	}

	return orders, count, nil
}
