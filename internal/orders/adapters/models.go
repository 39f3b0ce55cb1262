package adapters

import (
	"time"

	"go-shop/internal/orders/domain"
)

// OrderModel is the GORM model for orders (persistence layer)
type OrderModel struct {
	ID               string           `gorm:"type:uuid;primaryKey"`
	UserID           string           `gorm:"type:uuid;index;not null"`
	Email            string           `gorm:"size:255"`
	Items            []OrderItemModel `gorm:"foreignKey:OrderID"`
	FullName         string           `gorm:"size:255"`
	Address          string           `gorm:"size:512"`
	Phone            string           `gorm:"size:32"`
	CityID           *string          `gorm:"type:uuid;index"`
	City             *CityModel       `gorm:"foreignKey:CityID"`
	PaymentMethodID  *string          `gorm:"type:uuid"`
	DeliveryMethodID *string          `gorm:"type:uuid"`
	ItemsPrice       float64          `gorm:"not null"`
	ShippingPrice    float64          `gorm:"not null"`
	TotalPrice       float64          `gorm:"not null"`
	IsPaid           int              `gorm:"not null;default:0"`
	IsDelivered      bool             `gorm:"not null;default:false"`
	PaidAt           *time.Time
	DeliveryAt       *time.Time
	Status           int       `gorm:"not null;default:1;index"`
	CreatedAt        time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is one persisted order line
type OrderItemModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	OrderID   string `gorm:"type:uuid;index;not null"`
	ProductID string `gorm:"type:uuid;index;not null"`
	Name      string `gorm:"size:255"`
	Amount    int    `gorm:"not null"`
	Price     float64
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// CityModel is a read model over the externally-owned cities table,
// carried only to populate the shipping address on reads.
type CityModel struct {
	ID   string `gorm:"type:uuid;primaryKey"`
	Name string `gorm:"size:255"`
}

// TableName returns the table name for GORM
func (CityModel) TableName() string {
	return "cities"
}

// toModel converts a domain entity to GORM models
func toModel(order *domain.Order) *OrderModel {
	model := &OrderModel{
		ID:            order.ID,
		UserID:        order.UserID,
		Email:         order.Email,
		FullName:      order.Shipping.FullName,
		Address:       order.Shipping.Address,
		Phone:         order.Shipping.Phone,
		ItemsPrice:    order.ItemsPrice,
		ShippingPrice: order.ShippingPrice,
		TotalPrice:    order.TotalPrice,
		IsPaid:        order.IsPaid,
		IsDelivered:   order.IsDelivered,
		PaidAt:        order.PaidAt,
		DeliveryAt:    order.DeliveryAt,
		Status:        int(order.Status),
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
	if order.Shipping.CityID != "" {
		cityID := order.Shipping.CityID
		model.CityID = &cityID
	}
	if order.PaymentMethodID != "" {
		id := order.PaymentMethodID
		model.PaymentMethodID = &id
	}
	if order.DeliveryMethodID != "" {
		id := order.DeliveryMethodID
		model.DeliveryMethodID = &id
	}
	for _, item := range order.Items {
		model.Items = append(model.Items, OrderItemModel{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Amount:    item.Amount,
			Price:     item.Price,
		})
	}
	return model
}

// toDomain converts a GORM model to a domain entity
func toDomain(model *OrderModel) *domain.Order {
	order := &domain.Order{
		ID:     model.ID,
		UserID: model.UserID,
		Email:  model.Email,
		Shipping: domain.ShippingAddress{
			FullName: model.FullName,
			Address:  model.Address,
			Phone:    model.Phone,
		},
		ItemsPrice:    model.ItemsPrice,
		ShippingPrice: model.ShippingPrice,
		TotalPrice:    model.TotalPrice,
		IsPaid:        model.IsPaid,
		IsDelivered:   model.IsDelivered,
		PaidAt:        model.PaidAt,
		DeliveryAt:    model.DeliveryAt,
		Status:        domain.Status(model.Status),
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
	if model.CityID != nil {
		order.Shipping.CityID = *model.CityID
	}
	if model.City != nil {
		order.Shipping.CityName = model.City.Name
	}
	if model.PaymentMethodID != nil {
		order.PaymentMethodID = *model.PaymentMethodID
	}
	if model.DeliveryMethodID != nil {
		order.DeliveryMethodID = *model.DeliveryMethodID
	}
	for _, item := range model.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Amount:    item.Amount,
			Price:     item.Price,
		})
	}
	return order
}
