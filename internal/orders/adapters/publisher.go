package adapters

import (
	"context"
	"time"

	"go-shop/internal/orders/domain"
	"go-shop/pkg/events"
	"go-shop/pkg/logger"
	"go-shop/pkg/rabbitmq"
)

// RabbitMQPublisher publishes order lifecycle events to the orders exchange.
type RabbitMQPublisher struct {
	publisher *rabbitmq.Publisher
}

// NewRabbitMQPublisher creates a new event publisher
func NewRabbitMQPublisher(conn *rabbitmq.Connection, log *logger.Logger) (*RabbitMQPublisher, error) {
	pub, err := rabbitmq.NewPublisher(conn, events.ExchangeOrders, log)
	if err != nil {
		return nil, err
	}
	return &RabbitMQPublisher{publisher: pub}, nil
}

// PublishOrderCreated publishes an order.created event
func (p *RabbitMQPublisher) PublishOrderCreated(ctx context.Context, order *domain.Order) error {
	items := make([]events.OrderItemPayload, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, events.OrderItemPayload{
			ProductID: item.ProductID,
			Name:      item.Name,
			Amount:    item.Amount,
			Price:     item.Price,
		})
	}

	event := events.NewOrderCreatedEvent(events.OrderCreatedPayload{
		OrderID:    order.ID,
		UserID:     order.UserID,
		Email:      order.Email,
		Items:      items,
		TotalPrice: order.TotalPrice,
		Status:     int(order.Status),
		CreatedAt:  order.CreatedAt,
	}, logger.GetTraceID(ctx))

	return p.publisher.Publish(ctx, events.RoutingKeyOrderCreated, event)
}

// PublishOrderCancelled publishes an order.cancelled event
func (p *RabbitMQPublisher) PublishOrderCancelled(ctx context.Context, order *domain.Order) error {
	event := events.NewOrderCancelledEvent(events.OrderCancelledPayload{
		OrderID:     order.ID,
		UserID:      order.UserID,
		CancelledAt: time.Now(),
	}, logger.GetTraceID(ctx))

	return p.publisher.Publish(ctx, events.RoutingKeyOrderCancelled, event)
}
