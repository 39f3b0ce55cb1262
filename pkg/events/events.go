package events

import "time"

// Exchange names
const (
	ExchangeOrders = "orders.events"
)

// Routing keys
const (
	RoutingKeyOrderCreated   = "order.created"
	RoutingKeyOrderCancelled = "order.cancelled"
)

// OrderItemPayload describes one line item inside an order event.
type OrderItemPayload struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Amount    int     `json:"amount"`
	Price     float64 `json:"price"`
}

// OrderCreatedEvent is published after an order is persisted. The email
// notification worker consumes it off the critical path.
type OrderCreatedEvent struct {
	Version   string              `json:"version"`
	EventType string              `json:"event_type"`
	Timestamp time.Time           `json:"timestamp"`
	TraceID   string              `json:"trace_id"`
	Payload   OrderCreatedPayload `json:"payload"`
}

// OrderCreatedPayload contains order data
type OrderCreatedPayload struct {
	OrderID    string             `json:"order_id"`
	UserID     string             `json:"user_id"`
	Email      string             `json:"email,omitempty"`
	Items      []OrderItemPayload `json:"items"`
	TotalPrice float64            `json:"total_price"`
	Status     int                `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
}

// NewOrderCreatedEvent creates a new OrderCreatedEvent
func NewOrderCreatedEvent(payload OrderCreatedPayload, traceID string) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		Version:   "1.0",
		EventType: "order.created",
		Timestamp: time.Now(),
		TraceID:   traceID,
		Payload:   payload,
	}
}

// OrderCancelledEvent is published when an order transitions to cancelled.
type OrderCancelledEvent struct {
	Version   string                `json:"version"`
	EventType string                `json:"event_type"`
	Timestamp time.Time             `json:"timestamp"`
	TraceID   string                `json:"trace_id"`
	Payload   OrderCancelledPayload `json:"payload"`
}

// OrderCancelledPayload contains the cancelled order reference
type OrderCancelledPayload struct {
	OrderID     string    `json:"order_id"`
	UserID      string    `json:"user_id"`
	CancelledAt time.Time `json:"cancelled_at"`
}

// NewOrderCancelledEvent creates a new OrderCancelledEvent
func NewOrderCancelledEvent(payload OrderCancelledPayload, traceID string) *OrderCancelledEvent {
	return &OrderCancelledEvent{
		Version:   "1.0",
		EventType: "order.cancelled",
		Timestamp: time.Now(),
		TraceID:   traceID,
		Payload:   payload,
	}
}
