package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"go-shop/internal/orders/domain"
	"go-shop/internal/orders/ports"
	apperrors "go-shop/pkg/errors"
	"go-shop/pkg/logger"
	"go-shop/pkg/result"
)

// The sentinel payment type meaning "pay on delivery". Orders paid any
// other way start in the awaiting-payment state.
const payLaterType = "PAYMENT_LATER"

// OrderService orchestrates the order workflow: creation with
// all-or-nothing stock reservation, cancellation rules, and
// ownership-scoped reads.
type OrderService struct {
	repo      ports.OrderRepository
	ledger    ports.StockLedger
	payments  ports.PaymentTypeReader
	publisher ports.EventPublisher
	log       *logger.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	repo ports.OrderRepository,
	ledger ports.StockLedger,
	payments ports.PaymentTypeReader,
	publisher ports.EventPublisher,
	log *logger.Logger,
) *OrderService {
	return &OrderService{
		repo:      repo,
		ledger:    ledger,
		payments:  payments,
		publisher: publisher,
		log:       log,
	}
}

// CreateOrderInput carries the order creation request
type CreateOrderInput struct {
	UserID           string
	Email            string
	Items            []domain.OrderItem
	FullName         string
	Address          string
	Phone            string
	CityID           string
	PaymentMethodID  string
	DeliveryMethodID string
	ItemsPrice       float64
	ShippingPrice    float64
	TotalPrice       float64
	IsPaid           int
	PaidAt           *time.Time
}

// OrderPage is the data payload of a list response
type OrderPage struct {
	Orders     []*domain.Order `json:"orders"`
	TotalPage  int             `json:"totalPage"`
	TotalCount int64           `json:"totalCount"`
}

// CreateOrder reserves stock for every line item concurrently, and only
// persists the order when every reservation succeeded. Partial
// reservations are rolled back so a failed order leaves no net stock
// change.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*result.Result, error) {
	now := time.Now()
	order := &domain.Order{
		UserID: input.UserID,
		Email:  input.Email,
		Items:  input.Items,
		Shipping: domain.ShippingAddress{
			FullName: input.FullName,
			Address:  input.Address,
			Phone:    input.Phone,
			CityID:   input.CityID,
		},
		PaymentMethodID:  input.PaymentMethodID,
		DeliveryMethodID: input.DeliveryMethodID,
		ItemsPrice:       input.ItemsPrice,
		ShippingPrice:    input.ShippingPrice,
		TotalPrice:       input.TotalPrice,
		IsPaid:           input.IsPaid,
		PaidAt:           input.PaidAt,
		Status:           domain.StatusProcessing,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := order.Validate(); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return result.Invalid(appErr.Message), nil
		}
		return nil, err
	}

	// Resolve the payment type before touching stock: a dangling payment
	// method reference must not cost a reserve/rollback cycle.
	if input.PaymentMethodID != "" {
		paymentType, err := s.payments.GetType(ctx, input.PaymentMethodID)
		if err != nil {
			if apperrors.Is(err, apperrors.CodeNotFound) {
				return result.Invalid("The payment method does not exist"), nil
			}
			return nil, err
		}
		if paymentType != payLaterType {
			order.Status = domain.StatusAwaitingPayment
		}
	}

	failed, infraErr := s.reserveAll(ctx, order.Items)
	if infraErr != nil {
		return nil, infraErr
	}
	if len(failed) > 0 {
		return result.Invalid(fmt.Sprintf(
			"The product with id: %s out of the stock", strings.Join(failed, ","),
		)), nil
	}

	if err := s.repo.Create(ctx, order); err != nil {
		// The order did not persist; the reservations must not stand.
		s.rollbackReservations(ctx, order.Items)
		return nil, apperrors.NewInternal("failed to create order", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderCreated(ctx, order); err != nil {
			s.log.WithContext(ctx).Error("failed to publish order created event",
				zap.Error(err),
				zap.String("order_id", order.ID),
			)
		}
	}

	s.log.WithContext(ctx).Info("order created",
		zap.String("order_id", order.ID),
		zap.String("user_id", order.UserID),
		zap.Int("items", len(order.Items)),
		zap.Float64("total", order.TotalPrice),
	)

	return result.Done("Order created successfully", order), nil
}

// reserveAll fans out one reservation per line item and joins before
// returning. All shortages are collected so the caller sees every
// offending product at once; succeeded reservations are rolled back as
// soon as any item failed.
func (s *OrderService) reserveAll(ctx context.Context, items []domain.OrderItem) ([]string, error) {
	outcomes := make([]error, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item domain.OrderItem) {
			defer wg.Done()
			outcomes[i] = s.ledger.Reserve(ctx, item.ProductID, item.Amount)
		}(i, item)
	}
	wg.Wait()

	var failed []string
	var infraErr error
	for i, err := range outcomes {
		if err == nil {
			continue
		}
		var shortage *domain.ShortageError
		var ledgerErr *domain.LedgerError
		switch {
		case errors.As(err, &shortage):
			failed = append(failed, shortage.ProductID)
		case errors.As(err, &ledgerErr):
			failed = append(failed, ledgerErr.ProductID)
			infraErr = err
		default:
			infraErr = err
			failed = append(failed, items[i].ProductID)
		}
	}

	if len(failed) == 0 {
		return nil, nil
	}

	// Compensate the items that did go through.
	failedSet := make(map[int]bool, len(failed))
	for i, err := range outcomes {
		if err != nil {
			failedSet[i] = true
		}
	}
	var succeeded []domain.OrderItem
	for i, item := range items {
		if !failedSet[i] {
			succeeded = append(succeeded, item)
		}
	}
	s.rollbackReservations(ctx, succeeded)

	if infraErr != nil {
		return nil, apperrors.NewInternal("stock reservation failed", infraErr)
	}
	return failed, nil
}

// rollbackReservations best-effort restores previously reserved stock.
func (s *OrderService) rollbackReservations(ctx context.Context, items []domain.OrderItem) {
	for _, item := range items {
		if err := s.ledger.Restore(ctx, item.ProductID, item.Amount); err != nil {
			s.log.WithContext(ctx).Error("failed to roll back stock reservation",
				zap.Error(err),
				zap.String("product_id", item.ProductID),
				zap.Int("amount", item.Amount),
			)
		}
	}
}

// GetOrderDetails fetches one order. A missing order is a non-exceptional
// outcome answered through the envelope.
func (s *OrderService) GetOrderDetails(ctx context.Context, id string) (*result.Result, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return result.Invalid("The order does not exist"), nil
		}
		return nil, err
	}
	return result.Fetched(order), nil
}

// DeleteOrder removes an order and restores the stock its creation
// consumed. Restoration is best-effort: a product deleted in the
// meantime is skipped.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) (*result.Result, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return result.Invalid("The order does not exist"), nil
		}
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, apperrors.NewInternal("failed to delete order", err)
	}

	for _, item := range order.Items {
		if err := s.ledger.Restore(ctx, item.ProductID, item.Amount); err != nil {
			if apperrors.Is(err, apperrors.CodeNotFound) {
				continue
			}
			s.log.WithContext(ctx).Error("failed to restore stock for deleted order",
				zap.Error(err),
				zap.String("order_id", id),
				zap.String("product_id", item.ProductID),
			)
		}
	}

	return result.Done("Order deleted successfully", order), nil
}

// UpdateOrderInput is a patch: nil fields are left unchanged.
type UpdateOrderInput struct {
	Items            []domain.OrderItem
	Shipping         *domain.ShippingAddress
	PaymentMethodID  *string
	DeliveryMethodID *string
	ItemsPrice       *float64
	ShippingPrice    *float64
	TotalPrice       *float64
	IsPaid           *int
	PaidAt           *time.Time
	DeliveryAt       *time.Time
}

// UpdateOrder applies a partial update. Unlike the read paths, a missing
// order here is a hard failure propagated to the transport layer.
func (s *OrderService) UpdateOrder(ctx context.Context, id string, patch UpdateOrderInput) (*result.Result, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Items != nil {
		order.Items = patch.Items
	}
	if patch.Shipping != nil {
		order.Shipping = *patch.Shipping
	}
	if patch.PaymentMethodID != nil {
		order.PaymentMethodID = *patch.PaymentMethodID
	}
	if patch.DeliveryMethodID != nil {
		order.DeliveryMethodID = *patch.DeliveryMethodID
	}
	if patch.ItemsPrice != nil {
		order.ItemsPrice = *patch.ItemsPrice
	}
	if patch.ShippingPrice != nil {
		order.ShippingPrice = *patch.ShippingPrice
	}
	if patch.TotalPrice != nil {
		order.TotalPrice = *patch.TotalPrice
	}
	if patch.IsPaid != nil {
		order.IsPaid = *patch.IsPaid
	}
	if patch.PaidAt != nil {
		order.PaidAt = patch.PaidAt
	}
	if patch.DeliveryAt != nil {
		order.DeliveryAt = patch.DeliveryAt
	}
	order.UpdatedAt = time.Now()

	if err := order.Validate(); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return result.Invalid(appErr.Message), nil
		}
		return nil, err
	}

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, apperrors.NewInternal("failed to update order", err)
	}

	return result.Done("Order updated successfully", order), nil
}

// CancelOrder transitions an order to cancelled unless it has been paid.
func (s *OrderService) CancelOrder(ctx context.Context, orderID string) (*result.Result, error) {
	return s.cancel(ctx, orderID, "")
}

// CancelMyOrder is the ownership-scoped cancel: the order must belong to
// the requesting actor.
func (s *OrderService) CancelMyOrder(ctx context.Context, userID, orderID string) (*result.Result, error) {
	return s.cancel(ctx, orderID, userID)
}

func (s *OrderService) cancel(ctx context.Context, orderID, requireOwner string) (*result.Result, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return result.Invalid("The order does not exist"), nil
		}
		return nil, err
	}

	if requireOwner != "" && order.UserID != requireOwner {
		return result.Unauthorized("You do not have permission"), nil
	}

	if !order.Cancellable() {
		return result.Invalid("Cannot cancel order that has been paid"), nil
	}

	order.Cancel()
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, apperrors.NewInternal("failed to cancel order", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderCancelled(ctx, order); err != nil {
			s.log.WithContext(ctx).Error("failed to publish order cancelled event",
				zap.Error(err),
				zap.String("order_id", order.ID),
			)
		}
	}

	return result.Done("Order cancelled successfully", order), nil
}

// ListOrders returns the page of orders matching the query.
func (s *OrderService) ListOrders(ctx context.Context, query ports.ListOrdersQuery) (*result.Result, error) {
	orders, count, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, apperrors.NewInternal("failed to list orders", err)
	}

	return result.Fetched(&OrderPage{
		Orders:     orders,
		TotalPage:  query.TotalPages(count),
		TotalCount: count,
	}), nil
}

// ListMyOrders lists orders scoped to the requesting actor, overriding
// any user filter the query carried.
func (s *OrderService) ListMyOrders(ctx context.Context, userID string, query ports.ListOrdersQuery) (*result.Result, error) {
	query.UserIDs = []string{userID}
	return s.ListOrders(ctx, query)
}

// GetMyOrderDetails fetches one order for the requesting actor. The
// ownership check runs after the fetch; a mismatch answers unauthorized,
// not not-found.
func (s *OrderService) GetMyOrderDetails(ctx context.Context, userID, orderID string) (*result.Result, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return result.Invalid("The order does not exist"), nil
		}
		return nil, err
	}

	if order.UserID != userID {
		return result.Unauthorized("You do not have permission"), nil
	}

	return result.Fetched(order), nil
}
