package application

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"go-shop/internal/orders/domain"
	"go-shop/internal/orders/ports"
	apperrors "go-shop/pkg/errors"
	"go-shop/pkg/listing"
	"go-shop/pkg/logger"
)

// MockOrderRepository is an in-memory implementation of OrderRepository
type MockOrderRepository struct {
	orders map[string]*domain.Order
	nextID int
	// optional failure injection
	createErr error
}

func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{orders: make(map[string]*domain.Order), nextID: 1}
}

func (m *MockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	order.ID = fmt.Sprintf("order-%d", m.nextID)
	m.nextID++
	stored := *order
	m.orders[order.ID] = &stored
	return nil
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, domain.NewOrderNotFound(id)
	}
	copied := *order
	return &copied, nil
}

func (m *MockOrderRepository) Update(ctx context.Context, order *domain.Order) error {
	if _, ok := m.orders[order.ID]; !ok {
		return domain.NewOrderNotFound(order.ID)
	}
	stored := *order
	m.orders[order.ID] = &stored
	return nil
}

func (m *MockOrderRepository) Delete(ctx context.Context, id string) error {
	delete(m.orders, id)
	return nil
}

func (m *MockOrderRepository) List(ctx context.Context, query ports.ListOrdersQuery) ([]*domain.Order, int64, error) {
	var matched []*domain.Order
	for _, order := range m.orders {
		if len(query.UserIDs) > 0 && !contains(query.UserIDs, order.UserID) {
			continue
		}
		copied := *order
		matched = append(matched, &copied)
	}
	count := int64(len(matched))
	if !query.Unpaged() {
		start := query.Offset()
		if start > len(matched) {
			start = len(matched)
		}
		end := start + query.Limit
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}
	return matched, count, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// stock holds the two product counters the ledger mutates
type stock struct {
	InStock int
	Sold    int
}

// MockStockLedger mimics the conditional-update semantics of the real
// ledger. It is mutex-guarded because reservations fan out concurrently.
type MockStockLedger struct {
	mu     sync.Mutex
	stocks map[string]*stock
	// reserveErr injects an infrastructure failure for a product id
	reserveErr map[string]error
}

func NewMockStockLedger() *MockStockLedger {
	return &MockStockLedger{
		stocks:     make(map[string]*stock),
		reserveErr: make(map[string]error),
	}
}

func (m *MockStockLedger) SetStock(productID string, inStock, sold int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stocks[productID] = &stock{InStock: inStock, Sold: sold}
}

func (m *MockStockLedger) Stock(productID string) (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stocks[productID]
	if !ok {
		return 0, 0
	}
	return s.InStock, s.Sold
}

func (m *MockStockLedger) Reserve(ctx context.Context, productID string, amount int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.reserveErr[productID]; ok {
		return &domain.LedgerError{ProductID: productID, Err: err}
	}
	s, ok := m.stocks[productID]
	if !ok || s.InStock < amount {
		return &domain.ShortageError{ProductID: productID}
	}
	s.InStock -= amount
	s.Sold += amount
	return nil
}

func (m *MockStockLedger) Restore(ctx context.Context, productID string, amount int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stocks[productID]
	if !ok {
		return apperrors.NewNotFound("product", productID)
	}
	s.InStock += amount
	s.Sold -= amount
	return nil
}

// MockPaymentTypes resolves payment method ids to their type strings
type MockPaymentTypes struct {
	types map[string]string
}

func NewMockPaymentTypes() *MockPaymentTypes {
	return &MockPaymentTypes{types: map[string]string{
		"pay-later-id": "PAYMENT_LATER",
		"vnpay-id":     "VN_PAYMENT",
	}}
}

func (m *MockPaymentTypes) GetType(ctx context.Context, id string) (string, error) {
	t, ok := m.types[id]
	if !ok {
		return "", apperrors.NewNotFound("payment type", id)
	}
	return t, nil
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	created   []*domain.Order
	cancelled []*domain.Order
}

func (m *MockEventPublisher) PublishOrderCreated(ctx context.Context, order *domain.Order) error {
	m.created = append(m.created, order)
	return nil
}

func (m *MockEventPublisher) PublishOrderCancelled(ctx context.Context, order *domain.Order) error {
	m.cancelled = append(m.cancelled, order)
	return nil
}

type fixture struct {
	repo      *MockOrderRepository
	ledger    *MockStockLedger
	payments  *MockPaymentTypes
	publisher *MockEventPublisher
	service   *OrderService
}

func newFixture() *fixture {
	f := &fixture{
		repo:      NewMockOrderRepository(),
		ledger:    NewMockStockLedger(),
		payments:  NewMockPaymentTypes(),
		publisher: &MockEventPublisher{},
	}
	log := logger.New("test", "error", "console")
	f.service = NewOrderService(f.repo, f.ledger, f.payments, f.publisher, log)
	return f
}

func validInput() CreateOrderInput {
	return CreateOrderInput{
		UserID: "user-1",
		Items: []domain.OrderItem{
			{ProductID: "p1", Name: "Keyboard", Amount: 2, Price: 25},
		},
		FullName:      "John Doe",
		Address:       "1 Main St",
		Phone:         "555-0100",
		CityID:        "city-1",
		ItemsPrice:    50,
		ShippingPrice: 5,
		TotalPrice:    55,
	}
}

func TestCreateOrder_Success(t *testing.T) {
	f := newFixture()
	f.ledger.SetStock("p1", 5, 0)

	res, err := f.service.CreateOrder(context.Background(), validInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.IsError() {
		t.Fatalf("expected success envelope, got %+v", res)
	}

	order := res.Data.(*domain.Order)
	if order.ID == "" {
		t.Error("expected persisted order to have an id")
	}
	if order.Status != domain.StatusProcessing {
		t.Errorf("expected default processing status, got %d", order.Status)
	}

	inStock, sold := f.ledger.Stock("p1")
	if inStock != 3 || sold != 2 {
		t.Errorf("expected stock 3/sold 2, got %d/%d", inStock, sold)
	}

	if len(f.publisher.created) != 1 {
		t.Errorf("expected 1 created event, got %d", len(f.publisher.created))
	}
}

func TestCreateOrder_PayLaterKeepsDefaultStatus(t *testing.T) {
	f := newFixture()
	f.ledger.SetStock("p1", 5, 0)

	input := validInput()
	input.PaymentMethodID = "pay-later-id"

	res, err := f.service.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	order := res.Data.(*domain.Order)
	if order.Status != domain.StatusProcessing {
		t.Errorf("pay-later order must keep the processing default, got %d", order.Status)
	}

	inStock, sold := f.ledger.Stock("p1")
	if inStock != 3 || sold != 2 {
		t.Errorf("expected stock 3/sold 2, got %d/%d", inStock, sold)
	}
}

func TestCreateOrder_OnlinePaymentAwaitsPayment(t *testing.T) {
	f := newFixture()
	f.ledger.SetStock("p1", 5, 0)

	input := validInput()
	input.PaymentMethodID = "vnpay-id"

	res, err := f.service.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	order := res.Data.(*domain.Order)
	if order.Status != domain.StatusAwaitingPayment {
		t.Errorf("online payment must await payment, got status %d", order.Status)
	}
}

func TestCreateOrder_UnknownPaymentMethod(t *testing.T) {
	f := newFixture()
	f.ledger.SetStock("p1", 5, 0)

	input := validInput()
	input.PaymentMethodID = "missing-id"

	res, err := f.service.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("expected envelope, got error %v", err)
	}
	if !res.IsError() {
		t.Fatal("expected error envelope for unknown payment method")
	}

	// The lookup short-circuits before any stock mutation.
	inStock, sold := f.ledger.Stock("p1")
	if inStock != 5 || sold != 0 {
		t.Errorf("stock must be untouched, got %d/%d", inStock, sold)
	}
}

func TestCreateOrder_ShortageReportsEveryProduct(t *testing.T) {
	f := newFixture()
	f.ledger.SetStock("p1", 1, 0)
	f.ledger.SetStock("p2", 0, 0)

	input := validInput()
	input.Items = []domain.OrderItem{
		{ProductID: "p1", Name: "Keyboard", Amount: 2, Price: 25},
		{ProductID: "p2", Name: "Mouse", Amount: 1, Price: 10},
	}

	res, err := f.service.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("expected envelope, got error %v", err)
	}
	if !res.IsError() {
		t.Fatal("expected error envelope for insufficient stock")
	}
	if !strings.Contains(res.Message, "p1") || !strings.Contains(res.Message, "p2") {
		t.Errorf("message must name every short product, got %q", res.Message)
	}
	if len(f.repo.orders) != 0 {
		t.Error("no order may persist when stock is short")
	}
}

func TestCreateOrder_PartialShortageRollsBack(t *testing.T) {
	f := newFixture()
	f.ledger.SetStock("p1", 10, 3)
	f.ledger.SetStock("p2", 0, 0)

	input := validInput()
	input.Items = []domain.OrderItem{
		{ProductID: "p1", Name: "Keyboard", Amount: 2, Price: 25},
		{ProductID: "p2", Name: "Mouse", Amount: 1, Price: 10},
	}

	res, err := f.service.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("expected envelope, got error %v", err)
	}
	if !res.IsError() {
		t.Fatal("expected error envelope")
	}

	// p1's successful reservation must have been compensated.
	inStock, sold := f.ledger.Stock("p1")
	if inStock != 10 || sold != 3 {
		t.Errorf("expected p1 counters restored to 10/3, got %d/%d", inStock, sold)
	}
	if len(f.repo.orders) != 0 {
		t.Error("no order may persist on partial shortage")
	}
}

func TestCreateOrder_PersistFailureRollsBack(t *testing.T) {
	f := newFixture()
	f.ledger.SetStock("p1", 5, 0)
	f.repo.createErr = fmt.Errorf("connection reset")

	_, err := f.service.CreateOrder(context.Background(), validInput())
	if err == nil {
		t.Fatal("expected propagated error on persistence failure")
	}

	inStock, sold := f.ledger.Stock("p1")
	if inStock != 5 || sold != 0 {
		t.Errorf("expected counters restored to 5/0, got %d/%d", inStock, sold)
	}
}

func TestCreateOrder_NoItems(t *testing.T) {
	f := newFixture()

	input := validInput()
	input.Items = nil

	res, err := f.service.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("expected envelope, got error %v", err)
	}
	if !res.IsError() {
		t.Fatal("expected validation failure for empty items")
	}
}

func TestDeleteOrder_RestoresStock(t *testing.T) {
	f := newFixture()
	f.ledger.SetStock("p1", 5, 0)

	created, err := f.service.CreateOrder(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	orderID := created.Data.(*domain.Order).ID

	res, err := f.service.DeleteOrder(context.Background(), orderID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if res.IsError() {
		t.Fatalf("expected success envelope, got %+v", res)
	}

	// Round-trip: counters back to the pre-create values.
	inStock, sold := f.ledger.Stock("p1")
	if inStock != 5 || sold != 0 {
		t.Errorf("expected counters restored to 5/0, got %d/%d", inStock, sold)
	}

	if _, ok := f.repo.orders[orderID]; ok {
		t.Error("order must be gone after delete")
	}
}

func TestDeleteOrder_NotFound(t *testing.T) {
	f := newFixture()

	res, err := f.service.DeleteOrder(context.Background(), "missing")
	if err != nil {
		t.Fatalf("expected envelope, got error %v", err)
	}
	if !res.IsError() {
		t.Fatal("expected error envelope for missing order")
	}
}

func TestGetOrderDetails_NotFoundReturnsEarly(t *testing.T) {
	f := newFixture()

	res, err := f.service.GetOrderDetails(context.Background(), "missing")
	if err != nil {
		t.Fatalf("expected envelope, got error %v", err)
	}
	if !res.IsError() {
		t.Fatal("expected error envelope")
	}
	if res.Data != nil {
		t.Error("not-found must not carry data")
	}
}

func TestCancelOrder_PaidOrderRefused(t *testing.T) {
	f := newFixture()
	f.ledger.SetStock("p1", 5, 0)

	input := validInput()
	input.IsPaid = domain.PaymentPaid
	created, _ := f.service.CreateOrder(context.Background(), input)
	orderID := created.Data.(*domain.Order).ID

	res, err := f.service.CancelOrder(context.Background(), orderID)
	if err != nil {
		t.Fatalf("expected envelope, got error %v", err)
	}
	if !res.IsError() || res.TypeError != "INVALID" {
		t.Fatalf("expected validation failure cancelling a paid order, got %+v", res)
	}

	stored, _ := f.repo.GetByID(context.Background(), orderID)
	if stored.Status == domain.StatusCancelled {
		t.Error("paid order must not transition to cancelled")
	}
}

func TestCancelOrder_TransitionsToCancelled(t *testing.T) {
	f := newFixture()
	f.ledger.SetStock("p1", 5, 0)

	created, _ := f.service.CreateOrder(context.Background(), validInput())
	orderID := created.Data.(*domain.Order).ID

	res, err := f.service.CancelOrder(context.Background(), orderID)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if res.IsError() {
		t.Fatalf("expected success envelope, got %+v", res)
	}

	stored, _ := f.repo.GetByID(context.Background(), orderID)
	if stored.Status != domain.StatusCancelled {
		t.Errorf("expected cancelled status, got %d", stored.Status)
	}
	// Nothing else changes: stock stays consumed.
	inStock, sold := f.ledger.Stock("p1")
	if inStock != 3 || sold != 2 {
		t.Errorf("cancel must not touch stock, got %d/%d", inStock, sold)
	}

	if len(f.publisher.cancelled) != 1 {
		t.Errorf("expected 1 cancelled event, got %d", len(f.publisher.cancelled))
	}
}

func TestCancelMyOrder_OwnershipMismatch(t *testing.T) {
	f := newFixture()
	f.ledger.SetStock("p1", 5, 0)

	created, _ := f.service.CreateOrder(context.Background(), validInput())
	orderID := created.Data.(*domain.Order).ID

	res, err := f.service.CancelMyOrder(context.Background(), "user-2", orderID)
	if err != nil {
		t.Fatalf("expected envelope, got error %v", err)
	}
	if res.Status != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized envelope, got %+v", res)
	}

	stored, _ := f.repo.GetByID(context.Background(), orderID)
	if stored.Status == domain.StatusCancelled {
		t.Error("foreign order must not be cancelled")
	}
}

func TestGetMyOrderDetails_OwnershipMismatch(t *testing.T) {
	f := newFixture()
	f.ledger.SetStock("p1", 5, 0)

	created, _ := f.service.CreateOrder(context.Background(), validInput())
	orderID := created.Data.(*domain.Order).ID

	res, err := f.service.GetMyOrderDetails(context.Background(), "user-2", orderID)
	if err != nil {
		t.Fatalf("expected envelope, got error %v", err)
	}
	if res.Status != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized envelope, got %+v", res)
	}
	if res.Data != nil {
		t.Error("ownership mismatch must never leak the payload")
	}
}

func TestUpdateOrder_PatchSemantics(t *testing.T) {
	f := newFixture()
	f.ledger.SetStock("p1", 5, 0)

	created, _ := f.service.CreateOrder(context.Background(), validInput())
	orderID := created.Data.(*domain.Order).ID

	paid := domain.PaymentPaid
	res, err := f.service.UpdateOrder(context.Background(), orderID, UpdateOrderInput{
		IsPaid: &paid,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if res.IsError() {
		t.Fatalf("expected success envelope, got %+v", res)
	}

	stored, _ := f.repo.GetByID(context.Background(), orderID)
	if stored.IsPaid != domain.PaymentPaid {
		t.Errorf("expected isPaid updated to %d, got %d", domain.PaymentPaid, stored.IsPaid)
	}
	if stored.TotalPrice != 55 {
		t.Errorf("untouched fields must survive the patch, got total %v", stored.TotalPrice)
	}

	// Explicit zero is settable: the patch carries presence, not truthiness.
	unpaid := domain.PaymentUnpaid
	if _, err := f.service.UpdateOrder(context.Background(), orderID, UpdateOrderInput{IsPaid: &unpaid}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	stored, _ = f.repo.GetByID(context.Background(), orderID)
	if stored.IsPaid != domain.PaymentUnpaid {
		t.Errorf("expected isPaid reset to %d, got %d", domain.PaymentUnpaid, stored.IsPaid)
	}
}

func TestUpdateOrder_NotFoundIsHardFailure(t *testing.T) {
	f := newFixture()

	_, err := f.service.UpdateOrder(context.Background(), "missing", UpdateOrderInput{})
	if err == nil {
		t.Fatal("expected hard failure for missing order")
	}
	if !apperrors.Is(err, apperrors.CodeNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestListMyOrders_ScopesToActor(t *testing.T) {
	f := newFixture()
	f.ledger.SetStock("p1", 100, 0)

	for _, user := range []string{"user-1", "user-1", "user-2"} {
		input := validInput()
		input.UserID = user
		if _, err := f.service.CreateOrder(context.Background(), input); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	query := ports.ListOrdersQuery{Params: listing.FromQuery("", "", "", "")}
	res, err := f.service.ListMyOrders(context.Background(), "user-1", query)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	page := res.Data.(*OrderPage)
	if page.TotalCount != 2 {
		t.Errorf("expected 2 orders for user-1, got %d", page.TotalCount)
	}
	for _, order := range page.Orders {
		if order.UserID != "user-1" {
			t.Errorf("foreign order leaked into scoped list: %s", order.UserID)
		}
	}
}

func TestListOrders_PaginationMetadata(t *testing.T) {
	f := newFixture()
	f.ledger.SetStock("p1", 100, 0)

	for i := 0; i < 12; i++ {
		if _, err := f.service.CreateOrder(context.Background(), validInput()); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	query := ports.ListOrdersQuery{Params: listing.FromQuery("2", "10", "", "")}
	res, err := f.service.ListOrders(context.Background(), query)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	page := res.Data.(*OrderPage)
	if page.TotalCount != 12 {
		t.Errorf("expected total count 12, got %d", page.TotalCount)
	}
	if page.TotalPage != 2 {
		t.Errorf("expected 2 pages, got %d", page.TotalPage)
	}
	if len(page.Orders) != 2 {
		t.Errorf("expected 2 orders on page 2, got %d", len(page.Orders))
	}
}

func TestListOrders_FetchAllSentinel(t *testing.T) {
	f := newFixture()
	f.ledger.SetStock("p1", 100, 0)

	for i := 0; i < 12; i++ {
		if _, err := f.service.CreateOrder(context.Background(), validInput()); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	query := ports.ListOrdersQuery{Params: listing.FromQuery("-1", "-1", "", "")}
	res, err := f.service.ListOrders(context.Background(), query)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	page := res.Data.(*OrderPage)
	if len(page.Orders) != 12 {
		t.Errorf("fetch-all must return every record, got %d", len(page.Orders))
	}
	if page.TotalPage != 1 {
		t.Errorf("fetch-all must report a single page, got %d", page.TotalPage)
	}
}
