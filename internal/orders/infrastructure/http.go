package infrastructure

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"go-shop/internal/orders/application"
	"go-shop/internal/orders/domain"
	"go-shop/internal/orders/ports"
	"go-shop/pkg/errors"
	"go-shop/pkg/listing"
	"go-shop/pkg/middleware"
	"go-shop/pkg/result"
)

// HTTPHandler handles HTTP requests for orders
type HTTPHandler struct {
	service *application.OrderService
}

// NewHTTPHandler creates a new HTTP handler
func NewHTTPHandler(service *application.OrderService) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// RegisterRoutes registers the order routes
func (h *HTTPHandler) RegisterRoutes(r *gin.RouterGroup) {
	orders := r.Group("/orders")
	{
		orders.POST("", h.CreateOrder)
		orders.GET("", h.ListOrders)
		orders.GET("/:orderId", h.GetOrder)
		orders.PUT("/:orderId", h.UpdateOrder)
		orders.DELETE("/:orderId", h.DeleteOrder)
		orders.POST("/cancel/:orderId", h.CancelOrder)

		me := orders.Group("/me", middleware.RequireIdentity())
		{
			me.GET("", h.ListMyOrders)
			me.GET("/:orderId", h.GetMyOrder)
			me.POST("/cancel/:orderId", h.CancelMyOrder)
		}
	}
}

// OrderItemRequest is one line item in an order request body
type OrderItemRequest struct {
	ProductID string  `json:"productId" binding:"required" example:"7f9edb29-64ad-4f4e-9be9-03f2e5bbf1f1"`
	Name      string  `json:"name" example:"Running shoes"`
	Amount    int     `json:"amount" binding:"required,gt=0" example:"2"`
	Price     float64 `json:"price" example:"59.9"`
}

// ShippingRequest is the shipping address in an order request body
type ShippingRequest struct {
	FullName string `json:"fullName" example:"John Doe"`
	Address  string `json:"address" example:"12 High Street"`
	Phone    string `json:"phone" example:"0123456789"`
	CityID   string `json:"cityId" example:"0a1b2c3d-0000-0000-0000-000000000001"`
}

// CreateOrderRequest is the request body for creating an order
type CreateOrderRequest struct {
	UserID           string             `json:"userId"`
	Email            string             `json:"email" example:"john@example.com"`
	Items            []OrderItemRequest `json:"items" binding:"required"`
	Shipping         ShippingRequest    `json:"shippingAddress"`
	PaymentMethodID  string             `json:"paymentMethodId"`
	DeliveryMethodID string             `json:"deliveryMethodId"`
	ItemsPrice       float64            `json:"itemsPrice"`
	ShippingPrice    float64            `json:"shippingPrice"`
	TotalPrice       float64            `json:"totalPrice"`
	IsPaid           int                `json:"isPaid"`
	PaidAt           *time.Time         `json:"paidAt"`
}

// UpdateOrderRequest is the request body for a partial order update.
// Absent fields leave the stored value untouched.
type UpdateOrderRequest struct {
	Items            []OrderItemRequest `json:"items"`
	Shipping         *ShippingRequest   `json:"shippingAddress"`
	PaymentMethodID  *string            `json:"paymentMethodId"`
	DeliveryMethodID *string            `json:"deliveryMethodId"`
	ItemsPrice       *float64           `json:"itemsPrice"`
	ShippingPrice    *float64           `json:"shippingPrice"`
	TotalPrice       *float64           `json:"totalPrice"`
	IsPaid           *int               `json:"isPaid"`
	PaidAt           *time.Time         `json:"paidAt"`
	DeliveryAt       *time.Time         `json:"deliveryAt"`
}

func toDomainItems(items []OrderItemRequest) []domain.OrderItem {
	out := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Amount:    item.Amount,
			Price:     item.Price,
		})
	}
	return out
}

// writeEnvelope renders the service envelope with its own status code.
func writeEnvelope(c *gin.Context, res *result.Result) {
	c.JSON(res.Status, res)
}

// CreateOrder handles POST /orders
// @Summary Create a new order
// @Description Reserve stock for every line item and persist the order
// @Tags orders
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Acting user id"
// @Param request body CreateOrderRequest true "Order creation request"
// @Success 201 {object} result.Result "Order created successfully"
// @Failure 400 {object} result.Result "Validation error or insufficient stock"
// @Failure 500 {object} errors.ErrorResponse "Internal server error"
// @Router /api/v1/orders [post]
func (h *HTTPHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	userID := middleware.ActorID(c)
	if userID == "" {
		userID = req.UserID
	}

	res, err := h.service.CreateOrder(c.Request.Context(), application.CreateOrderInput{
		UserID:           userID,
		Email:            req.Email,
		Items:            toDomainItems(req.Items),
		FullName:         req.Shipping.FullName,
		Address:          req.Shipping.Address,
		Phone:            req.Shipping.Phone,
		CityID:           req.Shipping.CityID,
		PaymentMethodID:  req.PaymentMethodID,
		DeliveryMethodID: req.DeliveryMethodID,
		ItemsPrice:       req.ItemsPrice,
		ShippingPrice:    req.ShippingPrice,
		TotalPrice:       req.TotalPrice,
		IsPaid:           req.IsPaid,
		PaidAt:           req.PaidAt,
	})
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}

// ListOrders handles GET /orders
// @Summary List orders
// @Description List orders with pagination, search and filters
// @Tags orders
// @Produce json
// @Param page query int false "Page number, -1 with limit=-1 fetches all"
// @Param limit query int false "Page size"
// @Param search query string false "Substring match on item names"
// @Param order query string false "Sort token, e.g. 'created desc'"
// @Param userId query string false "Filter by user ids, pipe-delimited"
// @Param productId query string false "Filter by product ids, pipe-delimited"
// @Param cityId query string false "Filter by city ids, pipe-delimited"
// @Param status query string false "Filter by statuses, pipe-delimited"
// @Success 200 {object} result.Result "Orders retrieved successfully"
// @Failure 500 {object} errors.ErrorResponse "Internal server error"
// @Router /api/v1/orders [get]
func (h *HTTPHandler) ListOrders(c *gin.Context) {
	res, err := h.service.ListOrders(c.Request.Context(), queryFromRequest(c))
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}

// ListMyOrders handles GET /orders/me
// @Summary List the acting user's orders
// @Description List the acting user's orders with pagination and filters
// @Tags orders
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} result.Result "Orders retrieved successfully"
// @Failure 401 {object} result.Result "Missing identity"
// @Router /api/v1/orders/me [get]
func (h *HTTPHandler) ListMyOrders(c *gin.Context) {
	res, err := h.service.ListMyOrders(c.Request.Context(), middleware.ActorID(c), queryFromRequest(c))
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}

// GetOrder handles GET /orders/:orderId
// @Summary Get an order by ID
// @Description Retrieve order details with items and shipping city
// @Tags orders
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} result.Result "Order retrieved successfully"
// @Failure 400 {object} result.Result "Order does not exist"
// @Router /api/v1/orders/{orderId} [get]
func (h *HTTPHandler) GetOrder(c *gin.Context) {
	res, err := h.service.GetOrderDetails(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}

// GetMyOrder handles GET /orders/me/:orderId
// @Summary Get one of the acting user's orders
// @Description Retrieve order details, refusing orders owned by other users
// @Tags orders
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param orderId path string true "Order ID"
// @Success 200 {object} result.Result "Order retrieved successfully"
// @Failure 401 {object} result.Result "Order belongs to another user"
// @Router /api/v1/orders/me/{orderId} [get]
func (h *HTTPHandler) GetMyOrder(c *gin.Context) {
	res, err := h.service.GetMyOrderDetails(c.Request.Context(), middleware.ActorID(c), c.Param("orderId"))
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}

// UpdateOrder handles PUT /orders/:orderId
// @Summary Update an order
// @Description Apply a partial update to an order
// @Tags orders
// @Accept json
// @Produce json
// @Param orderId path string true "Order ID"
// @Param request body UpdateOrderRequest true "Fields to update"
// @Success 201 {object} result.Result "Order updated successfully"
// @Failure 400 {object} result.Result "Validation error"
// @Failure 404 {object} errors.ErrorResponse "Order not found"
// @Router /api/v1/orders/{orderId} [put]
func (h *HTTPHandler) UpdateOrder(c *gin.Context) {
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	patch := application.UpdateOrderInput{
		PaymentMethodID:  req.PaymentMethodID,
		DeliveryMethodID: req.DeliveryMethodID,
		ItemsPrice:       req.ItemsPrice,
		ShippingPrice:    req.ShippingPrice,
		TotalPrice:       req.TotalPrice,
		IsPaid:           req.IsPaid,
		PaidAt:           req.PaidAt,
		DeliveryAt:       req.DeliveryAt,
	}
	if len(req.Items) > 0 {
		patch.Items = toDomainItems(req.Items)
	}
	if req.Shipping != nil {
		patch.Shipping = &domain.ShippingAddress{
			FullName: req.Shipping.FullName,
			Address:  req.Shipping.Address,
			Phone:    req.Shipping.Phone,
			CityID:   req.Shipping.CityID,
		}
	}

	res, err := h.service.UpdateOrder(c.Request.Context(), c.Param("orderId"), patch)
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}

// DeleteOrder handles DELETE /orders/:orderId
// @Summary Delete an order
// @Description Delete an order and restore its reserved stock
// @Tags orders
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 201 {object} result.Result "Order deleted successfully"
// @Failure 400 {object} result.Result "Order does not exist"
// @Router /api/v1/orders/{orderId} [delete]
func (h *HTTPHandler) DeleteOrder(c *gin.Context) {
	res, err := h.service.DeleteOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}

// CancelOrder handles POST /orders/cancel/:orderId
// @Summary Cancel an order
// @Description Cancel an unpaid order
// @Tags orders
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 201 {object} result.Result "Order cancelled successfully"
// @Failure 400 {object} result.Result "Order paid or does not exist"
// @Router /api/v1/orders/cancel/{orderId} [post]
func (h *HTTPHandler) CancelOrder(c *gin.Context) {
	res, err := h.service.CancelOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}

// CancelMyOrder handles POST /orders/me/cancel/:orderId
// @Summary Cancel one of the acting user's orders
// @Description Cancel an unpaid order owned by the acting user
// @Tags orders
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param orderId path string true "Order ID"
// @Success 201 {object} result.Result "Order cancelled successfully"
// @Failure 401 {object} result.Result "Order belongs to another user"
// @Router /api/v1/orders/me/cancel/{orderId} [post]
func (h *HTTPHandler) CancelMyOrder(c *gin.Context) {
	res, err := h.service.CancelMyOrder(c.Request.Context(), middleware.ActorID(c), c.Param("orderId"))
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}

// queryFromRequest coerces raw query parameters into a typed order query.
func queryFromRequest(c *gin.Context) ports.ListOrdersQuery {
	return ports.ListOrdersQuery{
		Params: listing.FromQuery(
			c.Query("page"),
			c.Query("limit"),
			c.Query("search"),
			c.Query("order"),
		),
		UserIDs:    listing.SplitIDs(c.Query("userId")),
		ProductIDs: listing.SplitIDs(c.Query("productId")),
		CityIDs:    listing.SplitIDs(c.Query("cityId")),
		Statuses:   parseStatuses(c.Query("status")),
	}
}

// parseStatuses expands a pipe-delimited status list, skipping tokens
// that are not integers.
func parseStatuses(raw string) []int {
	if raw == "" {
		return nil
	}
	var statuses []int
	for _, token := range strings.Split(raw, "|") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		n, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		statuses = append(statuses, n)
	}
	return statuses
}
