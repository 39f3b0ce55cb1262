package infrastructure

import (
	"github.com/gin-gonic/gin"

	"go-shop/internal/payments/application"
	"go-shop/pkg/errors"
	"go-shop/pkg/listing"
	"go-shop/pkg/result"
)

// HTTPHandler handles HTTP requests for payment types
type HTTPHandler struct {
	service *application.PaymentTypeService
}

// NewHTTPHandler creates a new HTTP handler
func NewHTTPHandler(service *application.PaymentTypeService) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// RegisterRoutes registers the payment type routes
func (h *HTTPHandler) RegisterRoutes(r *gin.RouterGroup) {
	paymentTypes := r.Group("/payment-types")
	{
		paymentTypes.POST("", h.CreatePaymentType)
		paymentTypes.GET("", h.ListPaymentTypes)
		paymentTypes.GET("/:id", h.GetPaymentType)
		paymentTypes.PUT("/:id", h.UpdatePaymentType)
		paymentTypes.DELETE("/delete-many", h.DeleteMany)
		paymentTypes.DELETE("/:id", h.DeletePaymentType)
	}
}

// PaymentTypeRequest is the request body for create and update
type PaymentTypeRequest struct {
	Name string `json:"name" binding:"required" example:"Cash on delivery"`
	Type string `json:"type" binding:"required" example:"PAYMENT_LATER"`
}

// DeleteManyRequest is the request body for batch deletion
type DeleteManyRequest struct {
	PaymentTypeIDs []string `json:"paymentTypeIds" binding:"required"`
}

func writeEnvelope(c *gin.Context, res *result.Result) {
	c.JSON(res.Status, res)
}

// CreatePaymentType handles POST /payment-types
// @Summary Create a new payment type
// @Description Create a payment type with a name and an allowed type code
// @Tags payment-types
// @Accept json
// @Produce json
// @Param request body PaymentTypeRequest true "Payment type creation request"
// @Success 201 {object} result.Result "Payment type created successfully"
// @Failure 400 {object} result.Result "Validation error or type not allowed"
// @Failure 500 {object} errors.ErrorResponse "Internal server error"
// @Router /api/v1/payment-types [post]
func (h *HTTPHandler) CreatePaymentType(c *gin.Context) {
	var req PaymentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	res, err := h.service.CreatePaymentType(c.Request.Context(), application.PaymentTypeInput{
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}

// ListPaymentTypes handles GET /payment-types
// @Summary List payment types
// @Description List payment types with pagination and name search
// @Tags payment-types
// @Produce json
// @Param page query int false "Page number, -1 with limit=-1 fetches all"
// @Param limit query int false "Page size"
// @Param search query string false "Substring match on name"
// @Param order query string false "Sort token, e.g. 'created desc'"
// @Success 200 {object} result.Result "Payment types retrieved successfully"
// @Failure 500 {object} errors.ErrorResponse "Internal server error"
// @Router /api/v1/payment-types [get]
func (h *HTTPHandler) ListPaymentTypes(c *gin.Context) {
	params := listing.FromQuery(
		c.Query("page"),
		c.Query("limit"),
		c.Query("search"),
		c.Query("order"),
	)
	res, err := h.service.ListPaymentTypes(c.Request.Context(), params)
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}

// GetPaymentType handles GET /payment-types/:id
// @Summary Get a payment type by ID
// @Tags payment-types
// @Produce json
// @Param id path string true "Payment type ID"
// @Success 200 {object} result.Result "Payment type retrieved successfully"
// @Failure 400 {object} result.Result "Payment type does not exist"
// @Router /api/v1/payment-types/{id} [get]
func (h *HTTPHandler) GetPaymentType(c *gin.Context) {
	res, err := h.service.GetPaymentTypeDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}

// UpdatePaymentType handles PUT /payment-types/:id
// @Summary Update a payment type
// @Tags payment-types
// @Accept json
// @Produce json
// @Param id path string true "Payment type ID"
// @Param request body PaymentTypeRequest true "Payment type update request"
// @Success 201 {object} result.Result "Payment type updated successfully"
// @Failure 400 {object} result.Result "Validation error or payment type does not exist"
// @Router /api/v1/payment-types/{id} [put]
func (h *HTTPHandler) UpdatePaymentType(c *gin.Context) {
	var req PaymentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	res, err := h.service.UpdatePaymentType(c.Request.Context(), c.Param("id"), application.PaymentTypeInput{
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}

// DeletePaymentType handles DELETE /payment-types/:id
// @Summary Delete a payment type
// @Tags payment-types
// @Produce json
// @Param id path string true "Payment type ID"
// @Success 201 {object} result.Result "Payment type deleted successfully"
// @Failure 400 {object} result.Result "Payment type does not exist"
// @Router /api/v1/payment-types/{id} [delete]
func (h *HTTPHandler) DeletePaymentType(c *gin.Context) {
	res, err := h.service.DeletePaymentType(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}

// DeleteMany handles DELETE /payment-types/delete-many
// @Summary Delete multiple payment types
// @Tags payment-types
// @Accept json
// @Produce json
// @Param request body DeleteManyRequest true "Payment type ids to delete"
// @Success 201 {object} result.Result "Payment types deleted successfully"
// @Failure 400 {object} result.Result "Missing ids"
// @Router /api/v1/payment-types/delete-many [delete]
func (h *HTTPHandler) DeleteMany(c *gin.Context) {
	var req DeleteManyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	res, err := h.service.DeleteManyPaymentTypes(c.Request.Context(), req.PaymentTypeIDs)
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}
