package infrastructure

import (
	"github.com/gin-gonic/gin"

	"go-shop/internal/reviews/application"
	"go-shop/internal/reviews/ports"
	"go-shop/pkg/errors"
	"go-shop/pkg/listing"
	"go-shop/pkg/middleware"
	"go-shop/pkg/result"
)

// HTTPHandler handles HTTP requests for reviews
type HTTPHandler struct {
	service *application.ReviewService
}

// NewHTTPHandler creates a new HTTP handler
func NewHTTPHandler(service *application.ReviewService) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// RegisterRoutes registers the review routes. The /me routes are
// declared before the parameterized ones so "me" never binds as an id.
func (h *HTTPHandler) RegisterRoutes(r *gin.RouterGroup) {
	reviews := r.Group("/reviews")
	{
		reviews.POST("", h.CreateReview)
		reviews.GET("", h.ListReviews)
		reviews.PUT("/me/:id", middleware.RequireIdentity(), h.UpdateMyReview)
		reviews.PUT("/:id", h.UpdateReview)
		reviews.GET("/:id", h.GetReview)
		reviews.DELETE("/delete-many", h.DeleteMany)
		reviews.DELETE("/me/:id", middleware.RequireIdentity(), h.DeleteMyReview)
		reviews.DELETE("/:id", h.DeleteReview)
	}
}

// CreateReviewRequest is the request body for creating a review
type CreateReviewRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Star      int    `json:"star" binding:"required"`
}

// UpdateReviewRequest is the request body for updating a review
type UpdateReviewRequest struct {
	Content string `json:"content" binding:"required"`
	Star    int    `json:"star" binding:"required"`
}

// DeleteManyRequest is the request body for batch deletion
type DeleteManyRequest struct {
	ReviewIDs []string `json:"reviewIds" binding:"required"`
}

func writeEnvelope(c *gin.Context, res *result.Result) {
	c.JSON(res.Status, res)
}

// CreateReview handles POST /reviews
// @Summary Create a new review
// @Description Create a product review with a star rating from 1 to 5
// @Tags reviews
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Acting user id"
// @Param request body CreateReviewRequest true "Review creation request"
// @Success 201 {object} result.Result "Review created successfully"
// @Failure 400 {object} result.Result "Validation error"
// @Failure 500 {object} errors.ErrorResponse "Internal server error"
// @Router /api/v1/reviews [post]
func (h *HTTPHandler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	userID := middleware.ActorID(c)
	if userID == "" {
		userID = req.UserID
	}

	res, err := h.service.CreateReview(c.Request.Context(), application.CreateReviewInput{
		UserID:    userID,
		ProductID: req.ProductID,
		Content:   req.Content,
		Star:      req.Star,
	})
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}

// ListReviews handles GET /reviews
// @Summary List reviews
// @Description List reviews with pagination, content search and filters
// @Tags reviews
// @Produce json
// @Param page query int false "Page number, -1 with limit=-1 fetches all"
// @Param limit query int false "Page size"
// @Param search query string false "Substring match on content"
// @Param order query string false "Sort token, e.g. 'star desc'"
// @Param userId query string false "Filter by user ids, pipe-delimited"
// @Param productId query string false "Filter by product ids, pipe-delimited"
// @Success 200 {object} result.Result "Reviews retrieved successfully"
// @Failure 500 {object} errors.ErrorResponse "Internal server error"
// @Router /api/v1/reviews [get]
func (h *HTTPHandler) ListReviews(c *gin.Context) {
	query := ports.ListReviewsQuery{
		Params: listing.FromQuery(
			c.Query("page"),
			c.Query("limit"),
			c.Query("search"),
			c.Query("order"),
		),
		UserIDs:    listing.SplitIDs(c.Query("userId")),
		ProductIDs: listing.SplitIDs(c.Query("productId")),
	}
	res, err := h.service.ListReviews(c.Request.Context(), query)
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}

// GetReview handles GET /reviews/:id
// @Summary Get a review by ID
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} result.Result "Review retrieved successfully"
// @Failure 400 {object} result.Result "Review does not exist"
// @Router /api/v1/reviews/{id} [get]
func (h *HTTPHandler) GetReview(c *gin.Context) {
	res, err := h.service.GetReviewDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}

// UpdateReview handles PUT /reviews/:id
// @Summary Update a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body UpdateReviewRequest true "Review update request"
// @Success 201 {object} result.Result "Review updated successfully"
// @Failure 400 {object} result.Result "Validation error or review does not exist"
// @Router /api/v1/reviews/{id} [put]
func (h *HTTPHandler) UpdateReview(c *gin.Context) {
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	res, err := h.service.UpdateReview(c.Request.Context(), c.Param("id"), application.UpdateReviewInput{
		Content: req.Content,
		Star:    req.Star,
	})
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}

// UpdateMyReview handles PUT /reviews/me/:id
// @Summary Update one of the acting user's reviews
// @Tags reviews
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param id path string true "Review ID"
// @Param request body UpdateReviewRequest true "Review update request"
// @Success 201 {object} result.Result "Review updated successfully"
// @Failure 401 {object} result.Result "Review belongs to another user"
// @Router /api/v1/reviews/me/{id} [put]
func (h *HTTPHandler) UpdateMyReview(c *gin.Context) {
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	res, err := h.service.UpdateMyReview(c.Request.Context(), middleware.ActorID(c), c.Param("id"), application.UpdateReviewInput{
		Content: req.Content,
		Star:    req.Star,
	})
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}

// DeleteReview handles DELETE /reviews/:id
// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 201 {object} result.Result "Review deleted successfully"
// @Failure 400 {object} result.Result "Review does not exist"
// @Router /api/v1/reviews/{id} [delete]
func (h *HTTPHandler) DeleteReview(c *gin.Context) {
	res, err := h.service.DeleteReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}

// DeleteMyReview handles DELETE /reviews/me/:id
// @Summary Delete one of the acting user's reviews
// @Tags reviews
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param id path string true "Review ID"
// @Success 201 {object} result.Result "Review deleted successfully"
// @Failure 401 {object} result.Result "Review belongs to another user"
// @Router /api/v1/reviews/me/{id} [delete]
func (h *HTTPHandler) DeleteMyReview(c *gin.Context) {
	res, err := h.service.DeleteMyReview(c.Request.Context(), middleware.ActorID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}

// DeleteMany handles DELETE /reviews/delete-many
// @Summary Delete multiple reviews
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body DeleteManyRequest true "Review ids to delete"
// @Success 201 {object} result.Result "Reviews deleted successfully"
// @Failure 400 {object} result.Result "Missing ids"
// @Router /api/v1/reviews/delete-many [delete]
func (h *HTTPHandler) DeleteMany(c *gin.Context) {
	var req DeleteManyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	res, err := h.service.DeleteManyReviews(c.Request.Context(), req.ReviewIDs)
	if err != nil {
		c.Error(err)
		return
	}
	writeEnvelope(c, res)
}
