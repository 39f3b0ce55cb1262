package application

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"go-shop/internal/reviews/domain"
	"go-shop/internal/reviews/ports"
	apperrors "go-shop/pkg/errors"
	"go-shop/pkg/logger"
	"go-shop/pkg/result"
)

// ReviewService implements the review business operations
type ReviewService struct {
	repo ports.ReviewRepository
	log  *logger.Logger
}

// NewReviewService creates a new review service
func NewReviewService(repo ports.ReviewRepository, log *logger.Logger) *ReviewService {
	return &ReviewService{repo: repo, log: log}
}

// CreateReviewInput carries the review creation request
type CreateReviewInput struct {
	UserID    string
	ProductID string
	Content   string
	Star      int
}

// UpdateReviewInput carries the mutable review fields
type UpdateReviewInput struct {
	Content string
	Star    int
}

// ReviewPage is the data payload of a list response
type ReviewPage struct {
	Reviews    []*domain.Review `json:"reviews"`
	TotalPage  int              `json:"totalPage"`
	TotalCount int64            `json:"totalCount"`
}

// CreateReview validates and persists a new review
func (s *ReviewService) CreateReview(ctx context.Context, input CreateReviewInput) (*result.Result, error) {
	now := time.Now()
	review := &domain.Review{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Content:   input.Content,
		Star:      input.Star,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := review.Validate(); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return result.Invalid(appErr.Message), nil
		}
		return nil, err
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, apperrors.NewInternal("failed to create review", err)
	}

	s.log.WithContext(ctx).Info("review created",
		zap.String("review_id", review.ID),
		zap.String("product_id", review.ProductID),
		zap.Int("star", review.Star),
	)
	return result.Done("Review created successfully", review), nil
}

// UpdateReview updates content and star of a review without ownership
// restrictions.
func (s *ReviewService) UpdateReview(ctx context.Context, id string, input UpdateReviewInput) (*result.Result, error) {
	return s.update(ctx, id, "", input)
}

// UpdateMyReview updates a review only when it belongs to the acting
// user.
func (s *ReviewService) UpdateMyReview(ctx context.Context, userID, id string, input UpdateReviewInput) (*result.Result, error) {
	return s.update(ctx, id, userID, input)
}

func (s *ReviewService) update(ctx context.Context, id, requireOwner string, input UpdateReviewInput) (*result.Result, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return result.Invalid("The review does not exist"), nil
		}
		return nil, err
	}
	if requireOwner != "" && !review.OwnedBy(requireOwner) {
		return result.Unauthorized("You do not have permission"), nil
	}

	review.Content = input.Content
	review.Star = input.Star
	review.UpdatedAt = time.Now()
	if err := review.Validate(); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return result.Invalid(appErr.Message), nil
		}
		return nil, err
	}

	if err := s.repo.Update(ctx, review); err != nil {
		return nil, apperrors.NewInternal("failed to update review", err)
	}
	return result.Done("Review updated successfully", review), nil
}

// GetReviewDetails retrieves a review by ID
func (s *ReviewService) GetReviewDetails(ctx context.Context, id string) (*result.Result, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return result.Invalid("The review does not exist"), nil
		}
		return nil, err
	}
	return result.Fetched(review), nil
}

// DeleteReview deletes a review without ownership restrictions
func (s *ReviewService) DeleteReview(ctx context.Context, id string) (*result.Result, error) {
	return s.delete(ctx, id, "")
}

// DeleteMyReview deletes a review only when it belongs to the acting
// user.
func (s *ReviewService) DeleteMyReview(ctx context.Context, userID, id string) (*result.Result, error) {
	return s.delete(ctx, id, userID)
}

func (s *ReviewService) delete(ctx context.Context, id, requireOwner string) (*result.Result, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return result.Invalid("The review does not exist"), nil
		}
		return nil, err
	}
	if requireOwner != "" && !review.OwnedBy(requireOwner) {
		return result.Unauthorized("You do not have permission"), nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return result.Invalid("The review does not exist"), nil
		}
		return nil, apperrors.NewInternal("failed to delete review", err)
	}
	return result.Done("Review deleted successfully", nil), nil
}

// DeleteManyReviews deletes a batch of reviews. Ids that do not exist
// are skipped silently.
func (s *ReviewService) DeleteManyReviews(ctx context.Context, ids []string) (*result.Result, error) {
	if len(ids) == 0 {
		return result.Invalid("The field reviewIds is required"), nil
	}
	deleted, err := s.repo.DeleteMany(ctx, ids)
	if err != nil {
		return nil, apperrors.NewInternal("failed to delete reviews", err)
	}
	s.log.WithContext(ctx).Info("reviews deleted",
		zap.Int64("deleted", deleted),
		zap.Int("requested", len(ids)),
	)
	return result.Done("Reviews deleted successfully", nil), nil
}

// ListReviews returns a page of reviews matching the query
func (s *ReviewService) ListReviews(ctx context.Context, query ports.ListReviewsQuery) (*result.Result, error) {
	reviews, count, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, apperrors.NewInternal("failed to list reviews", err)
	}
	return result.Fetched(ReviewPage{
		Reviews:    reviews,
		TotalPage:  query.TotalPages(count),
		TotalCount: count,
	}), nil
}
