package application

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"go-shop/internal/reviews/domain"
	"go-shop/internal/reviews/ports"
	"go-shop/pkg/listing"
	"go-shop/pkg/logger"
	"go-shop/pkg/result"
)

// MockReviewRepository is an in-memory implementation of ReviewRepository
type MockReviewRepository struct {
	reviews map[string]*domain.Review
	nextID  int
}

func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{reviews: make(map[string]*domain.Review), nextID: 1}
}

func (m *MockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	review.ID = fmt.Sprintf("review-%d", m.nextID)
	m.nextID++
	stored := *review
	m.reviews[review.ID] = &stored
	return nil
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	review, ok := m.reviews[id]
	if !ok {
		return nil, domain.NewReviewNotFound(id)
	}
	copied := *review
	return &copied, nil
}

func (m *MockReviewRepository) Update(ctx context.Context, review *domain.Review) error {
	if _, ok := m.reviews[review.ID]; !ok {
		return domain.NewReviewNotFound(review.ID)
	}
	stored := *review
	m.reviews[review.ID] = &stored
	return nil
}

func (m *MockReviewRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.reviews[id]; !ok {
		return domain.NewReviewNotFound(id)
	}
	delete(m.reviews, id)
	return nil
}

func (m *MockReviewRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	var deleted int64
	for _, id := range ids {
		if _, ok := m.reviews[id]; ok {
			delete(m.reviews, id)
			deleted++
		}
	}
	return deleted, nil
}

func (m *MockReviewRepository) List(ctx context.Context, query ports.ListReviewsQuery) ([]*domain.Review, int64, error) {
	var matched []*domain.Review
	for _, review := range m.reviews {
		if query.Search != "" && !strings.Contains(review.Content, query.Search) {
			continue
		}
		if len(query.UserIDs) > 0 && !containsID(query.UserIDs, review.UserID) {
			continue
		}
		if len(query.ProductIDs) > 0 && !containsID(query.ProductIDs, review.ProductID) {
			continue
		}
		copied := *review
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

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func newService(t *testing.T) (*ReviewService, *MockReviewRepository) {
	t.Helper()
	repo := NewMockReviewRepository()
	log := logger.New("test", "error", "console")
	return NewReviewService(repo, log), repo
}

func mustCreate(t *testing.T, service *ReviewService, userID, productID string, star int) *domain.Review {
	t.Helper()
	res, err := service.CreateReview(context.Background(), CreateReviewInput{
		UserID:    userID,
		ProductID: productID,
		Content:   "Good product",
		Star:      star,
	})
	if err != nil {
		t.Fatalf("CreateReview returned error: %v", err)
	}
	if res.IsError() {
		t.Fatalf("CreateReview returned failure envelope: %s", res.Message)
	}
	return res.Data.(*domain.Review)
}

func TestCreateReview_Success(t *testing.T) {
	service, repo := newService(t)

	res, err := service.CreateReview(context.Background(), CreateReviewInput{
		UserID:    "user-1",
		ProductID: "product-1",
		Content:   "Exactly as described",
		Star:      5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError() {
		t.Fatalf("expected success, got %s", res.Message)
	}
	if res.Status != http.StatusCreated {
		t.Errorf("status = %d, want %d", res.Status, http.StatusCreated)
	}
	created := res.Data.(*domain.Review)
	if _, ok := repo.reviews[created.ID]; !ok {
		t.Error("review not persisted")
	}
}

func TestCreateReview_StarBounds(t *testing.T) {
	service, repo := newService(t)

	for _, star := range []int{0, 6, -1} {
		res, err := service.CreateReview(context.Background(), CreateReviewInput{
			UserID:    "user-1",
			ProductID: "product-1",
			Content:   "Anything",
			Star:      star,
		})
		if err != nil {
			t.Fatalf("star=%d: unexpected error: %v", star, err)
		}
		if !res.IsError() {
			t.Errorf("star=%d: expected failure envelope", star)
		}
		if res.Message != "The star must be between 1 and 5" {
			t.Errorf("star=%d: message = %q", star, res.Message)
		}
	}
	if len(repo.reviews) != 0 {
		t.Error("nothing should be persisted")
	}
}

func TestCreateReview_RequiresContent(t *testing.T) {
	service, _ := newService(t)

	res, err := service.CreateReview(context.Background(), CreateReviewInput{
		UserID:    "user-1",
		ProductID: "product-1",
		Star:      4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError() || res.TypeError != result.TypeInvalid {
		t.Fatalf("expected INVALID envelope, got %+v", res)
	}
}

func TestUpdateReview_Success(t *testing.T) {
	service, repo := newService(t)
	created := mustCreate(t, service, "user-1", "product-1", 3)

	res, err := service.UpdateReview(context.Background(), created.ID, UpdateReviewInput{
		Content: "Better than expected",
		Star:    5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError() {
		t.Fatalf("expected success, got %s", res.Message)
	}
	if repo.reviews[created.ID].Star != 5 {
		t.Errorf("star = %d, want 5", repo.reviews[created.ID].Star)
	}
}

func TestUpdateReview_NotFound(t *testing.T) {
	service, _ := newService(t)

	res, err := service.UpdateReview(context.Background(), "missing", UpdateReviewInput{
		Content: "Anything",
		Star:    3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError() || res.Message != "The review does not exist" {
		t.Fatalf("expected not-exist envelope, got %+v", res)
	}
}

func TestUpdateMyReview_OwnershipMismatch(t *testing.T) {
	service, repo := newService(t)
	created := mustCreate(t, service, "user-1", "product-1", 3)

	res, err := service.UpdateMyReview(context.Background(), "user-2", created.ID, UpdateReviewInput{
		Content: "Hijack attempt",
		Star:    1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError() || res.TypeError != result.TypeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED envelope, got %+v", res)
	}
	if res.Status != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", res.Status, http.StatusUnauthorized)
	}
	if repo.reviews[created.ID].Content != "Good product" {
		t.Error("review must be unchanged")
	}
}

func TestUpdateMyReview_OwnerSucceeds(t *testing.T) {
	service, _ := newService(t)
	created := mustCreate(t, service, "user-1", "product-1", 3)

	res, err := service.UpdateMyReview(context.Background(), "user-1", created.ID, UpdateReviewInput{
		Content: "Changed my mind",
		Star:    2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError() {
		t.Fatalf("expected success, got %s", res.Message)
	}
}

func TestGetReviewDetails_NotFoundReturnsEarly(t *testing.T) {
	service, _ := newService(t)

	res, err := service.GetReviewDetails(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError() || res.Message != "The review does not exist" {
		t.Fatalf("expected not-exist envelope, got %+v", res)
	}
}

func TestDeleteMyReview_OwnershipMismatch(t *testing.T) {
	service, repo := newService(t)
	created := mustCreate(t, service, "user-1", "product-1", 4)

	res, err := service.DeleteMyReview(context.Background(), "user-2", created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError() || res.TypeError != result.TypeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED envelope, got %+v", res)
	}
	if _, ok := repo.reviews[created.ID]; !ok {
		t.Error("review must not be deleted")
	}
}

func TestDeleteReview(t *testing.T) {
	service, repo := newService(t)
	created := mustCreate(t, service, "user-1", "product-1", 4)

	res, err := service.DeleteReview(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError() {
		t.Fatalf("expected success, got %s", res.Message)
	}
	if len(repo.reviews) != 0 {
		t.Error("review not deleted")
	}
}

func TestDeleteManyReviews(t *testing.T) {
	service, repo := newService(t)
	first := mustCreate(t, service, "user-1", "product-1", 4)
	second := mustCreate(t, service, "user-2", "product-1", 2)
	mustCreate(t, service, "user-3", "product-2", 5)

	res, err := service.DeleteManyReviews(context.Background(), []string{first.ID, second.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError() {
		t.Fatalf("expected success, got %s", res.Message)
	}
	if len(repo.reviews) != 1 {
		t.Errorf("remaining = %d, want 1", len(repo.reviews))
	}

	res, err = service.DeleteManyReviews(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError() || res.Message != "The field reviewIds is required" {
		t.Fatalf("expected required-ids envelope, got %+v", res)
	}
}

func TestListReviews_FiltersByProduct(t *testing.T) {
	service, _ := newService(t)
	mustCreate(t, service, "user-1", "product-1", 4)
	mustCreate(t, service, "user-2", "product-1", 2)
	mustCreate(t, service, "user-3", "product-2", 5)

	query := ports.ListReviewsQuery{
		Params:     listing.FromQuery("", "", "", ""),
		ProductIDs: []string{"product-1"},
	}
	res, err := service.ListReviews(context.Background(), query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	page := res.Data.(ReviewPage)
	if page.TotalCount != 2 {
		t.Errorf("totalCount = %d, want 2", page.TotalCount)
	}
	for _, review := range page.Reviews {
		if review.ProductID != "product-1" {
			t.Errorf("unexpected product %s in page", review.ProductID)
		}
	}
}

func TestListReviews_PaginationMetadata(t *testing.T) {
	service, _ := newService(t)
	for i := 0; i < 7; i++ {
		mustCreate(t, service, fmt.Sprintf("user-%d", i), "product-1", 3)
	}

	query := ports.ListReviewsQuery{Params: listing.FromQuery("1", "3", "", "")}
	res, err := service.ListReviews(context.Background(), query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	page := res.Data.(ReviewPage)
	if page.TotalPage != 3 {
		t.Errorf("totalPage = %d, want 3", page.TotalPage)
	}
	if len(page.Reviews) != 3 {
		t.Errorf("page size = %d, want 3", len(page.Reviews))
	}
}
