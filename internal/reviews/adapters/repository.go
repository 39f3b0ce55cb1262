package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-shop/internal/reviews/domain"
	"go-shop/internal/reviews/ports"
	apperrors "go-shop/pkg/errors"
)

// ReviewModel is the GORM model for reviews
type ReviewModel struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"type:uuid;index;not null"`
	ProductID string    `gorm:"type:uuid;index;not null"`
	Content   string    `gorm:"type:text;not null"`
	Star      int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM
func (ReviewModel) TableName() string {
	return "reviews"
}

func reviewToModel(r *domain.Review) *ReviewModel {
	return &ReviewModel{
		ID:        r.ID,
		UserID:    r.UserID,
		ProductID: r.ProductID,
		Content:   r.Content,
		Star:      r.Star,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func reviewToDomain(m *ReviewModel) *domain.Review {
	return &domain.Review{
		ID:        m.ID,
		UserID:    m.UserID,
		ProductID: m.ProductID,
		Content:   m.Content,
		Star:      m.Star,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// sortColumns maps exposed sort fields to database columns.
var sortColumns = map[string]string{
	"created": "created_at",
	"updated": "updated_at",
	"star":    "star",
}

// PostgresReviewRepository implements ReviewRepository with GORM
type PostgresReviewRepository struct {
	db *gorm.DB
}

// NewPostgresReviewRepository creates a new repository
func NewPostgresReviewRepository(db *gorm.DB) *PostgresReviewRepository {
	return &PostgresReviewRepository{db: db}
}

// Migrate runs auto-migration for the review model
func (r *PostgresReviewRepository) Migrate() error {
	return r.db.AutoMigrate(&ReviewModel{})
}

// Create creates a new review
func (r *PostgresReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(reviewToModel(review)).Error; err != nil {
		return apperrors.NewInternal("failed to create review", err)
	}
	return nil
}

// GetByID retrieves a review by ID
func (r *PostgresReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	var model ReviewModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewReviewNotFound(id)
		}
		return nil, apperrors.NewInternal("failed to get review", err)
	}
	return reviewToDomain(&model), nil
}

// Update persists the full state of an existing review
func (r *PostgresReviewRepository) Update(ctx context.Context, review *domain.Review) error {
	if err := r.db.WithContext(ctx).Save(reviewToModel(review)).Error; err != nil {
		return apperrors.NewInternal("failed to update review", err)
	}
	return nil
}

// Delete deletes a review by ID
func (r *PostgresReviewRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&ReviewModel{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.NewInternal("failed to delete review", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewReviewNotFound(id)
	}
	return nil
}

// DeleteMany deletes the given reviews
func (r *PostgresReviewRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&ReviewModel{}, "id IN ?", ids)
	if result.Error != nil {
		return 0, apperrors.NewInternal("failed to delete reviews", result.Error)
	}
	return result.RowsAffected, nil
}

// List returns a page of reviews matching the query
func (r *PostgresReviewRepository) List(ctx context.Context, query ports.ListReviewsQuery) ([]*domain.Review, int64, error) {
	q := r.db.WithContext(ctx).Model(&ReviewModel{})

	if query.Search != "" {
		q = q.Where("content ILIKE ?", "%"+query.Search+"%")
	}
	if len(query.UserIDs) > 0 {
		q = q.Where("user_id IN ?", query.UserIDs)
	}
	if len(query.ProductIDs) > 0 {
		q = q.Where("product_id IN ?", query.ProductIDs)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, apperrors.NewInternal("failed to count reviews", err)
	}

	column, ok := sortColumns[query.Sort.Field]
	if !ok {
		column = "created_at"
	}
	direction := "ASC"
	if query.Sort.Desc {
		direction = "DESC"
	}
	q = q.Order(column + " " + direction)

	if !query.Unpaged() {
		q = q.Offset(query.Offset()).Limit(query.Limit)
	}

	var models []ReviewModel
	if err := q.Find(&models).Error; err != nil {
		return nil, 0, apperrors.NewInternal("failed to list reviews", err)
	}

	reviews := make([]*domain.Review, 0, len(models))
	for i := range models {
		reviews = append(reviews, reviewToDomain(&models[i]))
	}
	return reviews, count, nil
}
