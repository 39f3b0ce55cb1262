package application

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"go-shop/internal/payments/domain"
	"go-shop/internal/payments/ports"
	apperrors "go-shop/pkg/errors"
	"go-shop/pkg/listing"
	"go-shop/pkg/logger"
	"go-shop/pkg/result"
)

// PaymentTypeService implements the payment type business operations
type PaymentTypeService struct {
	repo ports.PaymentTypeRepository
	log  *logger.Logger
}

// NewPaymentTypeService creates a new payment type service
func NewPaymentTypeService(repo ports.PaymentTypeRepository, log *logger.Logger) *PaymentTypeService {
	return &PaymentTypeService{repo: repo, log: log}
}

// PaymentTypeInput carries the create/update request
type PaymentTypeInput struct {
	Name string
	Type string
}

// PaymentTypePage is the data payload of a list response
type PaymentTypePage struct {
	PaymentTypes []*domain.PaymentType `json:"paymentTypes"`
	TotalPage    int                   `json:"totalPage"`
	TotalCount   int64                 `json:"totalCount"`
}

// CreatePaymentType validates and persists a new payment type
func (s *PaymentTypeService) CreatePaymentType(ctx context.Context, input PaymentTypeInput) (*result.Result, error) {
	now := time.Now()
	paymentType := &domain.PaymentType{
		Name:      input.Name,
		Type:      input.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := paymentType.Validate(); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return result.Invalid(appErr.Message), nil
		}
		return nil, err
	}

	if err := s.repo.Create(ctx, paymentType); err != nil {
		if apperrors.Is(err, apperrors.CodeConflict) {
			return result.Invalid("The payment type name already exists"), nil
		}
		return nil, apperrors.NewInternal("failed to create payment type", err)
	}

	s.log.WithContext(ctx).Info("payment type created",
		zap.String("payment_type_id", paymentType.ID),
		zap.String("type", paymentType.Type),
	)
	return result.Done("Payment type created successfully", paymentType), nil
}

// UpdatePaymentType updates the name and type of an existing payment type
func (s *PaymentTypeService) UpdatePaymentType(ctx context.Context, id string, input PaymentTypeInput) (*result.Result, error) {
	paymentType, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return result.Invalid("The payment type does not exist"), nil
		}
		return nil, err
	}

	paymentType.Name = input.Name
	paymentType.Type = input.Type
	paymentType.UpdatedAt = time.Now()
	if err := paymentType.Validate(); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return result.Invalid(appErr.Message), nil
		}
		return nil, err
	}

	if err := s.repo.Update(ctx, paymentType); err != nil {
		if apperrors.Is(err, apperrors.CodeConflict) {
			return result.Invalid("The payment type name already exists"), nil
		}
		return nil, apperrors.NewInternal("failed to update payment type", err)
	}
	return result.Done("Payment type updated successfully", paymentType), nil
}

// GetPaymentTypeDetails retrieves a payment type by ID
func (s *PaymentTypeService) GetPaymentTypeDetails(ctx context.Context, id string) (*result.Result, error) {
	paymentType, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return result.Invalid("The payment type does not exist"), nil
		}
		return nil, err
	}
	return result.Fetched(paymentType), nil
}

// DeletePaymentType deletes a payment type by ID
func (s *PaymentTypeService) DeletePaymentType(ctx context.Context, id string) (*result.Result, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return result.Invalid("The payment type does not exist"), nil
		}
		return nil, apperrors.NewInternal("failed to delete payment type", err)
	}
	return result.Done("Payment type deleted successfully", nil), nil
}

// DeleteManyPaymentTypes deletes a batch of payment types. Ids that do
// not exist are skipped silently.
func (s *PaymentTypeService) DeleteManyPaymentTypes(ctx context.Context, ids []string) (*result.Result, error) {
	if len(ids) == 0 {
		return result.Invalid("The field paymentTypeIds is required"), nil
	}
	deleted, err := s.repo.DeleteMany(ctx, ids)
	if err != nil {
		return nil, apperrors.NewInternal("failed to delete payment types", err)
	}
	s.log.WithContext(ctx).Info("payment types deleted",
		zap.Int64("deleted", deleted),
		zap.Int("requested", len(ids)),
	)
	return result.Done("Payment types deleted successfully", nil), nil
}

// ListPaymentTypes returns a page of payment types
func (s *PaymentTypeService) ListPaymentTypes(ctx context.Context, params listing.Params) (*result.Result, error) {
	paymentTypes, count, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, apperrors.NewInternal("failed to list payment types", err)
	}
	return result.Fetched(PaymentTypePage{
		PaymentTypes: paymentTypes,
		TotalPage:    params.TotalPages(count),
		TotalCount:   count,
	}), nil
}
