package service

import (
	"context"
	"errors"

	"github.com/bizledger/bizledger-go/internal/model"
)

var ErrBusinessNameRequired = errors.New("business name is required")

// BusinessStore is the persistence surface the business flows depend on.
type BusinessStore interface {
	Create(ctx context.Context, b *model.Business) error
	ListByUser(ctx context.Context, userID string) ([]model.Business, error)
}

// BusinessService handles business management logic.
type BusinessService struct {
	store BusinessStore
}

// NewBusinessService creates a new BusinessService.
func NewBusinessService(store BusinessStore) *BusinessService {
	return &BusinessService{store: store}
}

// Create registers a new business under the given user.
func (s *BusinessService) Create(ctx context.Context, userID string, req model.CreateBusinessRequest) (model.CreateBusinessResponse, error) {
	if req.BusinessName == "" {
		return model.CreateBusinessResponse{}, ErrBusinessNameRequired
	}

	business := &model.Business{
		BusinessName: req.BusinessName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Address:      req.Address,
		TaxID:        req.TaxID,
		UserID:       userID,
	}

	if err := s.store.Create(ctx, business); err != nil {
		return model.CreateBusinessResponse{}, err
	}

	return model.CreateBusinessResponse{
		Message:    "Business created successfully",
		BusinessID: business.BusinessID,
	}, nil
}

// List returns the user's active businesses, newest first.
func (s *BusinessService) List(ctx context.Context, userID string) ([]model.Business, error) {
	return s.store.ListByUser(ctx, userID)
}
