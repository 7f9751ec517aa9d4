package service

import (
	"context"
	"errors"

	"github.com/bizledger/bizledger-go/internal/model"
)

var ErrBusinessIDRequired = errors.New("business ID is required")

const recentTransactionLimit = 10

// DashboardStore is the aggregate-query surface behind the dashboard.
type DashboardStore interface {
	TotalIncome(ctx context.Context, businessID int64) (float64, error)
	TotalExpenses(ctx context.Context, businessID int64) (float64, error)
	ClientCount(ctx context.Context, businessID int64) (int64, error)
	RecentTransactions(ctx context.Context, businessID int64, limit int) ([]model.TransactionSummary, error)
}

// DashboardService assembles the dashboard statistics for a business.
type DashboardService struct {
	store DashboardStore
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(store DashboardStore) *DashboardService {
	return &DashboardService{store: store}
}

// Stats computes income/expense totals, net profit, client count and the
// recent-transactions feed for a business.
func (s *DashboardService) Stats(ctx context.Context, businessID int64) (model.DashboardResponse, error) {
	income, err := s.store.TotalIncome(ctx, businessID)
	if err != nil {
		return model.DashboardResponse{}, err
	}

	expenses, err := s.store.TotalExpenses(ctx, businessID)
	if err != nil {
		return model.DashboardResponse{}, err
	}

	clients, err := s.store.ClientCount(ctx, businessID)
	if err != nil {
		return model.DashboardResponse{}, err
	}

	transactions, err := s.store.RecentTransactions(ctx, businessID, recentTransactionLimit)
	if err != nil {
		return model.DashboardResponse{}, err
	}

	return model.DashboardResponse{
		Stats: model.DashboardStats{
			TotalIncome:   income,
			TotalExpenses: expenses,
			NetProfit:     income - expenses,
			ClientCount:   clients,
		},
		RecentTransactions: transactions,
	}, nil
}
