package repository

import (
	"context"
	"database/sql"

	"github.com/bizledger/bizledger-go/internal/model"
)

// DashboardRepository runs the aggregate queries behind the dashboard.
type DashboardRepository struct {
	db *sql.DB
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(db *sql.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// TotalIncome sums all income recorded for a business.
func (r *DashboardRepository) TotalIncome(ctx context.Context, businessID int64) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM income WHERE business_id = ?`

	var total float64
	if err := r.db.QueryRowContext(ctx, query, businessID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// TotalExpenses sums all expenses recorded for a business.
func (r *DashboardRepository) TotalExpenses(ctx context.Context, businessID int64) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE business_id = ?`

	var total float64
	if err := r.db.QueryRowContext(ctx, query, businessID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// ClientCount counts a business's active clients.
func (r *DashboardRepository) ClientCount(ctx context.Context, businessID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM clients WHERE business_id = ? AND is_active = TRUE`

	var count int64
	if err := r.db.QueryRowContext(ctx, query, businessID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// RecentTransactions returns the newest transactions for a business, joined
// with the income/expense description and the client or vendor involved.
// Rows with no matching reference carry empty description and party name.
func (r *DashboardRepository) RecentTransactions(ctx context.Context, businessID int64, limit int) ([]model.TransactionSummary, error) {
	query := `SELECT t.transaction_id, t.business_id, t.transaction_type, t.reference_id, t.amount, t.created_at,
		CASE
			WHEN t.transaction_type = 'income' THEN i.description
			WHEN t.transaction_type = 'expense' THEN e.description
		END,
		CASE
			WHEN t.transaction_type = 'income' THEN c.client_name
			WHEN t.transaction_type = 'expense' THEN v.vendor_name
		END
		FROM transactions t
		LEFT JOIN income i ON t.reference_id = i.income_id AND t.transaction_type = 'income'
		LEFT JOIN expenses e ON t.reference_id = e.expense_id AND t.transaction_type = 'expense'
		LEFT JOIN clients c ON i.client_id = c.client_id
		LEFT JOIN vendors v ON e.vendor_id = v.vendor_id
		WHERE t.business_id = ?
		ORDER BY t.created_at DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, businessID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []model.TransactionSummary{}
	for rows.Next() {
		var tx model.TransactionSummary
		var description, party sql.NullString
		if err := rows.Scan(
			&tx.TransactionID, &tx.BusinessID, &tx.TransactionType, &tx.ReferenceID,
			&tx.Amount, &tx.CreatedAt, &description, &party,
		); err != nil {
			return nil, err
		}
		tx.Description = description.String
		tx.PartyName = party.String
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}
