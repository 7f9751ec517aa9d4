package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardTotals(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM income").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(1500.75))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM expenses").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(320.25))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM clients").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	repo := NewDashboardRepository(db)

	income, err := repo.TotalIncome(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1500.75, income)

	expenses, err := repo.TotalExpenses(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 320.25, expenses)

	clients, err := repo.ClientCount(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), clients)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRecentTransactions(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	columns := []string{
		"transaction_id", "business_id", "transaction_type", "reference_id",
		"amount", "created_at", "description", "party_name",
	}
	mock.ExpectQuery("SELECT (.+) FROM transactions t").
		WithArgs(int64(1), 10).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(3, 1, "income", 11, 500.0, now, "Invoice #11", "Acme Client").
			AddRow(2, 1, "expense", 5, 80.0, now, "Office supplies", "Paper Co").
			AddRow(1, 1, "income", 9, 120.0, now, nil, nil))

	repo := NewDashboardRepository(db)
	transactions, err := repo.RecentTransactions(context.Background(), 1, 10)

	require.NoError(t, err)
	require.Len(t, transactions, 3)
	assert.Equal(t, "Invoice #11", transactions[0].Description)
	assert.Equal(t, "Acme Client", transactions[0].PartyName)
	assert.Equal(t, "expense", transactions[1].TransactionType)
	assert.Empty(t, transactions[2].Description)
	assert.Empty(t, transactions[2].PartyName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
