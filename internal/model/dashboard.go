package model

import "time"

// DashboardStats aggregates income, expenses and client counts for a business.
type DashboardStats struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
	ClientCount   int64   `json:"client_count"`
}

// TransactionSummary is one row of the recent-transactions feed, joined with
// the income/expense description and the client or vendor it involved.
type TransactionSummary struct {
	TransactionID   int64     `json:"transaction_id"`
	BusinessID      int64     `json:"business_id"`
	TransactionType string    `json:"transaction_type"`
	ReferenceID     int64     `json:"reference_id"`
	Amount          float64   `json:"amount"`
	Description     string    `json:"description"`
	PartyName       string    `json:"party_name"`
	CreatedAt       time.Time `json:"created_at"`
}

// DashboardResponse is the body of the dashboard stats endpoint.
type DashboardResponse struct {
	Stats              DashboardStats       `json:"stats"`
	RecentTransactions []TransactionSummary `json:"recent_transactions"`
}
