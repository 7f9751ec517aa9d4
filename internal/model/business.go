package model

import "time"

// Business represents a business row owned by a user.
type Business struct {
	BusinessID   int64     `json:"business_id"`
	BusinessName string    `json:"business_name"`
	ContactPhone string    `json:"contact_phone"`
	ContactEmail string    `json:"contact_email"`
	Address      string    `json:"address"`
	TaxID        string    `json:"tax_id"`
	UserID       string    `json:"user_id"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateBusinessRequest represents a business creation request.
type CreateBusinessRequest struct {
	BusinessName string `json:"business_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`
	Address      string `json:"address"`
	TaxID        string `json:"tax_id"`
}

// CreateBusinessResponse confirms a created business and its generated ID.
type CreateBusinessResponse struct {
	Message    string `json:"message"`
	BusinessID int64  `json:"business_id"`
}
