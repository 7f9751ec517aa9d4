package repository

import (
	"context"
	"database/sql"

	"github.com/bizledger/bizledger-go/internal/model"
)

// BusinessRepository handles business persistence operations.
type BusinessRepository struct {
	db *sql.DB
}

// NewBusinessRepository creates a new BusinessRepository.
func NewBusinessRepository(db *sql.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

// Create inserts a new business and sets the generated ID on the struct.
func (r *BusinessRepository) Create(ctx context.Context, b *model.Business) error {
	query := `INSERT INTO businesses (business_name, contact_phone, contact_email, address, tax_id, user_id)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		b.BusinessName, b.ContactPhone, b.ContactEmail, b.Address, b.TaxID, b.UserID)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	b.BusinessID = id
	return nil
}

// ListByUser returns the active businesses owned by a user, newest first.
func (r *BusinessRepository) ListByUser(ctx context.Context, userID string) ([]model.Business, error) {
	query := `SELECT business_id, business_name, contact_phone, contact_email, address, tax_id, user_id, is_active, created_at, updated_at
		FROM businesses WHERE user_id = ? AND is_active = TRUE ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	businesses := []model.Business{}
	for rows.Next() {
		var b model.Business
		var phone, email, address, taxID sql.NullString
		if err := rows.Scan(
			&b.BusinessID, &b.BusinessName, &phone, &email, &address, &taxID,
			&b.UserID, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		b.ContactPhone = phone.String
		b.ContactEmail = email.String
		b.Address = address.String
		b.TaxID = taxID.String
		businesses = append(businesses, b)
	}

	return businesses, rows.Err()
}
