package repository

import (
	"context"
	"database/sql"
)

// sqliteSchema mirrors migrations/schema.sql for the embedded backend.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		userid TEXT PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		is_active BOOLEAN DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS businesses (
		business_id INTEGER PRIMARY KEY AUTOINCREMENT,
		business_name TEXT NOT NULL,
		contact_phone TEXT,
		contact_email TEXT,
		address TEXT,
		tax_id TEXT,
		user_id TEXT NOT NULL,
		is_active BOOLEAN DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users (userid)
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		client_id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_name TEXT NOT NULL,
		business_id INTEGER NOT NULL,
		is_active BOOLEAN DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (business_id) REFERENCES businesses (business_id)
	)`,
	`CREATE TABLE IF NOT EXISTS vendors (
		vendor_id INTEGER PRIMARY KEY AUTOINCREMENT,
		vendor_name TEXT NOT NULL,
		business_id INTEGER NOT NULL,
		is_active BOOLEAN DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (business_id) REFERENCES businesses (business_id)
	)`,
	`CREATE TABLE IF NOT EXISTS income (
		income_id INTEGER PRIMARY KEY AUTOINCREMENT,
		business_id INTEGER NOT NULL,
		client_id INTEGER,
		description TEXT,
		amount REAL NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (business_id) REFERENCES businesses (business_id),
		FOREIGN KEY (client_id) REFERENCES clients (client_id)
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		expense_id INTEGER PRIMARY KEY AUTOINCREMENT,
		business_id INTEGER NOT NULL,
		vendor_id INTEGER,
		description TEXT,
		amount REAL NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (business_id) REFERENCES businesses (business_id),
		FOREIGN KEY (vendor_id) REFERENCES vendors (vendor_id)
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		transaction_id INTEGER PRIMARY KEY AUTOINCREMENT,
		business_id INTEGER NOT NULL,
		transaction_type TEXT NOT NULL,
		reference_id INTEGER NOT NULL,
		amount REAL NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (business_id) REFERENCES businesses (business_id)
	)`,
}

// InitSchema creates the SQLite tables if they do not exist. The MySQL
// backend expects migrations/schema.sql to have been applied instead.
func InitSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range sqliteSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
