package repository

import (
	"database/sql"
	"log/slog"
	"time"
)

// NewDB opens a database connection pool for the given driver ("mysql" or
// "sqlite3") and DSN. Both drivers are registered by this package's imports.
func NewDB(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == "sqlite3" {
		// SQLite serializes writers; a single connection avoids busy errors.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		slog.Warn("database ping failed — continuing without DB", "error", err)
	}

	return db, nil
}
