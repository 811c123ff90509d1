package database

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Maintenance exposes schema level operations used by setup and diagnostics
type Maintenance struct {
	db *sqlx.DB
}

// NewMaintenance creates a Maintenance bound to db
func NewMaintenance(db *sqlx.DB) *Maintenance {
	return &Maintenance{db: db}
}

// Reset drops and recreates every table
func (m *Maintenance) Reset(ctx context.Context) error {
	return ResetSchema(ctx, m.db)
}

// Tables lists the tables present in the store
func (m *Maintenance) Tables(ctx context.Context) ([]string, error) {
	return Tables(ctx, m.db)
}

// DatabaseType returns a human readable name of the backing store
func (m *Maintenance) DatabaseType() string {
	if IsPostgres(m.db) {
		return "PostgreSQL"
	}
	return "SQLite"
}

// Ping checks the connection is alive
func (m *Maintenance) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}
