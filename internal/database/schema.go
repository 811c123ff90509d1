package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		name TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS questions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		category TEXT NOT NULL,
		question TEXT NOT NULL,
		options TEXT NOT NULL,
		correct_answer INTEGER NOT NULL,
		explanation TEXT,
		difficulty TEXT DEFAULT 'medium',
		province TEXT DEFAULT 'all',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS test_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER,
		category TEXT NOT NULL,
		score INTEGER NOT NULL,
		total_questions INTEGER NOT NULL,
		correct_answers INTEGER NOT NULL,
		time_taken INTEGER,
		completed_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS user_progress (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER,
		category TEXT NOT NULL,
		questions_attempted INTEGER DEFAULT 0,
		questions_correct INTEGER DEFAULT 0,
		last_attempted DATETIME,
		FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
		UNIQUE(user_id, category)
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		name VARCHAR(255),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS questions (
		id SERIAL PRIMARY KEY,
		category VARCHAR(50) NOT NULL,
		question TEXT NOT NULL,
		options JSONB NOT NULL,
		correct_answer INTEGER NOT NULL,
		explanation TEXT,
		difficulty VARCHAR(20) DEFAULT 'medium',
		province VARCHAR(10) DEFAULT 'all',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS test_results (
		id SERIAL PRIMARY KEY,
		user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
		category VARCHAR(50) NOT NULL,
		score INTEGER NOT NULL,
		total_questions INTEGER NOT NULL,
		correct_answers INTEGER NOT NULL,
		time_taken INTEGER,
		completed_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS user_progress (
		id SERIAL PRIMARY KEY,
		user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
		category VARCHAR(50) NOT NULL,
		questions_attempted INTEGER DEFAULT 0,
		questions_correct INTEGER DEFAULT 0,
		last_attempted TIMESTAMP WITH TIME ZONE,
		UNIQUE(user_id, category)
	)`,
}

// Both dialects accept the same index statements
var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category)`,
	`CREATE INDEX IF NOT EXISTS idx_questions_province ON questions(province)`,
	`CREATE INDEX IF NOT EXISTS idx_test_results_user_id ON test_results(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_test_results_completed_at ON test_results(completed_at)`,
	`CREATE INDEX IF NOT EXISTS idx_user_progress_user_id ON user_progress(user_id)`,
}

// Children first so foreign keys never block a drop
var dropOrder = []string{"user_progress", "test_results", "questions", "users"}

// InitializeSchema creates the tables and indexes if they don't exist
func InitializeSchema(ctx context.Context, db *sqlx.DB) error {
	statements := sqliteSchema
	if IsPostgres(db) {
		statements = postgresSchema
	}

	for _, stmt := range append(statements, indexes...) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}

// ResetSchema drops every table and recreates the schema
func ResetSchema(ctx context.Context, db *sqlx.DB) error {
	for _, table := range dropOrder {
		stmt := "DROP TABLE IF EXISTS " + table
		if IsPostgres(db) {
			stmt += " CASCADE"
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to drop %s table: %w", table, err)
		}
	}
	return InitializeSchema(ctx, db)
}

// Tables lists the user tables present in the store
func Tables(ctx context.Context, db Querier) ([]string, error) {
	query := `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`
	if IsPostgres(db) {
		query = `SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' ORDER BY table_name`
	}

	tables := []string{}
	if err := db.SelectContext(ctx, &tables, query); err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return tables, nil
}
