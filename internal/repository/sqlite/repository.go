package sqlite

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Repository implements repository.RecordRepository for SQLite.
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new SQLite repository.
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema creates the portal collections if they do not exist.
func (r *Repository) InitSchema(ctx context.Context) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS customers (
			id TEXT PRIMARY KEY,
			customer_id TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			age INTEGER NOT NULL DEFAULT 0,
			loyalty_tier TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			household_size INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			product_id TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			price REAL NOT NULL DEFAULT 0,
			currency TEXT NOT NULL DEFAULT '',
			tags TEXT NOT NULL DEFAULT '[]'
		);`,
		`CREATE TABLE IF NOT EXISTS stores (
			id TEXT PRIMARY KEY,
			store_id TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id TEXT PRIMARY KEY,
			transaction_id TEXT NOT NULL,
			customer_id TEXT NOT NULL,
			store_id TEXT NOT NULL DEFAULT '',
			total REAL NOT NULL DEFAULT 0,
			date TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS transaction_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tx_id TEXT NOT NULL,
			product_id TEXT NOT NULL,
			qty INTEGER NOT NULL DEFAULT 0,
			price REAL NOT NULL DEFAULT 0,
			line_total REAL NOT NULL DEFAULT 0,
			FOREIGN KEY(tx_id) REFERENCES transactions(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_transaction_items_tx ON transaction_items(tx_id);`,
		`CREATE TABLE IF NOT EXISTS offers (
			id TEXT PRIMARY KEY,
			offer_id TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			valid_until TEXT NOT NULL DEFAULT '',
			eligible_tiers TEXT NOT NULL DEFAULT '[]',
			category_scope TEXT NOT NULL DEFAULT '[]'
		);`,
	}

	for _, stmt := range schema {
		if _, err := r.client.DB().ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	r.log.Info("SQLite schema initialized successfully")
	return nil
}

// Ping checks if the database connection is alive.
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.DB().PingContext(ctx)
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.client.Close()
}
