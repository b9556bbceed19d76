// Package sqlite implements repository.RecordRepository on SQLite via sqlx
// and the pure-Go modernc driver.
package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Client wraps the SQLite connection.
type Client struct {
	db  *sqlx.DB
	log *zap.Logger
}

// NewClient opens the database file at path, creating its directory when
// needed. The connection pool is capped at one open connection: the modernc
// driver serializes writers anyway, and a single connection makes last-write-
// wins on a record well defined without busy-retry handling.
func NewClient(ctx context.Context, path string, log *zap.Logger) (*Client, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	log.Info("Opening SQLite database", zap.String("path", path))

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	log.Info("SQLite database opened successfully")

	return &Client{db: db, log: log}, nil
}

// DB returns the underlying sqlx handle.
func (c *Client) DB() *sqlx.DB {
	return c.db
}

// Close closes the database connection.
func (c *Client) Close() error {
	c.log.Info("Closing SQLite database")
	if err := c.db.Close(); err != nil {
		c.log.Error("Error closing SQLite database", zap.Error(err))
		return err
	}
	return nil
}
