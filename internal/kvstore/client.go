package kvstore

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"nexus.regintel.org/internal/appconf"
	"nexus.regintel.org/internal/logging"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed schema.sql
var ddl string

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("kvstore: key not found")

// Client stores JSON-encoded values by key in a single SQLite table.
type Client struct {
	config Config
	DB     *sql.DB
	logger *slog.Logger
}

// NewClient opens the database described by config and applies the schema.
func NewClient(config Config, logger *slog.Logger) (*Client, error) {
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		return nil, fmt.Errorf("refusing to open %q in test environment", config.DBPath)
	}
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// every :memory: connection is its own database
	if config.DBPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := performDatabaseMigration(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error performing database migration: %w", err)
	}

	return &Client{
		config: config,
		DB:     db,
		logger: logger,
	}, nil
}

func performDatabaseMigration(ctx context.Context, db *sql.DB) error {
	for _, stmt := range strings.Split(ddl, "-- migrate") {
		trimmed := strings.TrimSpace(stmt)
		if trimmed == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, trimmed); err != nil {
			return fmt.Errorf("error executing DDL statement [%s]: %w", trimmed, err)
		}
	}
	return nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// Set stores v under key, replacing any previous value.
func (c *Client) Set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	_, err = c.DB.ExecContext(ctx,
		`INSERT INTO kv_store (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(raw))
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Get decodes the value stored under key into out.
func (c *Client) Get(ctx context.Context, key string, out any) error {
	var raw string
	err := c.DB.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (c *Client) Delete(ctx context.Context, key string) error {
	if _, err := c.DB.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// MSet stores all entries in one transaction.
func (c *Client) MSet(ctx context.Context, entries map[string]any) (err error) {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin mset: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, c.logger, "mset")

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO kv_store (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`)
	if err != nil {
		return fmt.Errorf("prepare mset: %w", err)
	}
	defer logging.HandleDeferredError(&err, stmt.Close, c.logger, "close_mset_statement")

	for key, v := range entries {
		raw, encErr := json.Marshal(v)
		if encErr != nil {
			return fmt.Errorf("encode %s: %w", key, encErr)
		}
		if _, execErr := stmt.ExecContext(ctx, key, string(raw)); execErr != nil {
			return fmt.Errorf("set %s: %w", key, execErr)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit mset: %w", err)
	}
	return nil
}

// MGet returns the raw JSON for each key that exists. Missing keys are absent from the map.
func (c *Client) MGet(ctx context.Context, keys []string) (map[string]json.RawMessage, error) {
	values := make(map[string]json.RawMessage, len(keys))
	if len(keys) == 0 {
		return values, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}

	rows, err := c.DB.QueryContext(ctx,
		`SELECT key, value FROM kv_store WHERE key IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("mget: %w", err)
	}
	defer logging.SafeCloseWithLogging(rows, c.logger, "mget_rows")

	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("mget scan: %w", err)
		}
		values[key] = json.RawMessage(raw)
	}
	return values, rows.Err()
}

// MDelete removes every key in keys.
func (c *Client) MDelete(ctx context.Context, keys []string) error {
	for _, key := range keys {
		if err := c.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// GetByPrefix returns the raw JSON values whose key starts with prefix, in key order.
func (c *Client) GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error) {
	rows, err := c.DB.QueryContext(ctx,
		`SELECT value FROM kv_store WHERE substr(key, 1, ?) = ? ORDER BY key`,
		len(prefix), prefix)
	if err != nil {
		return nil, fmt.Errorf("get by prefix %s: %w", prefix, err)
	}
	defer logging.SafeCloseWithLogging(rows, c.logger, "get_by_prefix_rows")

	var values []json.RawMessage
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("get by prefix scan: %w", err)
		}
		values = append(values, json.RawMessage(raw))
	}
	return values, rows.Err()
}
