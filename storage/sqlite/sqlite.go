// Package sqlite provides a SQLite-backed implementation of the storage
// ports, the default backend for a single-location standalone install.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure Go SQLite driver, no CGO

	"rest-pos/models"
	"rest-pos/storage"
)

var _ storage.Store = (*Store)(nil)

// Timestamps are stored as local wall-clock strings so that date()
// comparisons stay in the restaurant's day, not UTC.
const timeLayout = "2006-01-02 15:04:05"

// Store implements storage.Store on a local SQLite database.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the database at path and applies the
// schema.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// order deletion relies on cascading to order_items
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// MenuItems returns the full menu in insertion order.
func (s *Store) MenuItems(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, category, price FROM menu_items ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query menu items: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Price); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate menu items: %w", err)
	}
	return items, nil
}

func (s *Store) AddMenuItem(ctx context.Context, item models.MenuItem) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO menu_items (name, category, price) VALUES (?, ?, ?)",
		item.Name, item.Category, item.Price)
	if err != nil {
		return 0, fmt.Errorf("insert menu item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("menu item id: %w", err)
	}
	return id, nil
}

// AddCash adds amount to today's cash entry, summing into the existing row
// if one exists. The UNIQUE constraint on date makes duplicate rows
// impossible.
func (s *Store) AddCash(ctx context.Context, amount float64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cash_log (date, amount) VALUES (date('now','localtime'), ?)
		ON CONFLICT(date) DO UPDATE SET amount = amount + excluded.amount`,
		amount)
	if err != nil {
		return fmt.Errorf("add cash: %w", err)
	}
	return nil
}

// SetTodayCash overwrites today's cash entry.
func (s *Store) SetTodayCash(ctx context.Context, amount float64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cash_log (date, amount) VALUES (date('now','localtime'), ?)
		ON CONFLICT(date) DO UPDATE SET amount = excluded.amount`,
		amount)
	if err != nil {
		return fmt.Errorf("set today cash: %w", err)
	}
	return nil
}

// TodayCash returns today's recorded cash; absence is 0, not an error.
func (s *Store) TodayCash(ctx context.Context) (float64, error) {
	var amount float64
	err := s.db.QueryRowContext(ctx,
		"SELECT amount FROM cash_log WHERE date = date('now','localtime')").Scan(&amount)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query today cash: %w", err)
	}
	return amount, nil
}

// LogAction appends an action to the logs table.
func (s *Store) LogAction(ctx context.Context, action string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO logs (action, timestamp) VALUES (?, ?)",
		action, time.Now().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("insert log: %w", err)
	}
	return nil
}

// Logs returns all log entries, newest first.
func (s *Store) Logs(ctx context.Context) ([]models.LogEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, action, timestamp FROM logs ORDER BY timestamp DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("query logs: %w", err)
	}
	defer rows.Close()

	var entries []models.LogEntry
	for rows.Next() {
		var (
			e  models.LogEntry
			ts string
		)
		if err := rows.Scan(&e.ID, &e.Action, &ts); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		e.Timestamp, err = time.ParseInLocation(timeLayout, ts, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parse log timestamp: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate logs: %w", err)
	}
	return entries, nil
}
