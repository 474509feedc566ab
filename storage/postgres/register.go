package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"rest-pos/models"
)

func (s *Store) MenuItems(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := s.pool.Query(ctx,
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
	var id int64
	err := s.pool.QueryRow(ctx,
		"INSERT INTO menu_items (name, category, price) VALUES ($1, $2, $3) RETURNING id",
		item.Name, item.Category, item.Price).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert menu item: %w", err)
	}
	return id, nil
}

// AddCash sums into today's single row; the UNIQUE constraint on date rules
// out duplicate rows and the upsert is one atomic statement, so concurrent
// same-day writes cannot lose updates.
func (s *Store) AddCash(ctx context.Context, amount float64) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO cash_log (date, amount) VALUES (CURRENT_DATE, $1)
		ON CONFLICT (date) DO UPDATE SET amount = cash_log.amount + EXCLUDED.amount`,
		amount)
	if err != nil {
		return fmt.Errorf("add cash: %w", err)
	}
	return nil
}

func (s *Store) SetTodayCash(ctx context.Context, amount float64) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO cash_log (date, amount) VALUES (CURRENT_DATE, $1)
		ON CONFLICT (date) DO UPDATE SET amount = EXCLUDED.amount`,
		amount)
	if err != nil {
		return fmt.Errorf("set today cash: %w", err)
	}
	return nil
}

func (s *Store) TodayCash(ctx context.Context) (float64, error) {
	var amount float64
	err := s.pool.QueryRow(ctx,
		"SELECT amount FROM cash_log WHERE date = CURRENT_DATE").Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query today cash: %w", err)
	}
	return amount, nil
}

func (s *Store) LogAction(ctx context.Context, action string) error {
	if _, err := s.pool.Exec(ctx,
		"INSERT INTO logs (action) VALUES ($1)", action); err != nil {
		return fmt.Errorf("insert log: %w", err)
	}
	return nil
}

func (s *Store) Logs(ctx context.Context) ([]models.LogEntry, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT id, action, timestamp FROM logs ORDER BY timestamp DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("query logs: %w", err)
	}
	defer rows.Close()

	var entries []models.LogEntry
	for rows.Next() {
		var e models.LogEntry
		if err := rows.Scan(&e.ID, &e.Action, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate logs: %w", err)
	}
	return entries, nil
}
