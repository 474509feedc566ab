package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"rest-pos/models"
	"rest-pos/storage"
)

// SaveOrder commits the aggregated lines as one order in a single
// transaction; the database assigns the id and the timestamp.
func (s *Store) SaveOrder(ctx context.Context, lines []models.OrderLine, taxed bool) (int64, error) {
	if len(lines) == 0 {
		return storage.InvalidOrderID, nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return storage.InvalidOrderID, fmt.Errorf("begin order tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var orderID int64
	err = tx.QueryRow(ctx,
		"INSERT INTO orders (taxed) VALUES ($1) RETURNING id", taxed).Scan(&orderID)
	if err != nil {
		return storage.InvalidOrderID, fmt.Errorf("insert order: %w", err)
	}

	for _, line := range lines {
		_, err := tx.Exec(ctx,
			"INSERT INTO order_items (order_id, menu_item_id, quantity) VALUES ($1, $2, $3)",
			orderID, line.Item.ID, line.Quantity)
		if err != nil {
			return storage.InvalidOrderID, fmt.Errorf("insert order line: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return storage.InvalidOrderID, fmt.Errorf("commit order: %w", err)
	}
	return orderID, nil
}

const orderSelect = `
	SELECT o.id, o.timestamp, o.taxed,
	       m.id, m.name, m.category, m.price, oi.quantity
	FROM orders o
	JOIN order_items oi ON oi.order_id = o.id
	JOIN menu_items m ON m.id = oi.menu_item_id`

func (s *Store) OrdersForToday(ctx context.Context) ([]models.Order, error) {
	rows, err := s.pool.Query(ctx,
		orderSelect+" WHERE o.timestamp::date = CURRENT_DATE ORDER BY o.id DESC")
	if err != nil {
		return nil, fmt.Errorf("query today orders: %w", err)
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (s *Store) AllOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := s.pool.Query(ctx, orderSelect+" ORDER BY o.id DESC")
	if err != nil {
		return nil, fmt.Errorf("query all orders: %w", err)
	}
	defer rows.Close()
	return collectOrders(rows)
}

// collectOrders groups flattened header×line×item rows back into orders,
// keeping the query's row order via an explicit encounter-order list.
func collectOrders(rows pgx.Rows) ([]models.Order, error) {
	byID := make(map[int64]*models.Order)
	var order []int64

	for rows.Next() {
		var (
			o    models.Order
			item models.MenuItem
			qty  int
		)
		if err := rows.Scan(&o.ID, &o.Timestamp, &o.Taxed,
			&item.ID, &item.Name, &item.Category, &item.Price, &qty); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}

		existing, ok := byID[o.ID]
		if !ok {
			existing = &models.Order{ID: o.ID, Timestamp: o.Timestamp, Taxed: o.Taxed}
			byID[o.ID] = existing
			order = append(order, o.ID)
		}
		existing.Lines = append(existing.Lines, models.OrderLine{Item: item, Quantity: qty})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	orders := make([]models.Order, 0, len(order))
	for _, id := range order {
		orders = append(orders, *byID[id])
	}
	return orders, nil
}

func (s *Store) TaxedFlag(ctx context.Context, orderID int64) (bool, bool, error) {
	var taxed bool
	err := s.pool.QueryRow(ctx,
		"SELECT taxed FROM orders WHERE id = $1", orderID).Scan(&taxed)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("query taxed flag: %w", err)
	}
	return taxed, true, nil
}

// DeleteOrder removes the order header; order_items rows follow via the
// ON DELETE CASCADE constraint.
func (s *Store) DeleteOrder(ctx context.Context, orderID int64) error {
	if _, err := s.pool.Exec(ctx, "DELETE FROM orders WHERE id = $1", orderID); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
