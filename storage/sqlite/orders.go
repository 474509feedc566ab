package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rest-pos/models"
	"rest-pos/storage"
)

// SaveOrder commits the aggregated lines as one order inside a single
// transaction. The commit timestamp is taken here, not from the cart.
func (s *Store) SaveOrder(ctx context.Context, lines []models.OrderLine, taxed bool) (int64, error) {
	if len(lines) == 0 {
		return storage.InvalidOrderID, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storage.InvalidOrderID, fmt.Errorf("begin order tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO orders (timestamp, taxed) VALUES (?, ?)",
		time.Now().Format(timeLayout), taxed)
	if err != nil {
		return storage.InvalidOrderID, fmt.Errorf("insert order: %w", err)
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return storage.InvalidOrderID, fmt.Errorf("order id: %w", err)
	}

	for _, line := range lines {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO order_items (order_id, menu_item_id, quantity) VALUES (?, ?, ?)",
			orderID, line.Item.ID, line.Quantity)
		if err != nil {
			return storage.InvalidOrderID, fmt.Errorf("insert order line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
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

// OrdersForToday reconstructs today's orders, newest first.
func (s *Store) OrdersForToday(ctx context.Context) ([]models.Order, error) {
	rows, err := s.db.QueryContext(ctx,
		orderSelect+" WHERE date(o.timestamp) = date('now','localtime') ORDER BY o.id DESC")
	if err != nil {
		return nil, fmt.Errorf("query today orders: %w", err)
	}
	defer rows.Close()
	return collectOrders(rows)
}

// AllOrders reconstructs every order, newest first.
func (s *Store) AllOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := s.db.QueryContext(ctx, orderSelect+" ORDER BY o.id DESC")
	if err != nil {
		return nil, fmt.Errorf("query all orders: %w", err)
	}
	defer rows.Close()
	return collectOrders(rows)
}

// collectOrders groups flattened header×line×item rows back into orders.
// Grouping keys on order id but keeps an explicit encounter-order list, so
// the query's ORDER BY survives into the result.
func collectOrders(rows *sql.Rows) ([]models.Order, error) {
	byID := make(map[int64]*models.Order)
	var order []int64

	for rows.Next() {
		var (
			id    int64
			ts    string
			taxed bool
			item  models.MenuItem
			qty   int
		)
		if err := rows.Scan(&id, &ts, &taxed,
			&item.ID, &item.Name, &item.Category, &item.Price, &qty); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}

		o, ok := byID[id]
		if !ok {
			t, err := time.ParseInLocation(timeLayout, ts, time.Local)
			if err != nil {
				return nil, fmt.Errorf("parse order timestamp: %w", err)
			}
			o = &models.Order{ID: id, Timestamp: t, Taxed: taxed}
			byID[id] = o
			order = append(order, id)
		}
		o.Lines = append(o.Lines, models.OrderLine{Item: item, Quantity: qty})
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

// TaxedFlag reports whether the order was committed as taxed. A missing
// order yields ok=false with no error.
func (s *Store) TaxedFlag(ctx context.Context, orderID int64) (bool, bool, error) {
	var taxed bool
	err := s.db.QueryRowContext(ctx,
		"SELECT taxed FROM orders WHERE id = ?", orderID).Scan(&taxed)
	if err == sql.ErrNoRows {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("query taxed flag: %w", err)
	}
	return taxed, true, nil
}

// DeleteOrder removes the order header; line rows go with it via the
// ON DELETE CASCADE constraint.
func (s *Store) DeleteOrder(ctx context.Context, orderID int64) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM orders WHERE id = ?", orderID); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
