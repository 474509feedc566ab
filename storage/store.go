// Package storage defines the persistence ports of the POS core. Backends
// live in subpackages; the report engine and the operator surface receive
// these interfaces so tests can substitute fakes or a throwaway SQLite
// database.
package storage

import (
	"context"

	"rest-pos/models"
)

// InvalidOrderID is the sentinel returned by SaveOrder for an empty line
// set. Committing an empty cart is a defined no-op, not an error.
const InvalidOrderID int64 = -1

// OrderStore commits and retrieves orders.
type OrderStore interface {
	// SaveOrder writes one order header and one row per aggregated line in
	// a single transaction; either all rows commit or none do. The store
	// assigns the order id and the commit timestamp. An empty line set
	// writes nothing and returns InvalidOrderID.
	SaveOrder(ctx context.Context, lines []models.OrderLine, taxed bool) (int64, error)

	// OrdersForToday returns today's orders, newest first, each with its
	// full reconstructed line set.
	OrdersForToday(ctx context.Context) ([]models.Order, error)

	// AllOrders is OrdersForToday without the date bound.
	AllOrders(ctx context.Context) ([]models.Order, error)

	// TaxedFlag reports the taxed flag of an order. ok is false when no
	// such order exists; absence is an expected condition, not an error.
	TaxedFlag(ctx context.Context, orderID int64) (taxed, ok bool, err error)

	// DeleteOrder removes the order and all of its line rows.
	DeleteOrder(ctx context.Context, orderID int64) error
}

// CashStore keeps one cash figure per calendar day.
type CashStore interface {
	// AddCash adds amount to today's entry, creating it when absent.
	AddCash(ctx context.Context, amount float64) error

	// SetTodayCash overwrites today's entry, creating it when absent.
	SetTodayCash(ctx context.Context, amount float64) error

	// TodayCash returns today's amount, 0 when no entry exists.
	TodayCash(ctx context.Context) (float64, error)
}

// MenuStore reads and administers the menu.
type MenuStore interface {
	MenuItems(ctx context.Context) ([]models.MenuItem, error)
	AddMenuItem(ctx context.Context, item models.MenuItem) (int64, error)
}

// ActionLog records operator actions, append-only.
type ActionLog interface {
	LogAction(ctx context.Context, action string) error
	Logs(ctx context.Context) ([]models.LogEntry, error)
}

// Store is the full persistence surface a backend provides.
type Store interface {
	OrderStore
	CashStore
	MenuStore
	ActionLog
	Close() error
}
