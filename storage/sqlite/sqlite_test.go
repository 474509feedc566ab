package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rest-pos/models"
	"rest-pos/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "pos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seedMenu(t *testing.T, s *Store) (burger, coffee models.MenuItem) {
	t.Helper()
	ctx := context.Background()

	id, err := s.AddMenuItem(ctx, models.MenuItem{Name: "Burger", Category: "Food", Price: 100})
	require.NoError(t, err)
	burger = models.MenuItem{ID: id, Name: "Burger", Category: "Food", Price: 100}

	id, err = s.AddMenuItem(ctx, models.MenuItem{Name: "Coffee", Category: "Hot Drink", Price: 30})
	require.NoError(t, err)
	coffee = models.MenuItem{ID: id, Name: "Coffee", Category: "Hot Drink", Price: 30}
	return burger, coffee
}

func TestMenuItems(t *testing.T) {
	s := newTestStore(t)
	burger, coffee := seedMenu(t, s)

	items, err := s.MenuItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, burger, items[0])
	assert.Equal(t, coffee, items[1])
}

func TestSaveOrderRoundTrip(t *testing.T) {
	s := newTestStore(t)
	burger, coffee := seedMenu(t, s)
	ctx := context.Background()

	id, err := s.SaveOrder(ctx, []models.OrderLine{
		{Item: burger, Quantity: 2},
		{Item: coffee, Quantity: 1},
	}, true)
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	orders, err := s.OrdersForToday(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, id, o.ID)
	assert.True(t, o.Taxed)
	assert.False(t, o.Timestamp.IsZero())
	require.Len(t, o.Lines, 2)
	assert.Equal(t, burger, o.Lines[0].Item)
	assert.Equal(t, 2, o.Lines[0].Quantity)
	assert.Equal(t, coffee, o.Lines[1].Item)
	assert.Equal(t, 1, o.Lines[1].Quantity)
	assert.InDelta(t, 230, o.Total(), 1e-9)
}

func TestSaveOrderEmptyIsNoOp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.SaveOrder(ctx, nil, false)
	require.NoError(t, err)
	assert.Equal(t, storage.InvalidOrderID, id)

	var headers int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM orders").Scan(&headers))
	assert.Zero(t, headers)
}

func TestOrdersNewestFirst(t *testing.T) {
	s := newTestStore(t)
	burger, coffee := seedMenu(t, s)
	ctx := context.Background()

	first, err := s.SaveOrder(ctx, []models.OrderLine{{Item: burger, Quantity: 1}}, false)
	require.NoError(t, err)
	second, err := s.SaveOrder(ctx, []models.OrderLine{{Item: coffee, Quantity: 3}}, true)
	require.NoError(t, err)

	orders, err := s.AllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second, orders[0].ID)
	assert.Equal(t, first, orders[1].ID)
}

func TestTaxedFlag(t *testing.T) {
	s := newTestStore(t)
	burger, _ := seedMenu(t, s)
	ctx := context.Background()

	id, err := s.SaveOrder(ctx, []models.OrderLine{{Item: burger, Quantity: 1}}, true)
	require.NoError(t, err)

	taxed, ok, err := s.TaxedFlag(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, taxed)

	taxed, ok, err = s.TaxedFlag(ctx, id+100)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, taxed)
}

func TestDeleteOrderCascades(t *testing.T) {
	s := newTestStore(t)
	burger, coffee := seedMenu(t, s)
	ctx := context.Background()

	id, err := s.SaveOrder(ctx, []models.OrderLine{
		{Item: burger, Quantity: 1},
		{Item: coffee, Quantity: 2},
	}, false)
	require.NoError(t, err)

	require.NoError(t, s.DeleteOrder(ctx, id))

	orders, err := s.AllOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	// no orphaned line rows
	var lines int
	require.NoError(t, s.db.QueryRow(
		"SELECT COUNT(*) FROM order_items WHERE order_id = ?", id).Scan(&lines))
	assert.Zero(t, lines)
}

func TestCashDefaultsToZero(t *testing.T) {
	s := newTestStore(t)

	amount, err := s.TodayCash(context.Background())
	require.NoError(t, err)
	assert.Zero(t, amount)
}

func TestAddCashSums(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddCash(ctx, 100))
	require.NoError(t, s.AddCash(ctx, 250.5))

	amount, err := s.TodayCash(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 350.5, amount, 1e-9)

	// one row per date, never duplicates
	var rows int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM cash_log").Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestSetTodayCashOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetTodayCash(ctx, 5000))
	amount, err := s.TodayCash(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 5000, amount, 1e-9)

	require.NoError(t, s.SetTodayCash(ctx, 6000))
	amount, err = s.TodayCash(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 6000, amount, 1e-9)
}

func TestActionLog(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.LogAction(ctx, "User committed sale"))
	require.NoError(t, s.LogAction(ctx, "User edited cash: 6000"))

	entries, err := s.Logs(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "User edited cash: 6000", entries[0].Action)
	assert.Equal(t, "User committed sale", entries[1].Action)
	assert.False(t, entries[0].Timestamp.IsZero())
}
