package report

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rest-pos/catalog"
	"rest-pos/models"
	"rest-pos/storage"
)

// fakeOrderStore serves canned orders; only OrdersForToday matters here.
type fakeOrderStore struct {
	orders []models.Order
}

func (f *fakeOrderStore) SaveOrder(context.Context, []models.OrderLine, bool) (int64, error) {
	return storage.InvalidOrderID, nil
}
func (f *fakeOrderStore) OrdersForToday(context.Context) ([]models.Order, error) {
	return f.orders, nil
}
func (f *fakeOrderStore) AllOrders(context.Context) ([]models.Order, error) {
	return f.orders, nil
}
func (f *fakeOrderStore) TaxedFlag(context.Context, int64) (bool, bool, error) {
	return false, false, nil
}
func (f *fakeOrderStore) DeleteOrder(context.Context, int64) error { return nil }

type fakeCashStore struct {
	amount float64
	err    error
}

func (f *fakeCashStore) AddCash(ctx context.Context, amount float64) error {
	f.amount += amount
	return nil
}
func (f *fakeCashStore) SetTodayCash(ctx context.Context, amount float64) error {
	f.amount = amount
	return nil
}
func (f *fakeCashStore) TodayCash(context.Context) (float64, error) {
	return f.amount, f.err
}

func testCatalog() *catalog.Catalog {
	return catalog.New([]models.MenuItem{burger, juice, coffee})
}

func TestBuildScenario(t *testing.T) {
	// cart was [Burger x2, Coffee x1], committed taxed
	orders := &fakeOrderStore{orders: []models.Order{
		order(true, line(burger, 2), line(coffee, 1)),
	}}
	engine := NewEngine(orders, &fakeCashStore{amount: 5000}, testCatalog())

	r, err := engine.Build(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 230, r.TotalSales, 1e-9)
	assert.InDelta(t, 5000, r.Cash, 1e-9)
	assert.InDelta(t, 4770, r.Delta, 1e-9)
	assert.InDelta(t, 0, r.HiddenAmount, 1e-9)
	assert.Equal(t, "209.09", fmt.Sprintf("%.2f", r.CompanyShare))
	assert.Equal(t, "20.91", fmt.Sprintf("%.2f", r.TaxOwed))

	require.Len(t, r.Categories, 3)
	assert.Equal(t, "Food", r.Categories[0].Category)
	assert.InDelta(t, 200, r.Categories[0].Amount, 1e-9)
	assert.Equal(t, "Juice", r.Categories[1].Category)
	assert.Zero(t, r.Categories[1].Amount)
	assert.Equal(t, "Hot Drink", r.Categories[2].Category)
	assert.InDelta(t, 30, r.Categories[2].Amount, 1e-9)
}

func TestBuildZeroOrders(t *testing.T) {
	engine := NewEngine(&fakeOrderStore{}, &fakeCashStore{}, testCatalog())

	r, err := engine.Build(context.Background())
	require.NoError(t, err)

	assert.Zero(t, r.TotalSales)
	assert.Zero(t, r.Cash)
	assert.Zero(t, r.Delta)
	assert.Zero(t, r.CompanyShare)
	assert.Zero(t, r.TaxOwed)
	assert.Zero(t, r.HiddenAmount)
	for _, c := range r.Categories {
		assert.Zero(t, c.Amount)
	}
	assert.False(t, r.Date.IsZero())
}

func TestBuildSurfacesStoreErrors(t *testing.T) {
	engine := NewEngine(&fakeOrderStore{}, &fakeCashStore{err: assert.AnError}, testCatalog())

	_, err := engine.Build(context.Background())
	assert.Error(t, err)
}
