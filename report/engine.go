// Package report builds the daily reconciliation snapshot and its text
// artifact for the export and email collaborators.
package report

import (
	"context"
	"fmt"
	"time"

	"rest-pos/catalog"
	"rest-pos/ethiopic"
	"rest-pos/storage"
	"rest-pos/tax"
)

// CategorySales is one per-category line of the report.
type CategorySales struct {
	Category string
	Amount   float64
}

// Report is the reconciliation snapshot for one day. Figures are exact;
// rounding to currency precision happens only when rendering.
type Report struct {
	Date          time.Time
	EthiopianDate ethiopic.Date
	Categories    []CategorySales
	TotalSales    float64
	Cash          float64
	Delta         float64 // cash on hand minus total sales
	CompanyShare  float64
	TaxOwed       float64
	HiddenAmount  float64
}

// Engine composes the stores and the catalog into daily reports.
type Engine struct {
	orders  storage.OrderStore
	cash    storage.CashStore
	catalog *catalog.Catalog
}

func NewEngine(orders storage.OrderStore, cash storage.CashStore, cat *catalog.Catalog) *Engine {
	return &Engine{orders: orders, cash: cash, catalog: cat}
}

// Build reads today's committed state and assembles the snapshot.
func (e *Engine) Build(ctx context.Context) (*Report, error) {
	orders, err := e.orders.OrdersForToday(ctx)
	if err != nil {
		return nil, fmt.Errorf("load today's orders: %w", err)
	}
	cashOnHand, err := e.cash.TodayCash(ctx)
	if err != nil {
		return nil, fmt.Errorf("load today's cash: %w", err)
	}

	day := DaySales{Orders: orders}
	now := time.Now()
	r := &Report{
		Date:          now,
		EthiopianDate: ethiopic.FromGregorian(now),
		TotalSales:    day.TotalSales(),
		Cash:          cashOnHand,
		HiddenAmount:  day.HiddenAmount(),
	}
	for _, cat := range e.catalog.Categories() {
		r.Categories = append(r.Categories, CategorySales{
			Category: cat,
			Amount:   day.CategorySales(cat),
		})
	}
	r.Delta = cashOnHand - r.TotalSales
	r.CompanyShare, r.TaxOwed = tax.Split(day.TaxedAmount())
	return r, nil
}
