package report

import (
	"strings"

	"rest-pos/models"
)

// DaySales aggregates over one day's committed orders. All sums count each
// unit of quantity once; zero orders yield zero everywhere.
type DaySales struct {
	Orders []models.Order
}

// CategorySales sums line prices for items of the category,
// case-insensitively.
func (d DaySales) CategorySales(category string) float64 {
	var sum float64
	for _, o := range d.Orders {
		for _, line := range o.Lines {
			if strings.EqualFold(line.Item.Category, category) {
				sum += line.Item.Price * float64(line.Quantity)
			}
		}
	}
	return sum
}

// TotalSales sums every line across every order, regardless of category or
// taxed status.
func (d DaySales) TotalSales() float64 {
	var sum float64
	for _, o := range d.Orders {
		sum += o.Total()
	}
	return sum
}

// TaxedAmount sums the lines of orders flagged taxed at commit time.
func (d DaySales) TaxedAmount() float64 {
	var sum float64
	for _, o := range d.Orders {
		if o.Taxed {
			sum += o.Total()
		}
	}
	return sum
}

// HiddenAmount is the portion of sales not flagged as taxed.
func (d DaySales) HiddenAmount() float64 {
	return d.TotalSales() - d.TaxedAmount()
}
