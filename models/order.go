package models

import "time"

// OrderLine is one aggregated line of an order: a menu item and how many
// units of it were sold. Lines exist only inside an Order.
type OrderLine struct {
	Item     MenuItem
	Quantity int
}

// Order is a committed sale. ID and Timestamp are assigned by the store at
// commit time; a persisted order always has at least one line.
type Order struct {
	ID        int64
	Timestamp time.Time
	Taxed     bool
	Lines     []OrderLine
}

// Total returns the order value, counting each unit of quantity once.
func (o Order) Total() float64 {
	var sum float64
	for _, line := range o.Lines {
		sum += line.Item.Price * float64(line.Quantity)
	}
	return sum
}
