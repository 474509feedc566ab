// Package cart holds the operator's in-progress order before commit.
package cart

import "rest-pos/models"

// Cart is an ordered multiset of menu item selections. It is the single
// owned sequence; quantity aggregation is derived from it, never tracked
// separately. Not safe for concurrent use.
type Cart struct {
	selections []models.MenuItem
}

func New() *Cart {
	return &Cart{}
}

// Add appends one selection of item.
func (c *Cart) Add(item models.MenuItem) {
	c.selections = append(c.selections, item)
}

// RemoveLast drops the most recent selection ("undo last sale").
// A no-op on an empty cart.
func (c *Cart) RemoveLast() {
	if len(c.selections) == 0 {
		return
	}
	c.selections = c.selections[:len(c.selections)-1]
}

// Len returns the number of selections, counting duplicates.
func (c *Cart) Len() int {
	return len(c.selections)
}

func (c *Cart) Empty() bool {
	return len(c.selections) == 0
}

// Selections returns a copy of the raw selection sequence for display.
func (c *Cart) Selections() []models.MenuItem {
	out := make([]models.MenuItem, len(c.selections))
	copy(out, c.selections)
	return out
}

// Aggregate collapses the selections into quantity lines. Two selections
// belong to the same line iff they reference the same menu item id; lines
// keep first-seen order.
func (c *Cart) Aggregate() []models.OrderLine {
	var lines []models.OrderLine
	index := make(map[int64]int)
	for _, item := range c.selections {
		if i, ok := index[item.ID]; ok {
			lines[i].Quantity++
			continue
		}
		index[item.ID] = len(lines)
		lines = append(lines, models.OrderLine{Item: item, Quantity: 1})
	}
	return lines
}

// Total sums the price of every selection.
func (c *Cart) Total() float64 {
	var sum float64
	for _, item := range c.selections {
		sum += item.Price
	}
	return sum
}

// Clear empties the cart. Called after a successful commit or an explicit
// discard, never as part of a failed commit.
func (c *Cart) Clear() {
	c.selections = c.selections[:0]
}
