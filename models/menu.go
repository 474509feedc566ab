package models

// MenuItem is a row from menu_items. Immutable once created; identity is ID.
type MenuItem struct {
	ID       int64
	Name     string
	Category string // e.g. "Food", "Juice", "Hot Drink", "Soft Drink"
	Price    float64
}
