// Package catalog provides a read-only in-memory view of the menu.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"rest-pos/models"
	"rest-pos/storage"
)

// Catalog is the menu as loaded from the store at startup. Items never
// change through the catalog; administration goes through the store and a
// reload.
type Catalog struct {
	items      []models.MenuItem
	byID       map[int64]models.MenuItem
	categories []string
}

// New builds a catalog from items. Category order is the first-seen order
// of the item list; duplicate categories are folded case-insensitively,
// keeping the first spelling.
func New(items []models.MenuItem) *Catalog {
	c := &Catalog{
		items: items,
		byID:  make(map[int64]models.MenuItem, len(items)),
	}
	seen := make(map[string]bool)
	for _, item := range items {
		c.byID[item.ID] = item
		key := strings.ToLower(item.Category)
		if !seen[key] {
			seen[key] = true
			c.categories = append(c.categories, item.Category)
		}
	}
	return c
}

// Load reads the full menu from the store.
func Load(ctx context.Context, store storage.MenuStore) (*Catalog, error) {
	items, err := store.MenuItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	return New(items), nil
}

func (c *Catalog) Items() []models.MenuItem {
	return c.items
}

// Item looks up a menu item by id.
func (c *Catalog) Item(id int64) (models.MenuItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Categories returns the distinct category labels in first-seen order.
func (c *Catalog) Categories() []string {
	return c.categories
}

// ItemsInCategory returns the items whose category matches case-insensitively.
func (c *Catalog) ItemsInCategory(category string) []models.MenuItem {
	var out []models.MenuItem
	for _, item := range c.items {
		if strings.EqualFold(item.Category, category) {
			out = append(out, item)
		}
	}
	return out
}
