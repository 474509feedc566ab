package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rest-pos/models"
)

var (
	burger = models.MenuItem{ID: 1, Name: "Burger", Category: "Food", Price: 100}
	coffee = models.MenuItem{ID: 2, Name: "Coffee", Category: "Hot Drink", Price: 30}
	juice  = models.MenuItem{ID: 3, Name: "Mango Juice", Category: "Juice", Price: 45.5}
)

func TestAggregateCollapsesDuplicates(t *testing.T) {
	c := New()
	c.Add(burger)
	c.Add(coffee)
	c.Add(burger)

	lines := c.Aggregate()
	require.Len(t, lines, 2)
	assert.Equal(t, burger, lines[0].Item)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, coffee, lines[1].Item)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestAggregatePreservesFirstSeenOrder(t *testing.T) {
	c := New()
	c.Add(juice)
	c.Add(burger)
	c.Add(juice)
	c.Add(coffee)
	c.Add(burger)

	lines := c.Aggregate()
	require.Len(t, lines, 3)
	assert.Equal(t, int64(3), lines[0].Item.ID)
	assert.Equal(t, int64(1), lines[1].Item.ID)
	assert.Equal(t, int64(2), lines[2].Item.ID)
}

// Total must always equal the sum of price*quantity over the aggregation.
func TestTotalMatchesAggregate(t *testing.T) {
	sequences := [][]models.MenuItem{
		nil,
		{burger},
		{burger, burger, burger},
		{burger, coffee, burger, juice, juice, coffee, burger},
		{juice, juice, juice, juice},
	}
	for _, seq := range sequences {
		c := New()
		for _, item := range seq {
			c.Add(item)
		}
		var want float64
		for _, line := range c.Aggregate() {
			want += line.Item.Price * float64(line.Quantity)
		}
		assert.InDelta(t, want, c.Total(), 1e-9)
	}
}

func TestRemoveLast(t *testing.T) {
	c := New()
	c.Add(burger)
	c.Add(coffee)
	c.RemoveLast()

	require.Equal(t, 1, c.Len())
	assert.InDelta(t, burger.Price, c.Total(), 1e-9)

	c.RemoveLast()
	assert.True(t, c.Empty())

	// no-op on empty
	c.RemoveLast()
	assert.True(t, c.Empty())
	assert.Zero(t, c.Total())
	assert.Empty(t, c.Aggregate())
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(burger)
	c.Add(juice)
	c.Clear()

	assert.True(t, c.Empty())
	assert.Zero(t, c.Total())
	assert.Empty(t, c.Aggregate())
}

func TestSelectionsReturnsCopy(t *testing.T) {
	c := New()
	c.Add(burger)
	got := c.Selections()
	got[0] = coffee

	assert.Equal(t, burger, c.Selections()[0])
}
