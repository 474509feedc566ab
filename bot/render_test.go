package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rest-pos/models"
)

func TestCartSummary(t *testing.T) {
	assert.Equal(t, "The cart is empty.", cartSummary(nil, 0))

	lines := []models.OrderLine{
		{Item: models.MenuItem{Name: "Burger", Price: 95}, Quantity: 2},
		{Item: models.MenuItem{Name: "Coffee", Price: 40}, Quantity: 1},
	}
	got := cartSummary(lines, 230)
	assert.Contains(t, got, "Burger x2 — 190.00")
	assert.Contains(t, got, "Coffee x1 — 40.00")
	assert.Contains(t, got, "Total: 230.00")
}

func TestOrderLabel(t *testing.T) {
	o := models.Order{
		ID:        7,
		Timestamp: time.Date(2026, 1, 7, 13, 5, 0, 0, time.Local),
		Lines: []models.OrderLine{
			{Item: models.MenuItem{Name: "Burger", Price: 95}, Quantity: 2},
			{Item: models.MenuItem{Name: "Coffee", Price: 40}, Quantity: 1},
		},
	}
	assert.Equal(t, "#7 13:05 — 3 items — 230.00", orderLabel(o))
}

func TestLogSummaryLimitsAndFormats(t *testing.T) {
	assert.Equal(t, "No logged actions.", logSummary(nil, 20))

	ts := time.Date(2026, 1, 7, 9, 30, 0, 0, time.Local)
	entries := []models.LogEntry{
		{Timestamp: ts, Action: "User committed order #3 (taxed=true)"},
		{Timestamp: ts.Add(-time.Hour), Action: "User added cash: 500.00"},
		{Timestamp: ts.Add(-2 * time.Hour), Action: "User viewed reports"},
	}
	got := logSummary(entries, 2)
	assert.Contains(t, got, "2026-01-07 09:30  User committed order #3 (taxed=true)\n")
	assert.Contains(t, got, "User added cash: 500.00")
	assert.NotContains(t, got, "User viewed reports")
}

func TestParseAmount(t *testing.T) {
	v, err := parseAmount(" 1250.50 ")
	require.NoError(t, err)
	assert.Equal(t, 1250.5, v)

	v, err = parseAmount("0")
	require.NoError(t, err)
	assert.Zero(t, v)

	for _, bad := range []string{"", "abc", "-5", "12,50", "NaN", "Inf"} {
		_, err := parseAmount(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
