package bot

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"rest-pos/models"
)

func cartSummary(lines []models.OrderLine, total float64) string {
	if len(lines) == 0 {
		return "The cart is empty."
	}
	var b strings.Builder
	b.WriteString("Current cart:\n")
	for _, l := range lines {
		fmt.Fprintf(&b, "%s x%d — %.2f\n", l.Item.Name, l.Quantity, l.Item.Price*float64(l.Quantity))
	}
	fmt.Fprintf(&b, "Total: %.2f", total)
	return b.String()
}

func orderLabel(o models.Order) string {
	units := 0
	for _, l := range o.Lines {
		units += l.Quantity
	}
	return fmt.Sprintf("#%d %s — %d items — %.2f",
		o.ID, o.Timestamp.Format("15:04"), units, o.Total())
}

func logSummary(entries []models.LogEntry, limit int) string {
	if len(entries) == 0 {
		return "No logged actions."
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s  %s\n", e.Timestamp.Format("2006-01-02 15:04"), e.Action)
	}
	return b.String()
}

// parseAmount accepts a non-negative decimal amount typed by the operator.
func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("amount out of range: %q", s)
	}
	return v, nil
}
