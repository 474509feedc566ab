package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Render produces the plain-text report artifact consumed by the export
// and email collaborators. Line order is fixed; every currency figure is
// rounded to two decimals here and nowhere earlier.
func Render(r *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Gregorian Date: %s\n", r.Date.Format("02 - 01 - 2006"))
	fmt.Fprintf(&b, "Ethiopian Date: %s\n\n", r.EthiopianDate)

	for _, c := range r.Categories {
		amountLine(&b, c.Category+" Sales", c.Amount)
	}
	b.WriteString(strings.Repeat("-", 41) + "\n")
	amountLine(&b, "Total", r.TotalSales)
	amountLine(&b, "Cash", r.Cash)
	amountLine(&b, "Difference", r.Delta)
	b.WriteString("\n")
	amountLine(&b, "Bank 1 (Taxed)", r.CompanyShare)
	amountLine(&b, "TOT", r.TaxOwed)
	amountLine(&b, "Bank 2 (Hidden)", r.HiddenAmount)

	return b.String()
}

func amountLine(b *strings.Builder, label string, v float64) {
	fmt.Fprintf(b, "%-28s%10.2f\n", label+":", v)
}

// Export writes the rendered report to a dated file in dir and returns the
// path.
func Export(dir string, r *Report) (string, error) {
	name := fmt.Sprintf("sales_report_%s.txt", r.Date.Format("2006-01-02"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(Render(r)), 0o644); err != nil {
		return "", fmt.Errorf("export report: %w", err)
	}
	return path, nil
}
