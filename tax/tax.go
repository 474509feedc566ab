// Package tax decomposes taxed totals into the company share and the tax
// owed (TOT). Pure arithmetic, no I/O; rounding to currency precision is
// left to the presentation layer.
package tax

// Rate is the flat turnover tax rate applied to taxed orders.
const Rate = 0.10

// Split returns the company share and the tax owed for a taxed total.
// companyShare + taxOwed == total holds to floating point tolerance.
func Split(total float64) (companyShare, taxOwed float64) {
	companyShare = total / (1 + Rate)
	return companyShare, total - companyShare
}
