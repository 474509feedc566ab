package tax

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitZero(t *testing.T) {
	company, owed := Split(0)
	assert.Zero(t, company)
	assert.Zero(t, owed)
}

func TestSplitRecomposes(t *testing.T) {
	for _, total := range []float64{0, 0.01, 1, 10, 230, 999.99, 12345.67, 1e6} {
		company, owed := Split(total)
		// relative error bound of 1e-9
		assert.InDelta(t, total, company+owed, 1e-9*(1+total), "total %v", total)
		assert.GreaterOrEqual(t, company, 0.0)
		assert.GreaterOrEqual(t, owed, 0.0)
	}
}

func TestSplitKnownValue(t *testing.T) {
	company, owed := Split(230)

	// exact values are 209.0909... and 20.9090...
	assert.InDelta(t, 230/1.1, company, 1e-9)

	// currency rounding happens only at display time
	assert.Equal(t, "209.09", fmt.Sprintf("%.2f", company))
	assert.Equal(t, "20.91", fmt.Sprintf("%.2f", owed))
}
