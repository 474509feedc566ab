package ethiopic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestFromGregorian(t *testing.T) {
	tests := []struct {
		greg time.Time
		want Date
	}{
		// eve of Ethiopian new year 2016: Pagume 6 of leap year 2015
		{date(2023, 9, 11), Date{Year: 2015, Month: 13, Day: 6}},
		// Ethiopian new year (Meskerem 1)
		{date(2023, 9, 12), Date{Year: 2016, Month: 1, Day: 1}},
		{date(2025, 9, 11), Date{Year: 2018, Month: 1, Day: 1}},
		// Adwa victory eve: Yekatit 22
		{date(2024, 3, 1), Date{Year: 2016, Month: 6, Day: 22}},
		// Genna (Ethiopian Christmas): Tahsas 29
		{date(2026, 1, 7), Date{Year: 2018, Month: 4, Day: 29}},
	}
	for _, tt := range tests {
		got := FromGregorian(tt.greg)
		assert.Equal(t, tt.want, got, "gregorian %s", tt.greg.Format("2006-01-02"))
	}
}

func TestString(t *testing.T) {
	d := Date{Year: 2018, Month: 1, Day: 1}
	assert.Equal(t, "01 - 01 - 2018", d.String())
}
