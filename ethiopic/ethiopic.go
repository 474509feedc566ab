// Package ethiopic converts Gregorian dates to the Ethiopian (Amete Mihret)
// calendar for the localized date line of the daily report.
package ethiopic

import (
	"fmt"
	"time"
)

// Julian day number of the Ethiopic epoch (Amete Mihret era).
const epoch = 1723856

// Date is a date in the Ethiopian calendar. Months 1-12 have 30 days;
// month 13 (Pagume) has 5 or 6.
type Date struct {
	Year  int
	Month int
	Day   int
}

// FromGregorian converts the calendar date of t.
func FromGregorian(t time.Time) Date {
	jdn := gregorianJDN(t.Year(), int(t.Month()), t.Day())
	r := (jdn - epoch) % 1461
	n := r%365 + 365*(r/1460)
	return Date{
		Year:  4*((jdn-epoch)/1461) + r/365 - r/1460,
		Month: n/30 + 1,
		Day:   n%30 + 1,
	}
}

// gregorianJDN returns the Julian day number for a Gregorian calendar date.
func gregorianJDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// String formats the date as DD - MM - YYYY, matching the report layout.
func (d Date) String() string {
	return fmt.Sprintf("%02d - %02d - %04d", d.Day, d.Month, d.Year)
}
