package bookkeeping

import (
	"fmt"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// readDateFormats are the permissive formats accepted on input. Ledger files in
// the wild use both dashes and slashes, with or without zero padding.
var readDateFormats = []string{"2006-1-2", "2006/1/2"}

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// String formats the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// ParseDate parses a Date from a string. It is lenient and accepts formats
// like "2025-7-1" or "2025/07/01".
func ParseDate(str string) (Date, error) {
	for _, format := range readDateFormats {
		if on, err := time.Parse(format, str); err == nil {
			return NewDate(on.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q want format %q", str, DateFormat)
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}
