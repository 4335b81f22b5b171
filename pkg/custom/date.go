package custom

import (
	"time"
)

// DateLayout is the layout used for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar day in UTC, formatted as YYYY-MM-DD. The zero value is
// the empty string and means "never".
type Date string

// DateOf returns the UTC calendar day of t.
func DateOf(t time.Time) Date {
	return Date(t.UTC().Format(DateLayout))
}

// IsZero reports whether the date was never set.
func (d Date) IsZero() bool {
	return d == ""
}

// Valid reports whether the date parses as YYYY-MM-DD.
func (d Date) Valid() bool {
	_, err := time.Parse(DateLayout, string(d))
	return err == nil
}

// String implements the fmt.Stringer interface.
func (d Date) String() string {
	return string(d)
}
