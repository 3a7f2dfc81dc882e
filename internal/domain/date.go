package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates. Lexicographic order over
// this layout matches chronological order.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time component. The zero value is not a
// usable date; an assignment with no deadline carries a nil *Date instead.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate creates a Date from its calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{year: year, month: month, day: day}
}

// ParseDate parses a date in the YYYY-MM-DD wire format.
// Returns ErrInvalidDate if the string is not a valid calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

// String returns the date in the YYYY-MM-DD wire format.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// Before reports whether d falls strictly before other.
func (d Date) Before(other Date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

// EndOfDay returns the last second of the calendar day (23:59:59) in the
// given location. The overdue rule compares this instant against the clock.
func (d Date) EndOfDay(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 23, 59, 59, 0, loc)
}

// MarshalJSON implements json.Marshaler using the YYYY-MM-DD wire format.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler, accepting the YYYY-MM-DD wire
// format.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, data)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
