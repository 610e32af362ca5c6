// Package datex provides a calendar-day value type and day-difference
// arithmetic. All other packages treat dates as whole days in UTC; the
// current moment is always passed in explicitly so behavior is testable.
package datex

import (
	"fmt"
	"math"
	"time"
)

// Layout is the wire format for calendar days.
const Layout = "2006-01-02"

// Day is a calendar day with no time-of-day component, pinned to UTC midnight.
// The zero value is "no day" and marshals to an empty string.
type Day struct {
	t time.Time
}

// New returns the Day for the given calendar date.
func New(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates t to its UTC calendar day.
func FromTime(t time.Time) Day {
	u := t.UTC()
	return New(u.Year(), u.Month(), u.Day())
}

// Parse reads a day in Layout format. An empty string parses to the zero Day.
func Parse(s string) (Day, error) {
	if s == "" {
		return Day{}, nil
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q: %w", s, err)
	}
	return Day{t: t}, nil
}

// Time returns the day's UTC midnight instant.
func (d Day) Time() time.Time { return d.t }

// IsZero reports whether d is the zero Day.
func (d Day) IsZero() bool { return d.t.IsZero() }

// Equal reports whether two Days are the same calendar day.
func (d Day) Equal(o Day) bool { return d.t.Equal(o.t) }

// AddDays returns the day n calendar days after d (n may be negative).
func (d Day) AddDays(n int) Day { return Day{t: d.t.AddDate(0, 0, n)} }

// String formats the day in Layout format, or "" for the zero Day.
func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(Layout)
}

// MarshalJSON encodes the day as a quoted Layout string.
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a quoted Layout string; "" and null yield the zero Day.
func (d *Day) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*d = Day{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid day literal: %s", s)
	}
	parsed, err := Parse(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysLeft returns the number of whole days remaining from now until the due
// day's UTC midnight, rounded up. The result is negative once the due day has
// passed. A due day equal to now's calendar day yields 0.
func DaysLeft(due Day, now time.Time) int {
	diff := due.Time().Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}
