package models

import (
	"fmt"
	"time"
)

const dateKeyLayout = "20060102"

// DateKey is a calendar date in YYYYMMDD form, the partition component of
// every storage key.
type DateKey string

// ParseDateKey validates an 8-digit calendar date. The parsed value is
// formatted back and compared so normalized inputs like "20241332" are
// rejected along with impossible days ("20240230") and short forms.
func ParseDateKey(s string) (DateKey, error) {
	if len(s) != len(dateKeyLayout) {
		return "", fmt.Errorf("date %q: want 8 digits (YYYYMMDD)", s)
	}
	t, err := time.Parse(dateKeyLayout, s)
	if err != nil {
		return "", fmt.Errorf("date %q: %w", s, err)
	}
	if t.Format(dateKeyLayout) != s {
		return "", fmt.Errorf("date %q: not a calendar date", s)
	}
	return DateKey(s), nil
}

// DateKeyAt returns the key for the calendar day containing t in loc.
func DateKeyAt(t time.Time, loc *time.Location) DateKey {
	return DateKey(t.In(loc).Format(dateKeyLayout))
}

func (d DateKey) String() string { return string(d) }
