package domain

import (
	"fmt"
	"time"
)

const dateOnly = "2006-01-02"

// ParseDate accepts either a plain date (2026-07-01) or RFC3339.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateOnly, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
