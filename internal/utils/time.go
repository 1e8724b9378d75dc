package utils

import (
	"fmt"
	"time"
)

// ParseQueryTime accepts the timestamp formats the dashboard UI sends:
// full RFC 3339 or a bare local date.
func ParseQueryTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", value)
}
