package pipeline

import (
	"ms-dashboard/internal/models"
	"sort"
	"time"
)

// dayKeyLayout renders a local calendar day as YYYY-MM-DD, so the
// lexicographic order of keys equals their chronological order.
const dayKeyLayout = "2006-01-02"

// DayKey returns the grouping key for an event start time.
func DayKey(t time.Time) string {
	return t.Local().Format(dayKeyLayout)
}

// GroupByDay partitions events into buckets keyed by the local calendar
// day of their start time. Events keep the order they arrive in within
// each bucket. Map iteration order is unspecified; use SortedDayKeys
// before slicing pages.
func GroupByDay(events []models.Event) map[string][]models.Event {
	groups := make(map[string][]models.Event, len(events))
	for _, e := range events {
		key := DayKey(e.StartAt)
		groups[key] = append(groups[key], e)
	}
	return groups
}

// SortedDayKeys returns the group keys in lexicographic ascending
// order, which for day keys is chronological order.
func SortedDayKeys(groups map[string][]models.Event) []string {
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
