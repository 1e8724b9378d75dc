package pipeline

import (
	"ms-dashboard/internal/models"
)

// PageKeys slices the sorted day keys for a 1-based page number. An
// out-of-range page yields an empty or partial slice, never an error;
// clamping the page into [1, TotalPages] is the caller's job.
func PageKeys(keys []string, page int) []string {
	start := (page - 1) * PageSize
	if start < 0 || start >= len(keys) {
		return nil
	}
	end := start + PageSize
	if end > len(keys) {
		end = len(keys)
	}
	return keys[start:end]
}

// Paginate restricts the grouping to the day keys of the requested
// page, preserving each bucket's event order.
func Paginate(groups map[string][]models.Event, page int) map[string][]models.Event {
	selected := PageKeys(SortedDayKeys(groups), page)
	out := make(map[string][]models.Event, len(selected))
	for _, key := range selected {
		out[key] = groups[key]
	}
	return out
}

// TotalPages is the number of pages needed to show every day group.
func TotalPages(dayCount int) int {
	return (dayCount + PageSize - 1) / PageSize
}
