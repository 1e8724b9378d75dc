package pipeline

import (
	"ms-dashboard/internal/models"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort orders events by exactly one key and direction. The sort is
// stable, so events with equal keys keep their relative order from the
// filter stage. The caller's slice is left untouched; a sorted copy is
// returned.
func Sort(events []models.Event, key SortKey, dir SortDir) []models.Event {
	out := make([]models.Event, len(events))
	copy(out, events)

	// Collators are not safe for concurrent use, so build one per call.
	var collator *collate.Collator
	if key == SortByName {
		collator = collate.New(language.Und)
	}

	less := func(a, b models.Event) bool {
		switch key {
		case SortByName:
			return collator.CompareString(a.Name, b.Name) < 0
		case SortByPrice:
			return a.Price.Amount < b.Price.Amount
		default:
			return a.StartAt.Before(b.StartAt)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if dir == Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}
