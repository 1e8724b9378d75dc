package pipeline

import (
	"ms-dashboard/internal/models"
	"strings"
	"time"
)

// Filter reduces events to those matching every active predicate of the
// selection: search text, status and the optional date range combine
// with AND. The result is always a subset of the input in encounter
// order; the input slice is never modified.
func Filter(events []models.Event, sel Selection, now time.Time) []models.Event {
	query := strings.ToLower(strings.TrimSpace(sel.Search))

	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if query != "" && !matchesSearch(e, query) {
			continue
		}
		if !matchesStatus(e, sel.Status, now) {
			continue
		}
		if sel.From != nil && !e.StartAt.After(*sel.From) {
			continue
		}
		if sel.To != nil && !e.StartAt.Before(*sel.To) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesSearch(e models.Event, query string) bool {
	return strings.Contains(strings.ToLower(e.Name), query) ||
		strings.Contains(strings.ToLower(e.Description), query) ||
		strings.Contains(strings.ToLower(e.Location), query)
}

func matchesStatus(e models.Event, status Status, now time.Time) bool {
	switch status {
	case StatusUpcoming:
		return e.StartAt.After(now)
	case StatusPast:
		return e.EndAt.Before(now)
	case StatusToday:
		return sameLocalDay(e.StartAt, now)
	default:
		// StatusAll and anything unrecognised: no status filtering.
		return true
	}
}

func sameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
