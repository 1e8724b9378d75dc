package pipeline

import (
	"ms-dashboard/internal/models"
	"time"
)

// EventView is an event enriched with its attendance, the number of
// bookings referencing it.
type EventView struct {
	models.Event
	Attendance int `json:"attendance"`
}

// DayGroup is one calendar day's worth of events, in sorted order.
type DayGroup struct {
	Date   string      `json:"date"`
	Events []EventView `json:"events"`
}

// View is everything the rendering layer needs for the events list:
// the current page of day groups plus the informational counters.
type View struct {
	Days          []DayGroup `json:"days"`
	Page          int        `json:"page"`
	TotalPages    int        `json:"total_pages"`
	FilteredCount int        `json:"filtered_count"`
	UpcomingCount int        `json:"upcoming_count"`
	TodayCount    int        `json:"today_count"`
}

// UpcomingCount counts events starting strictly after now. It always
// runs over the unfiltered collection.
func UpcomingCount(events []models.Event, now time.Time) int {
	count := 0
	for _, e := range events {
		if e.StartAt.After(now) {
			count++
		}
	}
	return count
}

// TodayCount counts events starting on the current local calendar day,
// also over the unfiltered collection.
func TodayCount(events []models.Event, now time.Time) int {
	count := 0
	for _, e := range events {
		if sameLocalDay(e.StartAt, now) {
			count++
		}
	}
	return count
}

// AttendanceCounts folds bookings into a per-event count so the view
// projection stays linear in events plus bookings.
func AttendanceCounts(bookings []models.Booking) map[string]int {
	counts := make(map[string]int, len(bookings))
	for _, b := range bookings {
		counts[b.EventID]++
	}
	return counts
}

// DeriveView runs the whole pipeline for one render: filter, sort,
// group, paginate, then the counters and the booking join. It is a pure
// function of its inputs; neither slice is modified.
func DeriveView(events []models.Event, bookings []models.Booking, sel Selection, clock Clock) View {
	now := clock.Now()

	filtered := Filter(events, sel, now)
	sorted := Sort(filtered, sel.SortBy, sel.Dir)
	groups := GroupByDay(sorted)

	keys := SortedDayKeys(groups)
	pageKeys := PageKeys(keys, sel.Page)
	attendance := AttendanceCounts(bookings)

	days := make([]DayGroup, 0, len(pageKeys))
	for _, key := range pageKeys {
		bucket := groups[key]
		views := make([]EventView, len(bucket))
		for i, e := range bucket {
			views[i] = EventView{Event: e, Attendance: attendance[e.ID]}
		}
		days = append(days, DayGroup{Date: key, Events: views})
	}

	return View{
		Days:          days,
		Page:          sel.Page,
		TotalPages:    TotalPages(len(keys)),
		FilteredCount: len(sorted),
		UpcomingCount: UpcomingCount(events, now),
		TodayCount:    TodayCount(events, now),
	}
}
