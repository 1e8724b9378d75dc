package pipeline_test

import (
	"fmt"
	"ms-dashboard/internal/models"
	"ms-dashboard/internal/pipeline"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eventsAcrossDays builds one event per day starting at base.
func eventsAcrossDays(base time.Time, days int) []models.Event {
	events := make([]models.Event, 0, days)
	for i := 0; i < days; i++ {
		start := base.AddDate(0, 0, i)
		events = append(events, makeEvent(fmt.Sprintf("day-%d", i), start, start.Add(time.Hour)))
	}
	return events
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, pipeline.TotalPages(0))
	assert.Equal(t, 1, pipeline.TotalPages(1))
	assert.Equal(t, 1, pipeline.TotalPages(10))
	assert.Equal(t, 2, pipeline.TotalPages(11))
	assert.Equal(t, 3, pipeline.TotalPages(25))
}

func TestPaginateSingleDay(t *testing.T) {
	morning := makeEvent("Morning", time.Date(2024, 3, 7, 10, 0, 0, 0, time.Local), time.Date(2024, 3, 7, 11, 0, 0, 0, time.Local))
	afternoon := makeEvent("Afternoon", time.Date(2024, 3, 7, 15, 0, 0, 0, time.Local), time.Date(2024, 3, 7, 16, 0, 0, 0, time.Local))

	groups := pipeline.GroupByDay([]models.Event{morning, afternoon})
	page := pipeline.Paginate(groups, 1)

	require.Len(t, page, 1)
	assert.Len(t, page["2024-03-07"], 2)
	assert.Equal(t, 1, pipeline.TotalPages(len(groups)))
}

func TestPaginateSlicing(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	groups := pipeline.GroupByDay(eventsAcrossDays(base, 23))
	keys := pipeline.SortedDayKeys(groups)

	assert.Len(t, pipeline.PageKeys(keys, 1), 10)
	assert.Len(t, pipeline.PageKeys(keys, 2), 10)
	assert.Len(t, pipeline.PageKeys(keys, 3), 3)
	assert.Empty(t, pipeline.PageKeys(keys, 4))
	assert.Empty(t, pipeline.PageKeys(keys, 0))
	assert.Empty(t, pipeline.PageKeys(keys, -1))
}

func TestPaginateCoverageAndDisjointness(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	events := eventsAcrossDays(base, 23)
	groups := pipeline.GroupByDay(events)
	total := pipeline.TotalPages(len(groups))

	seen := map[string]int{}
	for page := 1; page <= total; page++ {
		for _, bucket := range pipeline.Paginate(groups, page) {
			for _, e := range bucket {
				seen[e.ID]++
			}
		}
	}

	assert.Len(t, seen, len(events))
	for _, e := range events {
		assert.Equal(t, 1, seen[e.ID])
	}
}
