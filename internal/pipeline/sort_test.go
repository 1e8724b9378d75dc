package pipeline_test

import (
	"ms-dashboard/internal/models"
	"ms-dashboard/internal/pipeline"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSortByDate(t *testing.T) {
	base := time.Date(2024, 3, 7, 10, 0, 0, 0, time.Local)

	late := makeEvent("Late", base.Add(5*time.Hour), base.Add(6*time.Hour))
	early := makeEvent("Early", base, base.Add(time.Hour))
	mid := makeEvent("Mid", base.Add(2*time.Hour), base.Add(3*time.Hour))

	events := []models.Event{late, early, mid}

	got := pipeline.Sort(events, pipeline.SortByDate, pipeline.Ascending)
	assert.Equal(t, []string{early.ID, mid.ID, late.ID}, eventIDs(got))

	got = pipeline.Sort(events, pipeline.SortByDate, pipeline.Descending)
	assert.Equal(t, []string{late.ID, mid.ID, early.ID}, eventIDs(got))

	// input order unchanged
	assert.Equal(t, []string{late.ID, early.ID, mid.ID}, eventIDs(events))
}

func TestSortByName(t *testing.T) {
	base := time.Now()
	banana := makeEvent("banana", base, base.Add(time.Hour))
	apple := makeEvent("Apple", base, base.Add(time.Hour))
	cherry := makeEvent("cherry", base, base.Add(time.Hour))

	got := pipeline.Sort([]models.Event{banana, cherry, apple}, pipeline.SortByName, pipeline.Ascending)
	assert.Equal(t, []string{apple.ID, banana.ID, cherry.ID}, eventIDs(got))
}

func TestSortByPriceDescending(t *testing.T) {
	base := time.Now()
	cheap := makeEvent("Zumba", base, base.Add(time.Hour))
	cheap.Price = models.Price{Amount: 50, Currency: "EUR"}
	pricey := makeEvent("Aerial Silks", base, base.Add(time.Hour))
	pricey.Price = models.Price{Amount: 100, Currency: "EUR"}

	got := pipeline.Sort([]models.Event{cheap, pricey}, pipeline.SortByPrice, pipeline.Descending)
	assert.Equal(t, []string{pricey.ID, cheap.ID}, eventIDs(got))
}

func TestSortStability(t *testing.T) {
	start := time.Date(2024, 3, 7, 10, 0, 0, 0, time.Local)

	// four events with the same start time keep their encounter order
	a := makeEvent("a", start, start.Add(time.Hour))
	b := makeEvent("b", start, start.Add(time.Hour))
	c := makeEvent("c", start, start.Add(time.Hour))
	d := makeEvent("d", start, start.Add(time.Hour))

	events := []models.Event{a, b, c, d}

	got := pipeline.Sort(events, pipeline.SortByDate, pipeline.Ascending)
	assert.Equal(t, eventIDs(events), eventIDs(got))

	got = pipeline.Sort(events, pipeline.SortByDate, pipeline.Descending)
	assert.Equal(t, eventIDs(events), eventIDs(got))
}

func eventIDs(events []models.Event) []string {
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids
}
