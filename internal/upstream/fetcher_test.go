package upstream_test

import (
	"context"
	"encoding/json"
	"ms-dashboard/internal/logger"
	"ms-dashboard/internal/models"
	"ms-dashboard/internal/upstream"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEvents(t *testing.T) {
	events := []models.Event{
		{
			ID:      uuid.New().String(),
			Name:    "Clase de Yoga",
			StartAt: time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC),
			EndAt:   time.Date(2024, 3, 7, 11, 0, 0, 0, time.UTC),
			Price:   models.Price{Amount: 25, Currency: "EUR"},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/events", r.URL.Path)
		assert.Equal(t, "Bearer svc-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(events)
	}))
	defer server.Close()

	fetcher := upstream.NewFetcher(server.Client(), server.URL, "svc-token", logger.NewLogger())

	got, err := fetcher.GetEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, events[0].ID, got[0].ID)
	assert.Equal(t, 25.0, got[0].Price.Amount)
}

func TestGetBookings(t *testing.T) {
	bookings := []models.Booking{
		{ID: uuid.New().String(), EventID: uuid.New().String(), Seats: 2},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/bookings", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(bookings)
	}))
	defer server.Close()

	fetcher := upstream.NewFetcher(server.Client(), server.URL, "", logger.NewLogger())

	got, err := fetcher.GetBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, bookings[0].EventID, got[0].EventID)
}

func TestGetEventsUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	fetcher := upstream.NewFetcher(server.Client(), server.URL, "", logger.NewLogger())

	got, err := fetcher.GetEvents(context.Background())
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "status: 500")
}

func TestCreateEvent(t *testing.T) {
	draft := models.EventDraft{
		Name:    "Pilates",
		StartAt: time.Date(2024, 3, 8, 9, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC),
		Price:   models.Price{Amount: 15, Currency: "EUR"},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/events", r.URL.Path)

		var got models.EventDraft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, draft.Name, got.Name)

		created := models.Event{
			ID:          uuid.New().String(),
			Name:        got.Name,
			Description: got.Description,
			Location:    got.Location,
			StartAt:     got.StartAt,
			EndAt:       got.EndAt,
			Price:       got.Price,
			CreatedAt:   time.Now().UTC(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}))
	defer server.Close()

	fetcher := upstream.NewFetcher(server.Client(), server.URL, "svc-token", logger.NewLogger())

	created, err := fetcher.CreateEvent(context.Background(), draft)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Pilates", created.Name)
}
