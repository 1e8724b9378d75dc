package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"ms-dashboard/internal/logger"
	"ms-dashboard/internal/models"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Fetcher talks to the events API that owns all event and booking
// data. The dashboard never writes storage of its own; creation is a
// pass-through to this API.
type Fetcher struct {
	client  *http.Client
	baseURL string
	token   string
	logger  *logger.Logger
}

func NewFetcher(client *http.Client, baseURL, token string, log *logger.Logger) *Fetcher {
	return &Fetcher{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		logger:  log,
	}
}

// GetEvents fetches the full event collection.
func (f *Fetcher) GetEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := f.get(ctx, "/api/v1/events", &events); err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	f.logger.LogUpstream("GET_EVENTS", fmt.Sprintf("Fetched %d events", len(events)))
	return events, nil
}

// GetBookings fetches the full booking collection.
func (f *Fetcher) GetBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := f.get(ctx, "/api/v1/bookings", &bookings); err != nil {
		return nil, fmt.Errorf("fetch bookings: %w", err)
	}
	f.logger.LogUpstream("GET_BOOKINGS", fmt.Sprintf("Fetched %d bookings", len(bookings)))
	return bookings, nil
}

// CreateEvent submits a draft upstream and returns the created event
// with its assigned identifier.
func (f *Fetcher) CreateEvent(ctx context.Context, draft models.EventDraft) (*models.Event, error) {
	body, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("marshal event draft: %w", err)
	}

	req, err := f.newRequest(ctx, http.MethodPost, "/api/v1/events", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Error("UPSTREAM", fmt.Sprintf("Events API error: %v", err))
		return nil, fmt.Errorf("events api error: %w", err)
	}
	defer f.closeBody(resp.Body)

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		f.logger.Error("UPSTREAM", fmt.Sprintf("Create event returned status: %d", resp.StatusCode))
		return nil, fmt.Errorf("events api returned status: %d", resp.StatusCode)
	}

	var created models.Event
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decode created event: %w", err)
	}

	f.logger.LogUpstream("CREATE_EVENT", fmt.Sprintf("Created event %s", created.ID))
	return &created, nil
}

func (f *Fetcher) get(ctx context.Context, path string, out interface{}) error {
	req, err := f.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Error("UPSTREAM", fmt.Sprintf("Events API error: %v", err))
		return fmt.Errorf("events api error: %w", err)
	}
	defer f.closeBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		f.logger.Error("UPSTREAM", fmt.Sprintf("Events API returned status %d for %s", resp.StatusCode, path))
		return fmt.Errorf("events api returned status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (f *Fetcher) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, f.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

func (f *Fetcher) closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		f.logger.Error("UPSTREAM", fmt.Sprintf("Failed to close response body: %v", err))
	}
}
