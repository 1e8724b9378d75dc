package dashboard_api

import (
	"context"
	"encoding/json"
	"fmt"
	"ms-dashboard/internal/auth"
	"ms-dashboard/internal/dashboard"
	"ms-dashboard/internal/logger"
	"ms-dashboard/internal/models"
	"ms-dashboard/internal/pipeline"
	"ms-dashboard/internal/upstream"
	"ms-dashboard/internal/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// DashboardService is the service surface the handlers need.
type DashboardService interface {
	EventsView(ctx context.Context, sel pipeline.Selection) (*pipeline.View, error)
	EventsSummary(ctx context.Context) (*dashboard.Summary, error)
	CreateEvent(ctx context.Context, draft models.EventDraft) (*models.Event, error)
	Refresh(ctx context.Context) (*upstream.Snapshot, error)
}

type Handler struct {
	Service DashboardService
	Logger  *logger.Logger
}

func NewHandler(service DashboardService, log *logger.Logger) *Handler {
	return &Handler{
		Service: service,
		Logger:  log,
	}
}

// RegisterRoutes mounts the dashboard endpoints on the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/events", h.GetEvents)
		r.Post("/events", h.CreateEvent)
		r.Get("/summary", h.GetSummary)
		r.Post("/refresh", h.Refresh)
	})
}

// GetEvents derives the events list view for the selection encoded in
// the query string. An out-of-range page is clamped into
// [1, totalPages] before the final derivation.
func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	sel, err := selectionFromQuery(r)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetEvents: bad query: %v", err))
		h.writeJSON(w, http.StatusBadRequest, utils.ErrorResponse("Invalid query parameters", err.Error()))
		return
	}

	view, err := h.Service.EventsView(r.Context(), sel)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetEvents: failed to derive view: %v", err))
		h.writeJSON(w, http.StatusBadGateway, utils.ErrorResponse("Failed to load events", err.Error()))
		return
	}

	if view.TotalPages > 0 && sel.Page > view.TotalPages {
		sel = sel.WithPage(view.TotalPages)
		view, err = h.Service.EventsView(r.Context(), sel)
		if err != nil {
			h.Logger.Error("API", fmt.Sprintf("GetEvents: failed to derive clamped view: %v", err))
			h.writeJSON(w, http.StatusBadGateway, utils.ErrorResponse("Failed to load events", err.Error()))
			return
		}
	}

	h.Logger.Debug("API", fmt.Sprintf("GetEvents: page %d/%d, %d events", view.Page, view.TotalPages, view.FilteredCount))
	h.writeJSON(w, http.StatusOK, utils.SuccessResponse("Events view", view))
}

// GetSummary returns the upcoming/today counters for the header.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.EventsSummary(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetSummary: %v", err))
		h.writeJSON(w, http.StatusBadGateway, utils.ErrorResponse("Failed to load summary", err.Error()))
		return
	}

	h.writeJSON(w, http.StatusOK, utils.SuccessResponse("Events summary", summary))
}

// CreateEvent passes a draft through to the events API.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var draft models.EventDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateEvent: failed to decode request body: %v", err))
		h.writeJSON(w, http.StatusBadRequest, utils.ErrorResponse("Invalid request body", err.Error()))
		return
	}

	created, err := h.Service.CreateEvent(r.Context(), draft)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateEvent: %v", err))
		h.writeJSON(w, http.StatusBadRequest, utils.ErrorResponse("Failed to create event", err.Error()))
		return
	}

	actor := auth.UserID(r.Context())
	if actor == "" {
		if token, tokenErr := auth.ExtractTokenFromRequest(r); tokenErr == nil {
			actor, _ = auth.ExtractUserIDFromJWT(token)
		}
	}
	h.Logger.Info("API", fmt.Sprintf("CreateEvent: created %s (by %s)", created.ID, actor))
	h.writeJSON(w, http.StatusCreated, utils.SuccessResponse("Event created", created))
}

// Refresh forces a snapshot re-fetch.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Service.Refresh(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("Refresh: %v", err))
		h.writeJSON(w, http.StatusBadGateway, utils.ErrorResponse("Failed to refresh snapshot", err.Error()))
		return
	}

	data := map[string]interface{}{
		"events":     len(snap.Events),
		"bookings":   len(snap.Bookings),
		"fetched_at": snap.FetchedAt,
	}
	h.writeJSON(w, http.StatusOK, utils.SuccessResponse("Snapshot refreshed", data))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body utils.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.Logger.Error("API", fmt.Sprintf("Failed to encode response: %v", err))
	}
}

func selectionFromQuery(r *http.Request) (pipeline.Selection, error) {
	sel := pipeline.NewSelection()
	q := r.URL.Query()

	if search := q.Get("search"); search != "" {
		sel = sel.WithSearch(search)
	}

	if status := q.Get("status"); status != "" {
		switch pipeline.Status(status) {
		case pipeline.StatusUpcoming, pipeline.StatusToday, pipeline.StatusPast, pipeline.StatusAll:
			sel = sel.WithStatus(pipeline.Status(status))
		default:
			return sel, fmt.Errorf("unknown status %q", status)
		}
	}

	var from, to *time.Time
	if raw := q.Get("from"); raw != "" {
		t, err := utils.ParseQueryTime(raw)
		if err != nil {
			return sel, fmt.Errorf("bad from bound: %w", err)
		}
		from = &t
	}
	if raw := q.Get("to"); raw != "" {
		t, err := utils.ParseQueryTime(raw)
		if err != nil {
			return sel, fmt.Errorf("bad to bound: %w", err)
		}
		to = &t
	}
	if from != nil || to != nil {
		sel = sel.WithRange(from, to)
	}

	if sortBy := q.Get("sort"); sortBy != "" {
		switch pipeline.SortKey(sortBy) {
		case pipeline.SortByDate, pipeline.SortByName, pipeline.SortByPrice:
		default:
			return sel, fmt.Errorf("unknown sort key %q", sortBy)
		}
		dir := pipeline.Ascending
		if q.Get("dir") == string(pipeline.Descending) {
			dir = pipeline.Descending
		}
		sel = sel.WithSort(pipeline.SortKey(sortBy), dir)
	} else if q.Get("dir") == string(pipeline.Descending) {
		sel = sel.WithSort(sel.SortBy, pipeline.Descending)
	}

	if rawPage := q.Get("page"); rawPage != "" {
		page, err := strconv.Atoi(rawPage)
		if err != nil {
			return sel, fmt.Errorf("bad page %q", rawPage)
		}
		if page < 1 {
			page = 1
		}
		sel = sel.WithPage(page)
	}

	return sel, nil
}
