package dashboard

import (
	"context"
	"fmt"
	"ms-dashboard/internal/logger"
	"ms-dashboard/internal/models"
	"ms-dashboard/internal/pipeline"
	"ms-dashboard/internal/upstream"
)

// Fetcher reads from and writes through to the upstream events API.
type Fetcher interface {
	GetEvents(ctx context.Context) ([]models.Event, error)
	GetBookings(ctx context.Context) ([]models.Booking, error)
	CreateEvent(ctx context.Context, draft models.EventDraft) (*models.Event, error)
}

// SnapshotCache holds the shared read snapshot between fetches.
type SnapshotCache interface {
	Get(ctx context.Context) (*upstream.Snapshot, error)
	Set(ctx context.Context, snap *upstream.Snapshot) error
	Invalidate(ctx context.Context) error
}

// ChangePublisher notifies other dashboard instances that the upstream
// collections moved.
type ChangePublisher interface {
	PublishEventCreated(event models.Event) error
}

// Summary carries the two informational counters shown in the header,
// always computed against the unfiltered event collection.
type Summary struct {
	UpcomingCount int `json:"upcoming_count"`
	TodayCount    int `json:"today_count"`
	TotalEvents   int `json:"total_events"`
}

// Service derives dashboard views from upstream snapshots. The
// derivation itself never fails; every error here comes from loading
// the snapshot or from the upstream write path.
type Service struct {
	Upstream Fetcher
	Cache    SnapshotCache
	Kafka    ChangePublisher
	Clock    pipeline.Clock
	Logger   *logger.Logger
}

func NewService(fetcher Fetcher, cache SnapshotCache, publisher ChangePublisher, clock pipeline.Clock, log *logger.Logger) *Service {
	return &Service{
		Upstream: fetcher,
		Cache:    cache,
		Kafka:    publisher,
		Clock:    clock,
		Logger:   log,
	}
}

// Snapshot returns the current read snapshot, fetching from upstream on
// a cache miss. A cache read failure degrades to a fetch rather than
// failing the view.
func (s *Service) Snapshot(ctx context.Context) (*upstream.Snapshot, error) {
	snap, err := s.Cache.Get(ctx)
	if err != nil {
		s.Logger.Warn("CACHE", fmt.Sprintf("Snapshot cache read failed, falling back to fetch: %v", err))
	} else if snap != nil {
		return snap, nil
	}

	return s.Refresh(ctx)
}

// Refresh fetches both collections upstream and replaces the cached
// snapshot wholesale. There are no partial updates: either both
// collections are refreshed or the old snapshot stays.
func (s *Service) Refresh(ctx context.Context) (*upstream.Snapshot, error) {
	events, err := s.Upstream.GetEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh snapshot: %w", err)
	}

	bookings, err := s.Upstream.GetBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh snapshot: %w", err)
	}

	snap := &upstream.Snapshot{
		Events:    events,
		Bookings:  bookings,
		FetchedAt: s.Clock.Now(),
	}

	if err := s.Cache.Set(ctx, snap); err != nil {
		s.Logger.Warn("CACHE", fmt.Sprintf("Failed to store snapshot: %v", err))
	}

	return snap, nil
}

// EventsView derives the filtered, sorted, grouped and paginated events
// list for one selection.
func (s *Service) EventsView(ctx context.Context, sel pipeline.Selection) (*pipeline.View, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	view := pipeline.DeriveView(snap.Events, snap.Bookings, sel, s.Clock)
	return &view, nil
}

// EventsSummary computes the header counters from the unfiltered
// collection.
func (s *Service) EventsSummary(ctx context.Context) (*Summary, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := s.Clock.Now()
	return &Summary{
		UpcomingCount: pipeline.UpcomingCount(snap.Events, now),
		TodayCount:    pipeline.TodayCount(snap.Events, now),
		TotalEvents:   len(snap.Events),
	}, nil
}

// CreateEvent passes a draft through to the upstream API, then drops
// the snapshot so the next view derives from fresh data. The publish
// and invalidate are best effort; the created event is returned either
// way.
func (s *Service) CreateEvent(ctx context.Context, draft models.EventDraft) (*models.Event, error) {
	if draft.Name == "" {
		return nil, fmt.Errorf("event name is required")
	}
	if draft.EndAt.Before(draft.StartAt) {
		return nil, fmt.Errorf("event must not end before it starts")
	}

	created, err := s.Upstream.CreateEvent(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	if s.Kafka != nil {
		if err := s.Kafka.PublishEventCreated(*created); err != nil {
			s.Logger.Error("KAFKA", fmt.Sprintf("Failed to publish event created: %v", err))
		}
	}

	if err := s.Cache.Invalidate(ctx); err != nil {
		s.Logger.Warn("CACHE", fmt.Sprintf("Failed to invalidate snapshot: %v", err))
	}

	return created, nil
}

// InvalidateSnapshot drops the cached snapshot. Wired to the Kafka
// change consumer.
func (s *Service) InvalidateSnapshot(ctx context.Context) {
	if err := s.Cache.Invalidate(ctx); err != nil {
		s.Logger.Warn("CACHE", fmt.Sprintf("Failed to invalidate snapshot: %v", err))
	}
}
