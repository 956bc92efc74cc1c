package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/redis/go-redis/v9"

	"campus-agenda/agenda"
	"campus-agenda/config"
	"campus-agenda/models"
	"campus-agenda/monitoring"
	"campus-agenda/store"
	"campus-agenda/utils"
)

const eventsCacheKey = "agenda:events"

// EventService serves the agenda event list with a Redis snapshot cache
// in front of the database. The cache path runs behind a circuit breaker
// so a flapping Redis degrades to direct database reads instead of
// blocking list renders.
type EventService struct {
	Store   store.EventStore
	Redis   *redis.Client
	Breaker *utils.CircuitBreaker
	TTL     time.Duration
}

func NewEventService(st store.EventStore, redisClient *redis.Client, cfg *config.Config) *EventService {
	return &EventService{
		Store:   st,
		Redis:   redisClient,
		Breaker: utils.NewCircuitBreaker("events-cache"),
		TTL:     cfg.EventsCacheTTL,
	}
}

// ListEvents returns every event, from cache when possible.
func (s *EventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	cached, err := s.Breaker.Execute(ctx, func() (any, error) {
		return s.Redis.Get(ctx, eventsCacheKey).Bytes()
	})
	if err == nil {
		var events []models.Event
		if jsonErr := json.Unmarshal(cached.([]byte), &events); jsonErr == nil {
			monitoring.TrackCacheLookup("hit")
			return events, nil
		}
		// Poisoned payload; fall through and overwrite it.
		monitoring.TrackCacheLookup("bypass")
	} else if err == utils.ErrBreakerOpen {
		monitoring.TrackCacheLookup("bypass")
	} else {
		monitoring.TrackCacheLookup("miss")
	}

	events, err := s.Store.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	s.primeCache(ctx, events)
	return events, nil
}

// primeCache stores the snapshot best-effort; cache write failures are
// logged, never surfaced.
func (s *EventService) primeCache(ctx context.Context, events []models.Event) {
	data, err := json.Marshal(events)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, eventsCacheKey, data, s.TTL).Err(); err != nil {
		slog.Warn("events cache write failed", "error", err)
		return
	}
	monitoring.SetCachedEvents(len(events))
}

// WarmCache re-primes the snapshot; used by the scheduled warmup job.
func (s *EventService) WarmCache(ctx context.Context) error {
	events, err := s.Store.ListEvents(ctx)
	if err != nil {
		return err
	}
	s.primeCache(ctx, events)
	return nil
}

// InvalidateCache drops the snapshot after a write.
func (s *EventService) InvalidateCache(ctx context.Context) {
	if err := s.Redis.Del(ctx, eventsCacheKey).Err(); err != nil {
		slog.Warn("events cache invalidation failed", "error", err)
	}
}

// ListBucket returns the upcoming events of one time bucket. The
// empty-state message is returned alongside so the handler can surface
// it when the slice is empty.
func (s *EventService) ListBucket(ctx context.Context, bucket agenda.Bucket, now time.Time) ([]models.Event, string, error) {
	events, err := s.ListEvents(ctx)
	if err != nil {
		return nil, "", err
	}

	filtered := agenda.Upcoming(agenda.FilterByBucket(events, bucket, now), now)
	return filtered, agenda.EmptyStateMessage(bucket), nil
}

// SearchEvents filters the agenda by a free-text query.
func (s *EventService) SearchEvents(ctx context.Context, query string) ([]models.Event, error) {
	events, err := s.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	monitoring.TrackSearch()
	return agenda.Search(events, query), nil
}

// GetEvent returns one event by its numeric id.
func (s *EventService) GetEvent(ctx context.Context, eventID int) (models.Event, error) {
	return s.Store.GetEvent(ctx, eventID)
}

// CreateEvent stores a new event and drops the cached snapshot.
func (s *EventService) CreateEvent(ctx context.Context, ev models.Event) (models.Event, error) {
	created, err := s.Store.CreateEvent(ctx, ev)
	if err != nil {
		return models.Event{}, err
	}
	s.InvalidateCache(ctx)
	return created, nil
}

// BuildICS renders the upcoming agenda as an iCalendar feed, one VEVENT
// per event. Events without a parseable date are skipped.
func (s *EventService) BuildICS(ctx context.Context, now time.Time) (string, error) {
	events, err := s.ListEvents(ctx)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//campus-agenda//ES")

	for _, ev := range agenda.Upcoming(events, now) {
		start, ok := agenda.ToLocal(agenda.NormalizeDate(ev.Date))
		if !ok || start.IsZero() {
			continue
		}

		vevent := cal.AddEvent(fmt.Sprintf("event-%d@campus-agenda", ev.ID))
		vevent.SetStartAt(start)
		vevent.SetEndAt(start.Add(time.Hour))
		vevent.SetSummary(titleOrDefault(ev))
		if ev.Location != "" {
			vevent.SetLocation(ev.Location)
		}
		if ev.Description != "" {
			vevent.SetDescription(ev.Description)
		}
	}

	return cal.Serialize(), nil
}

func titleOrDefault(ev models.Event) string {
	if ev.Title == "" {
		return agenda.DefaultTitle
	}
	return ev.Title
}
