package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-agenda/agenda"
	"campus-agenda/models"
	"campus-agenda/store"
	"campus-agenda/utils"
)

// fakeEventStore is an in-memory EventStore for service tests.
type fakeEventStore struct {
	events    []models.Event
	listCalls int
	listErr   error
}

func (f *fakeEventStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeEventStore) GetEvent(ctx context.Context, eventID int) (models.Event, error) {
	for _, ev := range f.events {
		if ev.ID == eventID {
			return ev, nil
		}
	}
	return models.Event{}, store.ErrNotFound
}

func (f *fakeEventStore) CreateEvent(ctx context.Context, ev models.Event) (models.Event, error) {
	ev.ID = len(f.events) + 1
	f.events = append(f.events, ev)
	return ev, nil
}

func setupEventService(events []models.Event) (*EventService, redismock.ClientMock, *fakeEventStore) {
	db, redisMock := redismock.NewClientMock()
	fake := &fakeEventStore{events: events}

	service := &EventService{
		Store:   fake,
		Redis:   db,
		Breaker: utils.NewCircuitBreaker("events-cache-test"),
		TTL:     5 * time.Minute,
	}
	return service, redisMock, fake
}

func TestEventService_ListEvents_CacheHit(t *testing.T) {
	events := []models.Event{{ID: 1, Title: "Conferencia"}}
	service, redisMock, fake := setupEventService(nil)

	cached, err := json.Marshal(events)
	require.NoError(t, err)
	redisMock.ExpectGet(eventsCacheKey).SetVal(string(cached))

	got, err := service.ListEvents(context.Background())

	require.NoError(t, err)
	assert.Equal(t, events, got)
	// The store is never consulted on a hit.
	assert.Equal(t, 0, fake.listCalls)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestEventService_ListEvents_CacheMissFallsThrough(t *testing.T) {
	events := []models.Event{{ID: 1, Title: "Conferencia"}, {ID: 2, Title: "Taller"}}
	service, redisMock, fake := setupEventService(events)

	snapshot, err := json.Marshal(events)
	require.NoError(t, err)
	redisMock.ExpectGet(eventsCacheKey).RedisNil()
	redisMock.ExpectSet(eventsCacheKey, snapshot, 5*time.Minute).SetVal("OK")

	got, err := service.ListEvents(context.Background())

	require.NoError(t, err)
	assert.Equal(t, events, got)
	assert.Equal(t, 1, fake.listCalls)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestEventService_ListEvents_CacheWriteFailureIsBestEffort(t *testing.T) {
	events := []models.Event{{ID: 1}}
	service, redisMock, _ := setupEventService(events)

	snapshot, _ := json.Marshal(events)
	redisMock.ExpectGet(eventsCacheKey).RedisNil()
	redisMock.ExpectSet(eventsCacheKey, snapshot, 5*time.Minute).SetErr(errors.New("redis down"))

	got, err := service.ListEvents(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestEventService_ListEvents_BreakerOpenBypassesCache(t *testing.T) {
	events := []models.Event{{ID: 1}}
	service, redisMock, fake := setupEventService(events)

	// Trip the breaker so the cache path is skipped entirely.
	service.Breaker = utils.NewCircuitBreaker("tripped")
	ctx := context.Background()
	for i := 0; i < 100; i++ {
		service.Breaker.Execute(ctx, func() (any, error) {
			return nil, errors.New("redis down")
		})
	}

	snapshot, _ := json.Marshal(events)
	redisMock.ExpectSet(eventsCacheKey, snapshot, 5*time.Minute).SetVal("OK")

	got, err := service.ListEvents(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, fake.listCalls)
}

func TestEventService_ListEvents_StoreError(t *testing.T) {
	service, redisMock, fake := setupEventService(nil)
	fake.listErr = errors.New("db locked")

	redisMock.ExpectGet(eventsCacheKey).RedisNil()

	_, err := service.ListEvents(context.Background())

	assert.Error(t, err)
}

func TestEventService_ListBucket(t *testing.T) {
	now := time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC)
	events := []models.Event{
		{ID: 1, Date: "2025-06-17"}, // yesterday, same week
		{ID: 2, Date: "2025-06-18"}, // today
		{ID: 3, Date: "2025-06-20"}, // later this week
	}
	service, redisMock, _ := setupEventService(events)

	snapshot, _ := json.Marshal(events)
	redisMock.ExpectGet(eventsCacheKey).RedisNil()
	redisMock.ExpectSet(eventsCacheKey, snapshot, 5*time.Minute).SetVal("OK")

	got, emptyMsg, err := service.ListBucket(context.Background(), agenda.BucketWeek, now)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
	assert.Equal(t, "No hay eventos programados para esta semana", emptyMsg)
}

func TestEventService_SearchEvents(t *testing.T) {
	events := []models.Event{
		{ID: 1, Title: "Conferencia de Sistemas"},
		{ID: 2, Title: "Torneo de ajedrez"},
	}
	service, redisMock, _ := setupEventService(events)

	snapshot, _ := json.Marshal(events)
	redisMock.ExpectGet(eventsCacheKey).RedisNil()
	redisMock.ExpectSet(eventsCacheKey, snapshot, 5*time.Minute).SetVal("OK")

	got, err := service.SearchEvents(context.Background(), "SISTEMAS")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func TestEventService_CreateEvent_InvalidatesCache(t *testing.T) {
	service, redisMock, fake := setupEventService(nil)

	redisMock.ExpectDel(eventsCacheKey).SetVal(1)

	created, err := service.CreateEvent(context.Background(), models.Event{Title: "Nuevo"})

	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Len(t, fake.events, 1)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestEventService_BuildICS(t *testing.T) {
	now := time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC)
	events := []models.Event{
		{ID: 1, Title: "Feria de ciencias", Date: "2025-06-20T10:00:00", Location: "Auditorio"},
		{ID: 2, Title: "Pasado", Date: "2025-06-01T10:00:00"},
		{ID: 3, Title: "Sin fecha"},
	}
	service, redisMock, _ := setupEventService(events)

	snapshot, _ := json.Marshal(events)
	redisMock.ExpectGet(eventsCacheKey).RedisNil()
	redisMock.ExpectSet(eventsCacheKey, snapshot, 5*time.Minute).SetVal("OK")

	feed, err := service.BuildICS(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(feed, "BEGIN:VEVENT"))
	assert.Contains(t, feed, "SUMMARY:Feria de ciencias")
	assert.Contains(t, feed, "LOCATION:Auditorio")
	assert.NotContains(t, feed, "Pasado")
}

func TestEventService_WarmCache(t *testing.T) {
	events := []models.Event{{ID: 1}}
	service, redisMock, fake := setupEventService(events)

	snapshot, _ := json.Marshal(events)
	redisMock.ExpectSet(eventsCacheKey, snapshot, 5*time.Minute).SetVal("OK")

	err := service.WarmCache(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, fake.listCalls)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
