package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-agenda/models"
	"campus-agenda/utils"
)

func TestDashboardService_Stats(t *testing.T) {
	events := []models.Event{
		{ID: 1, Title: "Conferencia"},
		{ID: 2, Title: "Taller"},
	}

	db, redisMock := redismock.NewClientMock()
	eventService := &EventService{
		Store:   &fakeEventStore{events: events},
		Redis:   db,
		Breaker: utils.NewCircuitBreaker("events-cache-test"),
		TTL:     5 * time.Minute,
	}
	snapshot, _ := json.Marshal(events)
	redisMock.ExpectGet(eventsCacheKey).RedisNil()
	redisMock.ExpectSet(eventsCacheKey, snapshot, 5*time.Minute).SetVal("OK")

	engagements := newFakeEngagementStore()
	ctx := context.Background()
	require.NoError(t, engagements.AddFavorite(ctx, 7, 1))
	require.NoError(t, engagements.AddAttendance(ctx, 7, 1))
	require.NoError(t, engagements.AddAttendance(ctx, 8, 1))

	accounts := newFakeAccountStore()
	accounts.accounts = []models.Account{
		{ID: 7, Email: "a@uni.mx"},
		{ID: 8, Email: "b@uni.mx"},
		{ID: 9, Email: "c@uni.mx"},
		{ID: 10, Email: "d@uni.mx"},
	}

	service := NewDashboardService(eventService, engagements, accounts)

	stats, err := service.Stats(ctx)

	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, 1, stats[0].EventID)
	assert.Equal(t, 1, stats[0].Favorites)
	assert.Equal(t, 2, stats[0].Attendance)
	// 2 of 4 accounts attending.
	assert.Equal(t, "50.00", stats[0].AttendanceRate)

	assert.Equal(t, 2, stats[1].EventID)
	assert.Equal(t, 0, stats[1].Attendance)
	assert.Equal(t, "0.00", stats[1].AttendanceRate)
}

func TestAttendanceRate_NoAccounts(t *testing.T) {
	assert.Equal(t, "0.00", attendanceRate(3, 0))
}

func TestAttendanceRate_Rounding(t *testing.T) {
	assert.Equal(t, "33.33", attendanceRate(1, 3))
	assert.Equal(t, "66.67", attendanceRate(2, 3))
	assert.Equal(t, "100.00", attendanceRate(3, 3))
}
