package services

import (
	"context"

	"github.com/shopspring/decimal"

	"campus-agenda/store"
)

// EventStats is one row of the admin dashboard.
type EventStats struct {
	EventID        int    `json:"eventId"`
	Title          string `json:"title"`
	Favorites      int    `json:"favorites"`
	Attendance     int    `json:"attendance"`
	Comments       int    `json:"comments"`
	AttendanceRate string `json:"attendanceRate"` // percent of accounts attending, 2 decimals
}

// DashboardService aggregates per-event engagement counts for the admin
// screen.
type DashboardService struct {
	Events      *EventService
	Engagements store.EngagementStore
	Accounts    store.AccountStore
}

func NewDashboardService(events *EventService, engagements store.EngagementStore, accounts store.AccountStore) *DashboardService {
	return &DashboardService{Events: events, Engagements: engagements, Accounts: accounts}
}

// Stats returns one row per event, in event order.
func (s *DashboardService) Stats(ctx context.Context) ([]EventStats, error) {
	events, err := s.Events.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	favorites, err := s.Engagements.CountByEvent(ctx, "favorites")
	if err != nil {
		return nil, err
	}
	attendance, err := s.Engagements.CountByEvent(ctx, "attendance")
	if err != nil {
		return nil, err
	}
	comments, err := s.Engagements.CountByEvent(ctx, "comments")
	if err != nil {
		return nil, err
	}

	accounts, err := s.Accounts.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	totalAccounts := len(accounts)

	stats := make([]EventStats, 0, len(events))
	for _, ev := range events {
		stats = append(stats, EventStats{
			EventID:        ev.ID,
			Title:          ev.Title,
			Favorites:      favorites[ev.ID],
			Attendance:     attendance[ev.ID],
			Comments:       comments[ev.ID],
			AttendanceRate: attendanceRate(attendance[ev.ID], totalAccounts),
		})
	}
	return stats, nil
}

// attendanceRate renders attending/total as a percentage with two
// decimal places, "0.00" when there are no accounts.
func attendanceRate(attending, totalAccounts int) string {
	if totalAccounts == 0 {
		return "0.00"
	}
	rate := decimal.NewFromInt(int64(attending)).
		Div(decimal.NewFromInt(int64(totalAccounts))).
		Mul(decimal.NewFromInt(100))
	return rate.StringFixed(2)
}
