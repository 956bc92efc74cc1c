package services

import (
	"context"
	"errors"
	"log/slog"

	"campus-agenda/agenda"
	"campus-agenda/models"
	"campus-agenda/store"
)

// EngagementService reconciles the event list against an account's
// favorite and attendance id-sets.
type EngagementService struct {
	Events *EventService
	Store  store.EngagementStore
}

func NewEngagementService(events *EventService, st store.EngagementStore) *EngagementService {
	return &EngagementService{Events: events, Store: st}
}

// MyAgenda returns the display-ready favorited and attended subsets for
// an account. A failed or empty id-set fetch means "no records", never
// an error: the other partition still renders.
func (s *EngagementService) MyAgenda(ctx context.Context, accountID int) (agenda.EnrichedSets, error) {
	events, err := s.Events.ListEvents(ctx)
	if err != nil {
		return agenda.EnrichedSets{}, err
	}

	favoriteIDs, err := s.Store.FavoriteIDs(ctx, accountID)
	if err != nil {
		slog.Warn("favorites fetch failed, treating as empty", "account", accountID, "error", err)
		favoriteIDs = nil
	}

	attendanceIDs, err := s.Store.AttendanceIDs(ctx, accountID)
	if err != nil {
		slog.Warn("attendance fetch failed, treating as empty", "account", accountID, "error", err)
		attendanceIDs = nil
	}

	return agenda.Enrich(events, favoriteIDs, attendanceIDs), nil
}

// EventDisplay projects a single event for the detail view with the
// account's bookmark state resolved.
func (s *EngagementService) EventDisplay(ctx context.Context, eventID, accountID int, darkMode bool) (models.EventDisplay, error) {
	ev, err := s.Events.GetEvent(ctx, eventID)
	if err != nil {
		return models.EventDisplay{}, err
	}

	hasBookmark := false
	if favoriteIDs, err := s.Store.FavoriteIDs(ctx, accountID); err == nil {
		_, hasBookmark = favoriteIDs[eventID]
	}

	return agenda.ToDisplay(ev, hasBookmark, darkMode), nil
}

func (s *EngagementService) AddFavorite(ctx context.Context, accountID, eventID int) error {
	return s.addEngagement(ctx, accountID, eventID, s.Store.AddFavorite)
}

func (s *EngagementService) RemoveFavorite(ctx context.Context, accountID, eventID int) error {
	return s.Store.RemoveFavorite(ctx, accountID, eventID)
}

func (s *EngagementService) AddAttendance(ctx context.Context, accountID, eventID int) error {
	return s.addEngagement(ctx, accountID, eventID, s.Store.AddAttendance)
}

func (s *EngagementService) RemoveAttendance(ctx context.Context, accountID, eventID int) error {
	return s.Store.RemoveAttendance(ctx, accountID, eventID)
}

// addEngagement verifies the event exists before linking it; duplicate
// pairs surface as store.ErrDuplicate.
func (s *EngagementService) addEngagement(ctx context.Context, accountID, eventID int, add func(context.Context, int, int) error) error {
	if _, err := s.Events.GetEvent(ctx, eventID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ErrNotFound
		}
		return err
	}
	return add(ctx, accountID, eventID)
}
