package handlers

import (
	"context"
	"errors"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"campus-agenda/services"
	"campus-agenda/store"
)

type EngagementHandler struct {
	engagements *services.EngagementService
}

func NewEngagementHandler(engagements *services.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagements: engagements}
}

type engagementRequest struct {
	EventID   int `json:"eventId"`
	AccountID int `json:"accountId"`
}

// MyAgenda - Favorited and attended events for one account, display-ready
func (h *EngagementHandler) MyAgenda(e *core.RequestEvent) error {
	accountID, err := pathID(e, "accountId")
	if err != nil {
		return err
	}

	sets, err := h.engagements.MyAgenda(e.Request.Context(), accountID)
	if err != nil {
		return fail("agenda.mine", apis.NewBadRequestError("Failed to load agenda", err))
	}

	return ok(e, "agenda.mine", map[string]any{
		"favorites":  sets.Favorites,
		"attendance": sets.Attendance,
	})
}

// EventDisplay - Detail view projection with the bookmark state resolved
func (h *EngagementHandler) EventDisplay(e *core.RequestEvent) error {
	eventID, err := pathID(e, "id")
	if err != nil {
		return err
	}
	accountID, err := queryInt(e, "account_id")
	if err != nil {
		return err
	}
	darkMode := e.Request.URL.Query().Get("dark") == "true"

	display, err := h.engagements.EventDisplay(e.Request.Context(), eventID, accountID, darkMode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fail("events.display", apis.NewNotFoundError("Event not found", nil))
		}
		return fail("events.display", apis.NewBadRequestError("Failed to load event", err))
	}

	return ok(e, "events.display", map[string]any{"event": display})
}

// AddFavorite - Bookmark an event
func (h *EngagementHandler) AddFavorite(e *core.RequestEvent) error {
	return h.mutate(e, "favorites.add", h.engagements.AddFavorite)
}

// RemoveFavorite - Drop a bookmark
func (h *EngagementHandler) RemoveFavorite(e *core.RequestEvent) error {
	return h.mutate(e, "favorites.remove", h.engagements.RemoveFavorite)
}

// AddAttendance - Mark attendance for an event
func (h *EngagementHandler) AddAttendance(e *core.RequestEvent) error {
	return h.mutate(e, "attendance.add", h.engagements.AddAttendance)
}

// RemoveAttendance - Unmark attendance
func (h *EngagementHandler) RemoveAttendance(e *core.RequestEvent) error {
	return h.mutate(e, "attendance.remove", h.engagements.RemoveAttendance)
}

func (h *EngagementHandler) mutate(e *core.RequestEvent, route string, op func(ctx context.Context, accountID, eventID int) error) error {
	var req engagementRequest
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}
	if req.EventID == 0 || req.AccountID == 0 {
		return apis.NewBadRequestError("eventId and accountId required", nil)
	}

	if err := op(e.Request.Context(), req.AccountID, req.EventID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return fail(route, apis.NewNotFoundError("Record not found", nil))
		case errors.Is(err, store.ErrDuplicate):
			return fail(route, apis.NewBadRequestError("Already registered", nil))
		}
		return fail(route, apis.NewBadRequestError("Failed to update", err))
	}

	return ok(e, route, map[string]any{"eventId": req.EventID})
}
