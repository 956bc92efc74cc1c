package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"campus-agenda/agenda"
	"campus-agenda/models"
	"campus-agenda/services"
	"campus-agenda/store"
)

type EventHandler struct {
	events *services.EventService
}

func NewEventHandler(events *services.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// ListEvents - List the agenda, optionally narrowed by ?bucket= or ?q=
func (h *EventHandler) ListEvents(e *core.RequestEvent) error {
	ctx := e.Request.Context()
	query := e.Request.URL.Query()

	if q := query.Get("q"); q != "" {
		events, err := h.events.SearchEvents(ctx, q)
		if err != nil {
			return fail("events.search", apis.NewBadRequestError("Failed to search events", err))
		}
		return ok(e, "events.search", map[string]any{"events": events})
	}

	if raw := query.Get("bucket"); raw != "" {
		bucket, err := parseBucket(raw)
		if err != nil {
			return err
		}
		events, emptyMessage, err := h.events.ListBucket(ctx, bucket, time.Now())
		if err != nil {
			return fail("events.bucket", apis.NewBadRequestError("Failed to list events", err))
		}
		payload := map[string]any{"events": events}
		if len(events) == 0 {
			payload["emptyMessage"] = emptyMessage
		}
		return ok(e, "events.bucket", payload)
	}

	events, err := h.events.ListEvents(ctx)
	if err != nil {
		return fail("events.list", apis.NewBadRequestError("Failed to list events", err))
	}
	return ok(e, "events.list", map[string]any{"events": events})
}

// GetEvent - Fetch one event by numeric id
func (h *EventHandler) GetEvent(e *core.RequestEvent) error {
	eventID, err := pathID(e, "id")
	if err != nil {
		return err
	}

	ev, err := h.events.GetEvent(e.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fail("events.get", apis.NewNotFoundError("Event not found", nil))
		}
		return fail("events.get", apis.NewBadRequestError("Failed to get event", err))
	}

	return ok(e, "events.get", map[string]any{"event": ev})
}

// CreateEvent - Add an event to the agenda (admin only)
func (h *EventHandler) CreateEvent(e *core.RequestEvent) error {
	if err := requireSuperuser(e); err != nil {
		return err
	}

	var req models.Event
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	created, err := h.events.CreateEvent(e.Request.Context(), req)
	if err != nil {
		return fail("events.create", apis.NewBadRequestError("Failed to create event", err))
	}

	return ok(e, "events.create", map[string]any{"event": created})
}

// Calendar - Serve the upcoming agenda as an iCalendar feed
func (h *EventHandler) Calendar(e *core.RequestEvent) error {
	feed, err := h.events.BuildICS(e.Request.Context(), time.Now())
	if err != nil {
		return fail("events.calendar", apis.NewBadRequestError("Failed to build calendar", err))
	}

	e.Response.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	e.Response.Header().Set("Content-Disposition", `attachment; filename="agenda.ics"`)
	e.Response.WriteHeader(http.StatusOK)
	_, err = e.Response.Write([]byte(feed))
	return err
}

func parseBucket(raw string) (agenda.Bucket, error) {
	switch raw {
	case "today":
		return agenda.BucketToday, nil
	case "week":
		return agenda.BucketWeek, nil
	case "month":
		return agenda.BucketMonth, nil
	}
	return "", apis.NewBadRequestError("Unknown bucket: "+raw, nil)
}
