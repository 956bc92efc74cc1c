// Package handlers exposes the agenda API over the PocketBase router.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"campus-agenda/monitoring"
)

// ok sends the success envelope and counts the request.
func ok(e *core.RequestEvent, route string, payload map[string]any) error {
	payload["success"] = true
	monitoring.TrackRequest(route, "200")
	return e.JSON(http.StatusOK, payload)
}

// fail counts the failed request and passes the API error through.
func fail(route string, err error) error {
	monitoring.TrackRequest(route, "error")
	return err
}

func pathID(e *core.RequestEvent, name string) (int, error) {
	id, err := strconv.Atoi(e.Request.PathValue(name))
	if err != nil {
		return 0, apis.NewBadRequestError("Invalid id", err)
	}
	return id, nil
}

func queryInt(e *core.RequestEvent, name string) (int, error) {
	raw := e.Request.URL.Query().Get(name)
	if raw == "" {
		return 0, apis.NewBadRequestError(name+" required", nil)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apis.NewBadRequestError("Invalid "+name, err)
	}
	return id, nil
}

func requireSuperuser(e *core.RequestEvent) error {
	if e.Auth == nil || !e.Auth.IsSuperuser() {
		return apis.NewUnauthorizedError("Admin access required", nil)
	}
	return nil
}
