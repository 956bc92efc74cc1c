package handlers

import (
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"campus-agenda/models"
	"campus-agenda/services"
)

type SuggestionHandler struct {
	suggestions *services.SuggestionService
}

func NewSuggestionHandler(suggestions *services.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestions: suggestions}
}

// CreateSuggestion - Submit an event proposal; the folio comes back in
// the response
func (h *SuggestionHandler) CreateSuggestion(e *core.RequestEvent) error {
	var req models.Suggestion
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}
	if req.Title == "" {
		return apis.NewBadRequestError("title required", nil)
	}

	created, err := h.suggestions.CreateSuggestion(e.Request.Context(), req)
	if err != nil {
		return fail("suggestions.create", apis.NewBadRequestError("Failed to create suggestion", err))
	}

	return ok(e, "suggestions.create", map[string]any{"suggestion": created})
}

// ListSuggestions - Proposals submitted by one account
func (h *SuggestionHandler) ListSuggestions(e *core.RequestEvent) error {
	accountID, err := queryInt(e, "account_id")
	if err != nil {
		return err
	}

	suggestions, err := h.suggestions.ListSuggestions(e.Request.Context(), accountID)
	if err != nil {
		return fail("suggestions.list", apis.NewBadRequestError("Failed to list suggestions", err))
	}

	return ok(e, "suggestions.list", map[string]any{"suggestions": suggestions})
}

// ListAllSuggestions - Every proposal, for the review screen (admin only)
func (h *SuggestionHandler) ListAllSuggestions(e *core.RequestEvent) error {
	if err := requireSuperuser(e); err != nil {
		return err
	}

	suggestions, err := h.suggestions.ListAllSuggestions(e.Request.Context())
	if err != nil {
		return fail("suggestions.all", apis.NewBadRequestError("Failed to list suggestions", err))
	}

	return ok(e, "suggestions.all", map[string]any{"suggestions": suggestions})
}
