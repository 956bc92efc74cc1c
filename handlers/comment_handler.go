package handlers

import (
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"campus-agenda/models"
	"campus-agenda/services"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// ListComments - Comments for one event, newest first
func (h *CommentHandler) ListComments(e *core.RequestEvent) error {
	eventID, err := pathID(e, "id")
	if err != nil {
		return err
	}

	comments, err := h.comments.ListComments(e.Request.Context(), eventID)
	if err != nil {
		return fail("comments.list", apis.NewBadRequestError("Failed to list comments", err))
	}

	return ok(e, "comments.list", map[string]any{"comments": comments})
}

// CreateComment - Attach a comment to an event
func (h *CommentHandler) CreateComment(e *core.RequestEvent) error {
	eventID, err := pathID(e, "id")
	if err != nil {
		return err
	}

	var req models.Comment
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}
	if req.TitleComment == "" {
		return apis.NewBadRequestError("titleComment required", nil)
	}
	req.EventID = eventID

	created, err := h.comments.CreateComment(e.Request.Context(), req)
	if err != nil {
		return fail("comments.create", apis.NewBadRequestError("Failed to create comment", err))
	}

	return ok(e, "comments.create", map[string]any{"comment": created})
}
