package services

import (
	"context"
	"time"

	"campus-agenda/agenda"
	"campus-agenda/models"
	"campus-agenda/store"
)

// CommentService lists and creates event comments. Collections are
// always served newest first.
type CommentService struct {
	Store store.CommentStore
}

func NewCommentService(st store.CommentStore) *CommentService {
	return &CommentService{Store: st}
}

func (s *CommentService) ListComments(ctx context.Context, eventID int) ([]models.Comment, error) {
	comments, err := s.Store.ListComments(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return agenda.SortCommentsByDate(comments), nil
}

func (s *CommentService) CreateComment(ctx context.Context, c models.Comment) (models.Comment, error) {
	if c.DateComment == "" {
		c.DateComment = time.Now().UTC().Format("2006-01-02T15:04:05Z")
	}
	return s.Store.CreateComment(ctx, c)
}
