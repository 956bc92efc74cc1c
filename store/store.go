// Package store persists agenda records in PocketBase collections and
// exposes them through narrow interfaces so services can be tested with
// fakes.
package store

import (
	"context"
	"errors"

	"campus-agenda/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

type EventStore interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, eventID int) (models.Event, error)
	CreateEvent(ctx context.Context, ev models.Event) (models.Event, error)
}

type EngagementStore interface {
	FavoriteIDs(ctx context.Context, accountID int) (map[int]struct{}, error)
	AttendanceIDs(ctx context.Context, accountID int) (map[int]struct{}, error)
	AddFavorite(ctx context.Context, accountID, eventID int) error
	RemoveFavorite(ctx context.Context, accountID, eventID int) error
	AddAttendance(ctx context.Context, accountID, eventID int) error
	RemoveAttendance(ctx context.Context, accountID, eventID int) error
	CountByEvent(ctx context.Context, collection string) (map[int]int, error)
}

type CommentStore interface {
	ListComments(ctx context.Context, eventID int) ([]models.Comment, error)
	CreateComment(ctx context.Context, c models.Comment) (models.Comment, error)
}

type SuggestionStore interface {
	ListSuggestions(ctx context.Context, accountID int) ([]models.Suggestion, error)
	ListAllSuggestions(ctx context.Context) ([]models.Suggestion, error)
	CreateSuggestion(ctx context.Context, s models.Suggestion) (models.Suggestion, error)
}

type AccountStore interface {
	ListAccounts(ctx context.Context) ([]models.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (models.Account, string, error)
	CreateAccount(ctx context.Context, a models.Account, passwordHash string) (models.Account, error)
}
