package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"

	"campus-agenda/models"
)

// PBStore implements every store interface on top of the PocketBase
// collections created by the migrations. The upstream schema used SQL
// auto-increment ids, so each collection carries its own numeric id
// field next to the PocketBase record id; allocation is max+1.
type PBStore struct {
	app core.App
}

func NewPBStore(app core.App) *PBStore {
	return &PBStore{app: app}
}

// nextID allocates the next numeric id for a collection's id column.
func (s *PBStore) nextID(table, column string) (int, error) {
	var max sql.NullInt64
	err := s.app.DB().
		Select(fmt.Sprintf("MAX(%s)", column)).
		From(table).
		Row(&max)
	if err != nil {
		return 0, err
	}
	return int(max.Int64) + 1, nil
}

// Events

func (s *PBStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	records, err := s.app.FindAllRecords("events")
	if err != nil {
		return nil, err
	}

	events := make([]models.Event, 0, len(records))
	for _, r := range records {
		events = append(events, recordToEvent(r))
	}
	// ISO-8601 dates sort lexicographically; empty dates go first and
	// are harmless to the bucket filters downstream.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
	return events, nil
}

func (s *PBStore) GetEvent(ctx context.Context, eventID int) (models.Event, error) {
	r, err := s.findByNumericID("events", "event_id", eventID)
	if err != nil {
		return models.Event{}, err
	}
	return recordToEvent(r), nil
}

func (s *PBStore) CreateEvent(ctx context.Context, ev models.Event) (models.Event, error) {
	collection, err := s.app.FindCollectionByNameOrId("events")
	if err != nil {
		return models.Event{}, err
	}

	id, err := s.nextID("events", "event_id")
	if err != nil {
		return models.Event{}, err
	}

	record := core.NewRecord(collection)
	record.Set("event_id", id)
	record.Set("title", ev.Title)
	record.Set("department", ev.Department)
	record.Set("date", ev.Date)
	record.Set("time", ev.Time)
	record.Set("location", ev.Location)
	record.Set("image_url", ev.ImageURL)
	record.Set("description", ev.Description)

	if err := s.app.Save(record); err != nil {
		return models.Event{}, err
	}

	ev.ID = id
	return ev, nil
}

func recordToEvent(r *core.Record) models.Event {
	return models.Event{
		ID:          r.GetInt("event_id"),
		Title:       r.GetString("title"),
		Department:  r.GetString("department"),
		Date:        r.GetString("date"),
		Time:        r.GetString("time"),
		Location:    r.GetString("location"),
		ImageURL:    r.GetString("image_url"),
		Description: r.GetString("description"),
	}
}

// Favorites and attendance

func (s *PBStore) FavoriteIDs(ctx context.Context, accountID int) (map[int]struct{}, error) {
	return s.engagementIDs("favorites", accountID)
}

func (s *PBStore) AttendanceIDs(ctx context.Context, accountID int) (map[int]struct{}, error) {
	return s.engagementIDs("attendance", accountID)
}

func (s *PBStore) engagementIDs(collection string, accountID int) (map[int]struct{}, error) {
	records, err := s.app.FindRecordsByFilter(
		collection,
		"account_id = {:account}",
		"",
		0,
		0,
		dbx.Params{"account": accountID},
	)
	if err != nil {
		return nil, err
	}

	ids := make(map[int]struct{}, len(records))
	for _, r := range records {
		ids[r.GetInt("event_id")] = struct{}{}
	}
	return ids, nil
}

func (s *PBStore) AddFavorite(ctx context.Context, accountID, eventID int) error {
	return s.addEngagement("favorites", accountID, eventID)
}

func (s *PBStore) RemoveFavorite(ctx context.Context, accountID, eventID int) error {
	return s.removeEngagement("favorites", accountID, eventID)
}

func (s *PBStore) AddAttendance(ctx context.Context, accountID, eventID int) error {
	return s.addEngagement("attendance", accountID, eventID)
}

func (s *PBStore) RemoveAttendance(ctx context.Context, accountID, eventID int) error {
	return s.removeEngagement("attendance", accountID, eventID)
}

func (s *PBStore) addEngagement(collection string, accountID, eventID int) error {
	if _, err := s.findEngagement(collection, accountID, eventID); err == nil {
		return ErrDuplicate
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	col, err := s.app.FindCollectionByNameOrId(collection)
	if err != nil {
		return err
	}

	record := core.NewRecord(col)
	record.Set("account_id", accountID)
	record.Set("event_id", eventID)
	return s.app.Save(record)
}

func (s *PBStore) removeEngagement(collection string, accountID, eventID int) error {
	record, err := s.findEngagement(collection, accountID, eventID)
	if err != nil {
		return err
	}
	return s.app.Delete(record)
}

func (s *PBStore) findEngagement(collection string, accountID, eventID int) (*core.Record, error) {
	record, err := s.app.FindFirstRecordByFilter(
		collection,
		"account_id = {:account} && event_id = {:event}",
		dbx.Params{"account": accountID, "event": eventID},
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return record, nil
}

// CountByEvent returns per-event record counts for an engagement-shaped
// collection (favorites, attendance, comments).
func (s *PBStore) CountByEvent(ctx context.Context, collection string) (map[int]int, error) {
	var rows []struct {
		EventID int `db:"event_id"`
		Total   int `db:"total"`
	}

	err := s.app.DB().
		Select("event_id", "COUNT(*) AS total").
		From(collection).
		GroupBy("event_id").
		All(&rows)
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[row.EventID] = row.Total
	}
	return counts, nil
}

// Comments

func (s *PBStore) ListComments(ctx context.Context, eventID int) ([]models.Comment, error) {
	records, err := s.app.FindRecordsByFilter(
		"comments",
		"event_id = {:event}",
		"created",
		0,
		0,
		dbx.Params{"event": eventID},
	)
	if err != nil {
		return nil, err
	}

	comments := make([]models.Comment, 0, len(records))
	for _, r := range records {
		comments = append(comments, models.Comment{
			ID:                 r.GetInt("comment_id"),
			TitleComment:       r.GetString("title"),
			DescriptionComment: r.GetString("description"),
			DateComment:        r.GetString("date"),
			AccountID:          r.GetInt("account_id"),
			EventID:            r.GetInt("event_id"),
		})
	}
	return comments, nil
}

func (s *PBStore) CreateComment(ctx context.Context, c models.Comment) (models.Comment, error) {
	collection, err := s.app.FindCollectionByNameOrId("comments")
	if err != nil {
		return models.Comment{}, err
	}

	id, err := s.nextID("comments", "comment_id")
	if err != nil {
		return models.Comment{}, err
	}

	record := core.NewRecord(collection)
	record.Set("comment_id", id)
	record.Set("title", c.TitleComment)
	record.Set("description", c.DescriptionComment)
	record.Set("date", c.DateComment)
	record.Set("account_id", c.AccountID)
	record.Set("event_id", c.EventID)

	if err := s.app.Save(record); err != nil {
		return models.Comment{}, err
	}

	c.ID = id
	return c, nil
}

// Suggestions

func (s *PBStore) ListSuggestions(ctx context.Context, accountID int) ([]models.Suggestion, error) {
	return s.listSuggestions("account_id = {:account}", dbx.Params{"account": accountID})
}

func (s *PBStore) ListAllSuggestions(ctx context.Context) ([]models.Suggestion, error) {
	records, err := s.app.FindAllRecords("suggestions")
	if err != nil {
		return nil, err
	}
	return recordsToSuggestions(records), nil
}

func (s *PBStore) listSuggestions(filter string, params dbx.Params) ([]models.Suggestion, error) {
	records, err := s.app.FindRecordsByFilter("suggestions", filter, "-created", 0, 0, params)
	if err != nil {
		return nil, err
	}
	return recordsToSuggestions(records), nil
}

func recordsToSuggestions(records []*core.Record) []models.Suggestion {
	suggestions := make([]models.Suggestion, 0, len(records))
	for _, r := range records {
		suggestions = append(suggestions, models.Suggestion{
			ID:          r.GetInt("suggestion_id"),
			Folio:       r.GetString("folio"),
			Title:       r.GetString("title"),
			Description: r.GetString("description"),
			Department:  r.GetString("department"),
			AccountID:   r.GetInt("account_id"),
			Status:      r.GetString("status"),
		})
	}
	return suggestions
}

func (s *PBStore) CreateSuggestion(ctx context.Context, sg models.Suggestion) (models.Suggestion, error) {
	collection, err := s.app.FindCollectionByNameOrId("suggestions")
	if err != nil {
		return models.Suggestion{}, err
	}

	id, err := s.nextID("suggestions", "suggestion_id")
	if err != nil {
		return models.Suggestion{}, err
	}

	record := core.NewRecord(collection)
	record.Set("suggestion_id", id)
	record.Set("folio", sg.Folio)
	record.Set("title", sg.Title)
	record.Set("description", sg.Description)
	record.Set("department", sg.Department)
	record.Set("account_id", sg.AccountID)
	record.Set("status", sg.Status)

	if err := s.app.Save(record); err != nil {
		return models.Suggestion{}, err
	}

	sg.ID = id
	return sg, nil
}

// Accounts

func (s *PBStore) ListAccounts(ctx context.Context) ([]models.Account, error) {
	records, err := s.app.FindAllRecords("accounts")
	if err != nil {
		return nil, err
	}

	accounts := make([]models.Account, 0, len(records))
	for _, r := range records {
		accounts = append(accounts, recordToAccount(r))
	}
	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].ID < accounts[j].ID
	})
	return accounts, nil
}

func (s *PBStore) FindAccountByEmail(ctx context.Context, email string) (models.Account, string, error) {
	record, err := s.app.FindFirstRecordByFilter(
		"accounts",
		"email = {:email}",
		dbx.Params{"email": email},
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, "", ErrNotFound
		}
		return models.Account{}, "", err
	}
	return recordToAccount(record), record.GetString("password_hash"), nil
}

func (s *PBStore) CreateAccount(ctx context.Context, a models.Account, passwordHash string) (models.Account, error) {
	if _, _, err := s.FindAccountByEmail(ctx, a.Email); err == nil {
		return models.Account{}, ErrDuplicate
	} else if !errors.Is(err, ErrNotFound) {
		return models.Account{}, err
	}

	collection, err := s.app.FindCollectionByNameOrId("accounts")
	if err != nil {
		return models.Account{}, err
	}

	id, err := s.nextID("accounts", "account_id")
	if err != nil {
		return models.Account{}, err
	}

	record := core.NewRecord(collection)
	record.Set("account_id", id)
	record.Set("name", a.Name)
	record.Set("email", a.Email)
	record.Set("password_hash", passwordHash)
	record.Set("role", a.Role)

	if err := s.app.Save(record); err != nil {
		return models.Account{}, err
	}

	a.ID = id
	return a, nil
}

func recordToAccount(r *core.Record) models.Account {
	return models.Account{
		ID:    r.GetInt("account_id"),
		Name:  r.GetString("name"),
		Email: r.GetString("email"),
		Role:  r.GetString("role"),
	}
}

// findByNumericID resolves a record by its legacy numeric id column.
func (s *PBStore) findByNumericID(collection, column string, id int) (*core.Record, error) {
	record, err := s.app.FindFirstRecordByFilter(
		collection,
		fmt.Sprintf("%s = {:id}", column),
		dbx.Params{"id": id},
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return record, nil
}
