package services

import (
	"context"

	"campus-agenda/models"
	"campus-agenda/store"
	"campus-agenda/utils"
)

// SuggestionService records user-submitted event proposals.
type SuggestionService struct {
	Store store.SuggestionStore
}

func NewSuggestionService(st store.SuggestionStore) *SuggestionService {
	return &SuggestionService{Store: st}
}

// CreateSuggestion assigns a folio code and stores the proposal as
// pending.
func (s *SuggestionService) CreateSuggestion(ctx context.Context, sg models.Suggestion) (models.Suggestion, error) {
	folio, err := utils.GenerateFolio()
	if err != nil {
		return models.Suggestion{}, err
	}
	sg.Folio = folio
	sg.Status = models.SuggestionPending
	return s.Store.CreateSuggestion(ctx, sg)
}

func (s *SuggestionService) ListSuggestions(ctx context.Context, accountID int) ([]models.Suggestion, error) {
	return s.Store.ListSuggestions(ctx, accountID)
}

func (s *SuggestionService) ListAllSuggestions(ctx context.Context) ([]models.Suggestion, error) {
	return s.Store.ListAllSuggestions(ctx)
}
