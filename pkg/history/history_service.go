package history

import (
	"context"
	"recipe-app/domain"
	"recipe-app/pkg/recipe"
)

type (
	HistoryService interface {
		AddToHistory(ctx context.Context, req domain.HistoryRequest, userID string) error
		GetHistory(ctx context.Context, userID string, limit int) (domain.RecipeListResult, error)
		ClearHistory(ctx context.Context, userID string) error
	}

	historyService struct {
		historyRepository HistoryRepository
		recipes           recipe.RecipeFinder
		fanoutLimit       int
	}
)

func NewHistoryService(historyRepository HistoryRepository, recipes recipe.RecipeFinder, fanoutLimit int) HistoryService {
	return &historyService{
		historyRepository: historyRepository,
		recipes:           recipes,
		fanoutLimit:       fanoutLimit,
	}
}

func (s *historyService) AddToHistory(ctx context.Context, req domain.HistoryRequest, userID string) error {
	if userID == "" {
		return domain.ErrNotAuthenticated
	}
	return s.historyRepository.AddView(ctx, userID, req.RecipeID)
}

// GetHistory returns the user's viewed recipes, most recent first, each
// recipe once. A limit of zero or less returns the whole history.
func (s *historyService) GetHistory(ctx context.Context, userID string, limit int) (domain.RecipeListResult, error) {
	if userID == "" {
		return domain.RecipeListResult{}, domain.ErrNotAuthenticated
	}

	ids, err := s.historyRepository.RecentRecipeIDs(ctx, userID, limit)
	if err != nil {
		return domain.RecipeListResult{}, err
	}

	ids = dedupe(ids)
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return recipe.ResolveRecipeList(ctx, s.recipes, ids, s.fanoutLimit), nil
}

func (s *historyService) ClearHistory(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.ErrNotAuthenticated
	}
	return s.historyRepository.ClearHistory(ctx, userID)
}

// dedupe keeps the first occurrence of each id.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
