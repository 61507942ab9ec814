package favorite

import (
	"context"
	"recipe-app/domain"
	"recipe-app/pkg/recipe"
)

type (
	FavoriteService interface {
		AddFavorite(ctx context.Context, req domain.FavoriteRequest, userID string) error
		RemoveFavorite(ctx context.Context, recipeID string, userID string) error
		IsFavorite(ctx context.Context, recipeID string, userID string) (bool, error)
		GetFavorites(ctx context.Context, userID string) (domain.RecipeListResult, error)
	}

	favoriteService struct {
		favoriteRepository FavoriteRepository
		recipes            recipe.RecipeFinder
		fanoutLimit        int
	}
)

func NewFavoriteService(favoriteRepository FavoriteRepository, recipes recipe.RecipeFinder, fanoutLimit int) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		recipes:            recipes,
		fanoutLimit:        fanoutLimit,
	}
}

func (s *favoriteService) AddFavorite(ctx context.Context, req domain.FavoriteRequest, userID string) error {
	if userID == "" {
		return domain.ErrNotAuthenticated
	}
	if _, err := s.recipes.FindRecipe(ctx, req.RecipeID); err != nil {
		return err
	}
	return s.favoriteRepository.AddFavorite(ctx, userID, req.RecipeID)
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, recipeID string, userID string) error {
	if userID == "" {
		return domain.ErrNotAuthenticated
	}
	return s.favoriteRepository.RemoveFavorite(ctx, userID, recipeID)
}

// IsFavorite reports false without error when there is no session.
func (s *favoriteService) IsFavorite(ctx context.Context, recipeID string, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return s.favoriteRepository.IsFavorite(ctx, userID, recipeID)
}

func (s *favoriteService) GetFavorites(ctx context.Context, userID string) (domain.RecipeListResult, error) {
	if userID == "" {
		return domain.RecipeListResult{}, domain.ErrNotAuthenticated
	}

	ids, err := s.favoriteRepository.FavoriteRecipeIDs(ctx, userID)
	if err != nil {
		return domain.RecipeListResult{}, err
	}

	result := recipe.ResolveRecipeList(ctx, s.recipes, ids, s.fanoutLimit)
	for i := range result.Recipes {
		result.Recipes[i].IsFavorite = true
	}
	return result, nil
}
