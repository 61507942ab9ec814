package recipe

import (
	"context"
	"recipe-app/domain"
	"recipe-app/pkg/fanout"
)

// RecipeFinder looks up a single recipe by id.
type RecipeFinder interface {
	FindRecipe(ctx context.Context, recipeID string) (domain.Recipe, error)
}

// ResolveRecipeList resolves ids concurrently through finder. Recipes keep the
// order of ids; ids whose lookup failed are listed in Unresolved with the
// failure reason.
func ResolveRecipeList(ctx context.Context, finder RecipeFinder, ids []string, limit int) domain.RecipeListResult {
	outcomes := fanout.Resolve(ctx, ids, limit, finder.FindRecipe)

	result := domain.RecipeListResult{
		Recipes:    fanout.Values(outcomes),
		Unresolved: []domain.UnresolvedRecipe{},
	}
	for _, failed := range fanout.Failures(outcomes) {
		result.Unresolved = append(result.Unresolved, domain.UnresolvedRecipe{
			RecipeID: failed.ID,
			Reason:   failed.Err.Error(),
		})
	}
	result.Total = len(result.Recipes)
	return result
}
