package favorite

import (
	"context"
	"errors"
	"recipe-app/domain"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFavoriteRepository struct {
	mu    sync.Mutex
	order map[string][]string
	err   error
}

func newFakeFavoriteRepository() *fakeFavoriteRepository {
	return &fakeFavoriteRepository{order: map[string][]string{}}
}

func (f *fakeFavoriteRepository) AddFavorite(ctx context.Context, userID, recipeID string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.order[userID] = append([]string{recipeID}, without(f.order[userID], recipeID)...)
	return nil
}

func (f *fakeFavoriteRepository) RemoveFavorite(ctx context.Context, userID, recipeID string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.order[userID] = without(f.order[userID], recipeID)
	return nil
}

func (f *fakeFavoriteRepository) IsFavorite(ctx context.Context, userID, recipeID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range f.order[userID] {
		if id == recipeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFavoriteRepository) FavoriteRecipeIDs(ctx context.Context, userID string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.order[userID]...), nil
}

func without(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

type fakeFinder map[string]domain.Recipe

func (f fakeFinder) FindRecipe(ctx context.Context, recipeID string) (domain.Recipe, error) {
	r, ok := f[recipeID]
	if !ok {
		return domain.Recipe{}, domain.ErrRecipeNotFound
	}
	return r, nil
}

func catalogue() fakeFinder {
	return fakeFinder{
		"r1": {ID: "r1", Name: "Carbonara"},
		"r2": {ID: "r2", Name: "Stir Fry"},
		"r3": {ID: "r3", Name: "Cookies"},
	}
}

func TestFavoritesRequireSession(t *testing.T) {
	svc := NewFavoriteService(newFakeFavoriteRepository(), catalogue(), 0)
	ctx := context.Background()

	assert.ErrorIs(t, svc.AddFavorite(ctx, domain.FavoriteRequest{RecipeID: "r1"}, ""), domain.ErrNotAuthenticated)
	assert.ErrorIs(t, svc.RemoveFavorite(ctx, "r1", ""), domain.ErrNotAuthenticated)

	_, err := svc.GetFavorites(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	isFavorite, err := svc.IsFavorite(ctx, "r1", "")
	require.NoError(t, err)
	assert.False(t, isFavorite)
}

func TestAddFavoriteIsIdempotent(t *testing.T) {
	repo := newFakeFavoriteRepository()
	svc := NewFavoriteService(repo, catalogue(), 0)
	ctx := context.Background()

	require.NoError(t, svc.AddFavorite(ctx, domain.FavoriteRequest{RecipeID: "r1"}, "u1"))
	require.NoError(t, svc.AddFavorite(ctx, domain.FavoriteRequest{RecipeID: "r1"}, "u1"))

	result, err := svc.GetFavorites(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)

	isFavorite, err := svc.IsFavorite(ctx, "r1", "u1")
	require.NoError(t, err)
	assert.True(t, isFavorite)
}

func TestAddFavoriteUnknownRecipe(t *testing.T) {
	svc := NewFavoriteService(newFakeFavoriteRepository(), catalogue(), 0)

	err := svc.AddFavorite(context.Background(), domain.FavoriteRequest{RecipeID: "nope"}, "u1")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRemoveFavorite(t *testing.T) {
	svc := NewFavoriteService(newFakeFavoriteRepository(), catalogue(), 0)
	ctx := context.Background()

	require.NoError(t, svc.AddFavorite(ctx, domain.FavoriteRequest{RecipeID: "r2"}, "u1"))
	require.NoError(t, svc.RemoveFavorite(ctx, "r2", "u1"))
	// removing again is fine
	require.NoError(t, svc.RemoveFavorite(ctx, "r2", "u1"))

	isFavorite, err := svc.IsFavorite(ctx, "r2", "u1")
	require.NoError(t, err)
	assert.False(t, isFavorite)
}

func TestGetFavoritesNewestFirstAndMarked(t *testing.T) {
	svc := NewFavoriteService(newFakeFavoriteRepository(), catalogue(), 2)
	ctx := context.Background()

	for _, id := range []string{"r1", "r2", "r3"} {
		require.NoError(t, svc.AddFavorite(ctx, domain.FavoriteRequest{RecipeID: id}, "u1"))
	}

	result, err := svc.GetFavorites(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, result.Recipes, 3)
	assert.Equal(t, "r3", result.Recipes[0].ID)
	assert.Equal(t, "r2", result.Recipes[1].ID)
	assert.Equal(t, "r1", result.Recipes[2].ID)
	for _, r := range result.Recipes {
		assert.True(t, r.IsFavorite)
	}
	assert.Empty(t, result.Unresolved)
}

func TestGetFavoritesReportsUnresolved(t *testing.T) {
	repo := newFakeFavoriteRepository()
	finder := catalogue()
	svc := NewFavoriteService(repo, finder, 0)
	ctx := context.Background()

	require.NoError(t, svc.AddFavorite(ctx, domain.FavoriteRequest{RecipeID: "r1"}, "u1"))
	require.NoError(t, svc.AddFavorite(ctx, domain.FavoriteRequest{RecipeID: "r2"}, "u1"))
	delete(finder, "r2")

	result, err := svc.GetFavorites(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, result.Recipes, 1)
	assert.Equal(t, "r1", result.Recipes[0].ID)
	require.Len(t, result.Unresolved, 1)
	assert.Equal(t, "r2", result.Unresolved[0].RecipeID)
	assert.Equal(t, domain.ErrRecipeNotFound.Error(), result.Unresolved[0].Reason)
}

func TestGetFavoritesEmpty(t *testing.T) {
	svc := NewFavoriteService(newFakeFavoriteRepository(), catalogue(), 0)

	result, err := svc.GetFavorites(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, result.Recipes)
	assert.Empty(t, result.Recipes)
	assert.Equal(t, 0, result.Total)
}

func TestGetFavoritesRemoteFailure(t *testing.T) {
	repo := newFakeFavoriteRepository()
	repo.err = domain.Remote(errors.New("connection reset"))
	svc := NewFavoriteService(repo, catalogue(), 0)

	_, err := svc.GetFavorites(context.Background(), "u1")
	assert.ErrorIs(t, err, domain.ErrRemoteFailure)
}
