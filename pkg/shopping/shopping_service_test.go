package shopping

import (
	"context"
	"recipe-app/domain"
	"recipe-app/entities"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShoppingRepository struct {
	items []*entities.ShoppingListItem
}

func (f *fakeShoppingRepository) CreateItems(ctx context.Context, items []*entities.ShoppingListItem) error {
	for _, item := range items {
		item.CreatedAt = time.Now()
		f.items = append(f.items, item)
	}
	return nil
}

func (f *fakeShoppingRepository) GetItems(ctx context.Context, userID string) ([]*entities.ShoppingListItem, error) {
	var out []*entities.ShoppingListItem
	for _, item := range f.items {
		if item.UserID.String() == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeShoppingRepository) GetItemByID(ctx context.Context, userID, itemID string) (*entities.ShoppingListItem, error) {
	for _, item := range f.items {
		if item.ID.String() == itemID && item.UserID.String() == userID {
			return item, nil
		}
	}
	return nil, domain.ErrShoppingItemNotFound
}

func (f *fakeShoppingRepository) UpdateChecked(ctx context.Context, userID, itemID string, checked bool) error {
	item, err := f.GetItemByID(ctx, userID, itemID)
	if err != nil {
		return err
	}
	item.Checked = checked
	return nil
}

func (f *fakeShoppingRepository) DeleteItem(ctx context.Context, userID, itemID string) error {
	for i, item := range f.items {
		if item.ID.String() == itemID && item.UserID.String() == userID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrShoppingItemNotFound
}

type fakeFinder map[string]domain.Recipe

func (f fakeFinder) FindRecipe(ctx context.Context, recipeID string) (domain.Recipe, error) {
	r, ok := f[recipeID]
	if !ok {
		return domain.Recipe{}, domain.ErrRecipeNotFound
	}
	return r, nil
}

func newTestShoppingService() (ShoppingService, *fakeShoppingRepository) {
	repo := &fakeShoppingRepository{}
	finder := fakeFinder{
		"r1": {ID: "r1", Name: "Pancakes", Ingredients: []string{"2 eggs", "200g flour", " ", "300ml milk"}},
	}
	return NewShoppingService(repo, finder), repo
}

func TestShoppingRequiresSession(t *testing.T) {
	svc, _ := newTestShoppingService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, domain.AddShoppingItemRequest{Name: "Milk"}, "")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	_, err = svc.AddFromRecipe(ctx, domain.AddRecipeIngredientsRequest{RecipeID: "r1"}, "")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	_, err = svc.ListItems(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	_, err = svc.SetChecked(ctx, uuid.NewString(), domain.SetCheckedRequest{Checked: true}, "")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	assert.ErrorIs(t, svc.RemoveItem(ctx, uuid.NewString(), ""), domain.ErrNotAuthenticated)
}

func TestAddItemDefaultsQuantity(t *testing.T) {
	svc, _ := newTestShoppingService()
	userID := uuid.NewString()

	item, err := svc.AddItem(context.Background(), domain.AddShoppingItemRequest{Name: " Milk "}, userID)
	require.NoError(t, err)
	assert.Equal(t, "Milk", item.Name)
	assert.Equal(t, "1", item.Quantity)
	assert.Nil(t, item.RecipeID)

	item, err = svc.AddItem(context.Background(), domain.AddShoppingItemRequest{Name: "Flour", Quantity: "2", Unit: "kg"}, userID)
	require.NoError(t, err)
	assert.Equal(t, "2", item.Quantity)
	assert.Equal(t, "kg", item.Unit)
}

func TestAddFromRecipeAllIngredients(t *testing.T) {
	svc, _ := newTestShoppingService()
	userID := uuid.NewString()

	items, err := svc.AddFromRecipe(context.Background(), domain.AddRecipeIngredientsRequest{RecipeID: "r1"}, userID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, item := range items {
		assert.Equal(t, "1", item.Quantity)
		assert.Equal(t, "", item.Unit)
		require.NotNil(t, item.RecipeID)
		assert.Equal(t, "r1", *item.RecipeID)
	}
	assert.Equal(t, "2 eggs", items[0].Name)
}

func TestAddFromRecipeSelectedIngredients(t *testing.T) {
	svc, _ := newTestShoppingService()

	items, err := svc.AddFromRecipe(context.Background(), domain.AddRecipeIngredientsRequest{
		RecipeID:    "r1",
		Ingredients: []string{"300ml milk"},
	}, uuid.NewString())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "300ml milk", items[0].Name)
}

func TestAddFromRecipeUnknownRecipe(t *testing.T) {
	svc, _ := newTestShoppingService()

	_, err := svc.AddFromRecipe(context.Background(), domain.AddRecipeIngredientsRequest{RecipeID: "nope"}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestSetCheckedAndRemove(t *testing.T) {
	svc, _ := newTestShoppingService()
	ctx := context.Background()
	owner := uuid.NewString()
	other := uuid.NewString()

	item, err := svc.AddItem(ctx, domain.AddShoppingItemRequest{Name: "Eggs"}, owner)
	require.NoError(t, err)

	_, err = svc.SetChecked(ctx, item.ID, domain.SetCheckedRequest{Checked: true}, other)
	assert.ErrorIs(t, err, domain.ErrShoppingItemNotFound)

	updated, err := svc.SetChecked(ctx, item.ID, domain.SetCheckedRequest{Checked: true}, owner)
	require.NoError(t, err)
	assert.True(t, updated.Checked)

	assert.ErrorIs(t, svc.RemoveItem(ctx, item.ID, other), domain.ErrShoppingItemNotFound)
	assert.ErrorIs(t, svc.RemoveItem(ctx, "not-a-uuid", owner), domain.ErrShoppingItemNotFound)
	require.NoError(t, svc.RemoveItem(ctx, item.ID, owner))

	items, err := svc.ListItems(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, items)
}
