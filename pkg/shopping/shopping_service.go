package shopping

import (
	"context"
	"recipe-app/domain"
	"recipe-app/entities"
	"recipe-app/pkg/recipe"
	"strings"

	"github.com/google/uuid"
)

type (
	ShoppingService interface {
		AddItem(ctx context.Context, req domain.AddShoppingItemRequest, userID string) (domain.ShoppingListItemResponse, error)
		AddFromRecipe(ctx context.Context, req domain.AddRecipeIngredientsRequest, userID string) ([]domain.ShoppingListItemResponse, error)
		ListItems(ctx context.Context, userID string) ([]domain.ShoppingListItemResponse, error)
		SetChecked(ctx context.Context, itemID string, req domain.SetCheckedRequest, userID string) (domain.ShoppingListItemResponse, error)
		RemoveItem(ctx context.Context, itemID string, userID string) error
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
		recipes            recipe.RecipeFinder
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository, recipes recipe.RecipeFinder) ShoppingService {
	return &shoppingService{
		shoppingRepository: shoppingRepository,
		recipes:            recipes,
	}
}

func (s *shoppingService) AddItem(ctx context.Context, req domain.AddShoppingItemRequest, userID string) (domain.ShoppingListItemResponse, error) {
	owner, err := parseOwner(userID)
	if err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	quantity := strings.TrimSpace(req.Quantity)
	if quantity == "" {
		quantity = domain.DefaultShoppingQuantity
	}
	item := &entities.ShoppingListItem{
		ID:       uuid.New(),
		UserID:   owner,
		Name:     strings.TrimSpace(req.Name),
		Quantity: quantity,
		Unit:     strings.TrimSpace(req.Unit),
	}
	if err := s.shoppingRepository.CreateItems(ctx, []*entities.ShoppingListItem{item}); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}
	return toResponse(item), nil
}

// AddFromRecipe adds the chosen ingredients of a recipe, or all of them when
// none are chosen.
func (s *shoppingService) AddFromRecipe(ctx context.Context, req domain.AddRecipeIngredientsRequest, userID string) ([]domain.ShoppingListItemResponse, error) {
	owner, err := parseOwner(userID)
	if err != nil {
		return nil, err
	}

	found, err := s.recipes.FindRecipe(ctx, req.RecipeID)
	if err != nil {
		return nil, err
	}

	ingredients := req.Ingredients
	if len(ingredients) == 0 {
		ingredients = found.Ingredients
	}

	recipeID := found.ID
	items := make([]*entities.ShoppingListItem, 0, len(ingredients))
	for _, ingredient := range ingredients {
		name := strings.TrimSpace(ingredient)
		if name == "" {
			continue
		}
		items = append(items, &entities.ShoppingListItem{
			ID:       uuid.New(),
			UserID:   owner,
			Name:     name,
			Quantity: domain.DefaultShoppingQuantity,
			RecipeID: &recipeID,
		})
	}

	if err := s.shoppingRepository.CreateItems(ctx, items); err != nil {
		return nil, err
	}
	return toResponses(items), nil
}

func (s *shoppingService) ListItems(ctx context.Context, userID string) ([]domain.ShoppingListItemResponse, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	items, err := s.shoppingRepository.GetItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponses(items), nil
}

func (s *shoppingService) SetChecked(ctx context.Context, itemID string, req domain.SetCheckedRequest, userID string) (domain.ShoppingListItemResponse, error) {
	if userID == "" {
		return domain.ShoppingListItemResponse{}, domain.ErrNotAuthenticated
	}
	if _, err := uuid.Parse(itemID); err != nil {
		return domain.ShoppingListItemResponse{}, domain.ErrShoppingItemNotFound
	}

	if err := s.shoppingRepository.UpdateChecked(ctx, userID, itemID, req.Checked); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}
	item, err := s.shoppingRepository.GetItemByID(ctx, userID, itemID)
	if err != nil {
		return domain.ShoppingListItemResponse{}, err
	}
	return toResponse(item), nil
}

func (s *shoppingService) RemoveItem(ctx context.Context, itemID string, userID string) error {
	if userID == "" {
		return domain.ErrNotAuthenticated
	}
	if _, err := uuid.Parse(itemID); err != nil {
		return domain.ErrShoppingItemNotFound
	}
	return s.shoppingRepository.DeleteItem(ctx, userID, itemID)
}

func parseOwner(userID string) (uuid.UUID, error) {
	if userID == "" {
		return uuid.Nil, domain.ErrNotAuthenticated
	}
	owner, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, domain.ErrNotAuthenticated
	}
	return owner, nil
}

func toResponse(item *entities.ShoppingListItem) domain.ShoppingListItemResponse {
	return domain.ShoppingListItemResponse{
		ID:        item.ID.String(),
		Name:      item.Name,
		Quantity:  item.Quantity,
		Unit:      item.Unit,
		Checked:   item.Checked,
		RecipeID:  item.RecipeID,
		CreatedAt: item.CreatedAt,
	}
}

func toResponses(items []*entities.ShoppingListItem) []domain.ShoppingListItemResponse {
	res := make([]domain.ShoppingListItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, toResponse(item))
	}
	return res
}
