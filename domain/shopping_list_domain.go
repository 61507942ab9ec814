package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddShoppingItem    = "shopping item added successfully"
	MessageSuccessAddRecipeItems     = "recipe ingredients added to shopping list"
	MessageSuccessGetShoppingList    = "success get shopping list"
	MessageSuccessUpdateShoppingItem = "shopping item updated successfully"
	MessageSuccessRemoveShoppingItem = "shopping item removed successfully"

	MessageFailedAddShoppingItem    = "failed to add shopping item"
	MessageFailedAddRecipeItems     = "failed to add recipe ingredients"
	MessageFailedGetShoppingList    = "failed to get shopping list"
	MessageFailedUpdateShoppingItem = "failed to update shopping item"
	MessageFailedRemoveShoppingItem = "failed to remove shopping item"

	ErrShoppingItemNotFound = errors.New("shopping item not found")
)

const DefaultShoppingQuantity = "1"

type (
	AddShoppingItemRequest struct {
		Name     string `json:"name" validate:"required"`
		Quantity string `json:"quantity"`
		Unit     string `json:"unit"`
	}

	AddRecipeIngredientsRequest struct {
		RecipeID    string   `json:"recipe_id" validate:"required"`
		Ingredients []string `json:"ingredients" validate:"omitempty,dive,required"`
	}

	SetCheckedRequest struct {
		Checked bool `json:"checked"`
	}

	ShoppingListItemResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Quantity  string    `json:"quantity"`
		Unit      string    `json:"unit"`
		Checked   bool      `json:"checked"`
		RecipeID  *string   `json:"recipe_id,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
