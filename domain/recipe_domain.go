package domain

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessSaveRecipe      = "recipe saved successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"
	MessageSuccessAddFavorite     = "recipe added to favorites"
	MessageSuccessRemoveFavorite  = "recipe removed from favorites"
	MessageSuccessCheckFavorite   = "success check favorite"
	MessageSuccessGetFavorites    = "success get favorite recipes"
	MessageSuccessGetHistory      = "success get recipe history"
	MessageSuccessAddHistory      = "recipe added to history"
	MessageSuccessClearHistory    = "recipe history cleared"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedSaveRecipe      = "failed to save recipe"
	MessageFailedUploadImage     = "failed to upload recipe image"
	MessageFailedAddFavorite     = "failed to add favorite"
	MessageFailedRemoveFavorite  = "failed to remove favorite"
	MessageFailedCheckFavorite   = "failed to check favorite"
	MessageFailedGetFavorites    = "failed to get favorite recipes"
	MessageFailedGetHistory      = "failed to get recipe history"
	MessageFailedAddHistory      = "failed to add recipe to history"
	MessageFailedClearHistory    = "failed to clear recipe history"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrInvalidImageFormat = errors.New("invalid image format")
)

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"

	DefaultServings = 4
)

const (
	SortDefault = "default"
	SortRating  = "rating"
	SortTime    = "time"
	SortName    = "name"
)

type (
	// Recipe is a recipe's content and metadata. DifficultyLevel holds the
	// stored value only; use Difficulty for the effective label.
	Recipe struct {
		ID              string   `json:"id"`
		UserID          string   `json:"user_id,omitempty"`
		Name            string   `json:"name"`
		Description     string   `json:"description"`
		ImageURL        string   `json:"image_url,omitempty"`
		PrepTime        int      `json:"prep_time"`
		CookTime        int      `json:"cook_time"`
		Servings        int      `json:"servings"`
		Cuisine         string   `json:"cuisine,omitempty"`
		Category        string   `json:"category,omitempty"`
		DifficultyLevel string   `json:"difficulty_level,omitempty"`
		Rating          float64  `json:"rating"`
		Ingredients     []string `json:"ingredients"`
		Instructions    []string `json:"instructions"`
		DietaryTags     []string `json:"dietary_tags"`
		IsFavorite      bool     `json:"is_favorite"`
	}

	RecipeResponse struct {
		Recipe
		Difficulty         string `json:"difficulty"`
		TotalTime          int    `json:"total_time"`
		CookingTimeDisplay string `json:"cooking_time_display"`
	}

	SaveRecipeRequest struct {
		ID           string   `json:"id" validate:"omitempty"`
		Name         string   `json:"name" validate:"required"`
		Description  string   `json:"description"`
		ImageURL     string   `json:"image_url"`
		PrepTime     int      `json:"prep_time" validate:"min=0"`
		CookTime     int      `json:"cook_time" validate:"min=0"`
		Servings     int      `json:"servings" validate:"omitempty,min=1"`
		Cuisine      string   `json:"cuisine"`
		Category     string   `json:"category"`
		Difficulty   string   `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
		Rating       float64  `json:"rating" validate:"min=0,max=5"`
		Ingredients  []string `json:"ingredients"`
		Instructions []string `json:"instructions"`
		DietaryTags  []string `json:"dietary_tags"`
	}

	SaveRecipeResponse struct {
		ID string `json:"id"`
	}

	UploadRecipeImageRequest struct {
		RecipeID string                `json:"recipe_id" form:"recipe_id" validate:"required"`
		Image    *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	// RecipeQuery narrows and orders the catalogue. Zero values disable a filter.
	RecipeQuery struct {
		Search       string `query:"q"`
		Cuisine      string `query:"cuisine"`
		Difficulty   string `query:"difficulty"`
		Category     string `query:"category"`
		MaxTotalTime int    `query:"max_time"`
		Sort         string `query:"sort" validate:"omitempty,oneof=default rating time name"`
	}

	FavoriteRequest struct {
		RecipeID string `json:"recipe_id" validate:"required"`
	}

	HistoryRequest struct {
		RecipeID string `json:"recipe_id" validate:"required"`
	}

	FavoriteStatusResponse struct {
		RecipeID   string `json:"recipe_id"`
		IsFavorite bool   `json:"is_favorite"`
	}

	// UnresolvedRecipe reports an association whose recipe lookup failed.
	UnresolvedRecipe struct {
		RecipeID string `json:"recipe_id"`
		Reason   string `json:"reason"`
	}

	// RecipeListResult is the outcome of resolving a list of recipe ids.
	// Recipes keep the order of the ids; failed lookups land in Unresolved.
	RecipeListResult struct {
		Recipes    []Recipe           `json:"recipes"`
		Unresolved []UnresolvedRecipe `json:"unresolved"`
		Total      int                `json:"total"`
	}
)

// TotalTime is prep plus cook time in minutes.
func (r Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// Difficulty returns the stored difficulty, or derives one from the total time
// when none was stored.
func (r Recipe) Difficulty() string {
	if r.DifficultyLevel != "" {
		return r.DifficultyLevel
	}
	total := r.TotalTime()
	if total <= 30 {
		return DifficultyEasy
	}
	if total <= 60 {
		return DifficultyMedium
	}
	return DifficultyHard
}

func (r Recipe) CookingTimeDisplay() string {
	total := r.TotalTime()
	if total >= 60 {
		hours := total / 60
		minutes := total % 60
		if minutes > 0 {
			return fmt.Sprintf("%dh %dm", hours, minutes)
		}
		return fmt.Sprintf("%dh ", hours)
	}
	return fmt.Sprintf("%d min", total)
}

// ShareText renders the recipe as a plain-text card.
func (r Recipe) ShareText() string {
	var sb strings.Builder
	sb.WriteString(r.Name + "\n\n")
	sb.WriteString("Category: " + r.Category + "\n")
	sb.WriteString("Cuisine: " + r.Cuisine + "\n")
	sb.WriteString("Cooking Time: " + r.CookingTimeDisplay() + "\n")
	sb.WriteString("Difficulty: " + r.Difficulty() + "\n\n")

	sb.WriteString("Ingredients:\n")
	for _, ingredient := range r.Ingredients {
		sb.WriteString("- " + ingredient + "\n")
	}

	if len(r.Instructions) > 0 {
		sb.WriteString("\nInstructions:\n")
		for i, step := range r.Instructions {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
		}
	}
	return sb.String()
}

func NewRecipeResponse(r Recipe) RecipeResponse {
	return RecipeResponse{
		Recipe:             r,
		Difficulty:         r.Difficulty(),
		TotalTime:          r.TotalTime(),
		CookingTimeDisplay: r.CookingTimeDisplay(),
	}
}

func NewRecipeResponses(recipes []Recipe) []RecipeResponse {
	res := make([]RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, NewRecipeResponse(r))
	}
	return res
}

// ToRecipe converts a save request into a Recipe, applying the servings default.
func (req SaveRecipeRequest) ToRecipe() Recipe {
	servings := req.Servings
	if servings == 0 {
		servings = DefaultServings
	}
	return Recipe{
		ID:              req.ID,
		Name:            req.Name,
		Description:     req.Description,
		ImageURL:        req.ImageURL,
		PrepTime:        req.PrepTime,
		CookTime:        req.CookTime,
		Servings:        servings,
		Cuisine:         req.Cuisine,
		Category:        req.Category,
		DifficultyLevel: req.Difficulty,
		Rating:          req.Rating,
		Ingredients:     nonNil(req.Ingredients),
		Instructions:    nonNil(req.Instructions),
		DietaryTags:     nonNil(req.DietaryTags),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
