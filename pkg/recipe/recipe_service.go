package recipe

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"recipe-app/domain"
	"recipe-app/internal/utils/storage"
	"strings"

	"github.com/google/uuid"
)

type (
	// FavoriteChecker answers favorite lookups for the session user.
	FavoriteChecker interface {
		IsFavorite(ctx context.Context, userID, recipeID string) (bool, error)
		FavoriteRecipeIDs(ctx context.Context, userID string) ([]string, error)
	}

	RecipeService interface {
		GetRecipe(ctx context.Context, recipeID string, userID string) (domain.Recipe, error)
		FindRecipe(ctx context.Context, recipeID string) (domain.Recipe, error)
		GetAllRecipes(ctx context.Context, userID string) ([]domain.Recipe, error)
		GetRecipesByCategory(ctx context.Context, category string, userID string) ([]domain.Recipe, error)
		GetRecipesByCuisine(ctx context.Context, cuisine string, userID string) ([]domain.Recipe, error)
		SearchRecipes(ctx context.Context, query domain.RecipeQuery, userID string) ([]domain.Recipe, error)
		SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (string, error)
		SeedSampleRecipes(ctx context.Context) (int, error)
		UploadRecipeImage(ctx context.Context, recipeID string, file *multipart.FileHeader) (domain.Recipe, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		favorites        FavoriteChecker
		s3               storage.AwsS3
	}
)

const imageFolder = "recipes"

func NewRecipeService(recipeRepository RecipeRepository, favorites FavoriteChecker, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		favorites:        favorites,
		s3:               s3,
	}
}

// FindRecipe looks up a recipe without any session state. It is the lookup
// used when resolving favorite and history lists.
func (s *recipeService) FindRecipe(ctx context.Context, recipeID string) (domain.Recipe, error) {
	if strings.TrimSpace(recipeID) == "" {
		return domain.Recipe{}, domain.ErrRecipeNotFound
	}
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return domain.Recipe{}, err
	}
	return s.withImageLink(recipe), nil
}

func (s *recipeService) GetRecipe(ctx context.Context, recipeID string, userID string) (domain.Recipe, error) {
	recipe, err := s.FindRecipe(ctx, recipeID)
	if err != nil {
		return domain.Recipe{}, err
	}

	if userID != "" && s.favorites != nil {
		isFavorite, err := s.favorites.IsFavorite(ctx, userID, recipeID)
		if err != nil {
			slog.WarnContext(ctx, "favorite lookup failed", "recipe_id", recipeID, "error", err)
		}
		recipe.IsFavorite = isFavorite && err == nil
	}
	return recipe, nil
}

func (s *recipeService) GetAllRecipes(ctx context.Context, userID string) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}

	if len(recipes) == 0 {
		if _, err := s.SeedSampleRecipes(ctx); err != nil {
			return nil, err
		}
		if recipes, err = s.recipeRepository.GetRecipes(ctx); err != nil {
			return nil, err
		}
	}

	return s.decorate(ctx, recipes, userID), nil
}

func (s *recipeService) GetRecipesByCategory(ctx context.Context, category string, userID string) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipesByField(ctx, fieldCategory, category)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, recipes, userID), nil
}

func (s *recipeService) GetRecipesByCuisine(ctx context.Context, cuisine string, userID string) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipesByField(ctx, fieldCuisine, cuisine)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, recipes, userID), nil
}

func (s *recipeService) SearchRecipes(ctx context.Context, query domain.RecipeQuery, userID string) ([]domain.Recipe, error) {
	recipes, err := s.GetAllRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}
	return FilterRecipes(recipes, query), nil
}

func (s *recipeService) SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (string, error) {
	recipe := req.ToRecipe()
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	recipe.UserID = userID
	if s.s3 != nil {
		// keep the stored value a bucket key when a public link is posted back
		if key := s.s3.GetObjectKeyFromLink(recipe.ImageURL); key != "" {
			recipe.ImageURL = key
		}
	}

	if err := s.recipeRepository.SaveRecipe(ctx, recipe); err != nil {
		return "", err
	}
	return recipe.ID, nil
}

// SeedSampleRecipes writes the sample catalogue when the collection is empty
// and reports how many recipes were written.
func (s *recipeService) SeedSampleRecipes(ctx context.Context) (int, error) {
	count, err := s.recipeRepository.CountRecipes(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	saved := 0
	for _, recipe := range SampleRecipes() {
		if err := s.recipeRepository.SaveRecipe(ctx, recipe); err != nil {
			slog.ErrorContext(ctx, "failed to save sample recipe", "name", recipe.Name, "error", err)
			continue
		}
		saved++
	}
	slog.InfoContext(ctx, "sample recipes seeded", "count", saved)
	return saved, nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, recipeID string, file *multipart.FileHeader) (domain.Recipe, error) {
	if s.s3 == nil {
		return domain.Recipe{}, errors.New("image storage not configured")
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return domain.Recipe{}, err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	objectKey, err := s.s3.UploadFile(recipeID+ext, file, imageFolder, storage.AllowImage...)
	if err != nil {
		if errors.Is(err, storage.ErrFileTypeNotAllowed) {
			return domain.Recipe{}, domain.ErrInvalidImageFormat
		}
		return domain.Recipe{}, domain.Remote(err)
	}

	if err := s.recipeRepository.UpdateImageURL(ctx, recipeID, objectKey); err != nil {
		return domain.Recipe{}, err
	}

	old := recipe.ImageURL
	if old != "" && old != objectKey && !isAbsoluteLink(old) {
		if err := s.s3.DeleteFile(old); err != nil {
			slog.WarnContext(ctx, "failed to delete previous recipe image", "object_key", old, "error", err)
		}
	}

	recipe.ImageURL = objectKey
	return s.withImageLink(recipe), nil
}

// decorate resolves image links and sets favorite flags for userID. A failed
// favorite lookup leaves every flag false.
func (s *recipeService) decorate(ctx context.Context, recipes []domain.Recipe, userID string) []domain.Recipe {
	favorites := map[string]bool{}
	if userID != "" && s.favorites != nil {
		ids, err := s.favorites.FavoriteRecipeIDs(ctx, userID)
		if err != nil {
			slog.WarnContext(ctx, "favorite ids lookup failed", "user_id", userID, "error", err)
		}
		for _, id := range ids {
			favorites[id] = true
		}
	}

	for i := range recipes {
		recipes[i] = s.withImageLink(recipes[i])
		recipes[i].IsFavorite = favorites[recipes[i].ID]
	}
	return recipes
}

func (s *recipeService) withImageLink(recipe domain.Recipe) domain.Recipe {
	if s.s3 != nil && recipe.ImageURL != "" && !isAbsoluteLink(recipe.ImageURL) {
		recipe.ImageURL = s.s3.GetPublicLinkKey(recipe.ImageURL)
	}
	return recipe
}

func isAbsoluteLink(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
