package favorite

import (
	"context"
	"recipe-app/domain"
	"recipe-app/entities"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	FavoriteRepository interface {
		AddFavorite(ctx context.Context, userID, recipeID string) error
		RemoveFavorite(ctx context.Context, userID, recipeID string) error
		IsFavorite(ctx context.Context, userID, recipeID string) (bool, error)
		FavoriteRecipeIDs(ctx context.Context, userID string) ([]string, error)
	}

	favoriteRepository struct {
		db *gorm.DB
	}
)

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// AddFavorite upserts the association; adding it again refreshes created_at.
func (r *favoriteRepository) AddFavorite(ctx context.Context, userID, recipeID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrNotAuthenticated
	}

	favorite := entities.FavoriteRecipe{
		UserID:    userUUID,
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"created_at"}),
		}).
		Create(&favorite).Error
	if err != nil {
		return domain.Remote(err)
	}
	return nil
}

func (r *favoriteRepository) RemoveFavorite(ctx context.Context, userID, recipeID string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.FavoriteRecipe{}).Error
	if err != nil {
		return domain.Remote(err)
	}
	return nil
}

func (r *favoriteRepository) IsFavorite(ctx context.Context, userID, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.FavoriteRecipe{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, domain.Remote(err)
	}
	return count > 0, nil
}

// FavoriteRecipeIDs lists the user's favorite recipe ids, newest first.
func (r *favoriteRepository) FavoriteRecipeIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&entities.FavoriteRecipe{}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Pluck("recipe_id", &ids).Error; err != nil {
		return nil, domain.Remote(err)
	}
	return ids, nil
}
