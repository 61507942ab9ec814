package history

import (
	"context"
	"recipe-app/domain"
	"recipe-app/entities"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	HistoryRepository interface {
		AddView(ctx context.Context, userID, recipeID string) error
		// RecentRecipeIDs returns each viewed recipe id once, ordered by its
		// latest view, newest first.
		RecentRecipeIDs(ctx context.Context, userID string, limit int) ([]string, error)
		ClearHistory(ctx context.Context, userID string) error
	}

	historyRepository struct {
		db *gorm.DB
	}
)

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) AddView(ctx context.Context, userID, recipeID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrNotAuthenticated
	}

	view := entities.RecipeView{
		UserID:   userUUID,
		RecipeID: recipeID,
		ViewedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&view).Error; err != nil {
		return domain.Remote(err)
	}
	return nil
}

func (r *historyRepository) RecentRecipeIDs(ctx context.Context, userID string, limit int) ([]string, error) {
	var ids []string
	query := r.db.WithContext(ctx).
		Model(&entities.RecipeView{}).
		Where("user_id = ?", userID).
		Group("recipe_id").
		Order("MAX(viewed_at) DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Pluck("recipe_id", &ids).Error; err != nil {
		return nil, domain.Remote(err)
	}
	return ids, nil
}

func (r *historyRepository) ClearHistory(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entities.RecipeView{}).Error; err != nil {
		return domain.Remote(err)
	}
	return nil
}
