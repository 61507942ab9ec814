// File: entities/recipe.go
package entities

import (
	"github.com/google/uuid"
	"time"
)

// Recipe content lives in the document store; these rows only associate
// users with recipe ids.

type FavoriteRecipe struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_favorite_user_recipe" json:"user_id"`
	RecipeID  string    `gorm:"uniqueIndex:idx_favorite_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}

type RecipeView struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;index:idx_view_user_time" json:"user_id"`
	RecipeID string    `json:"recipe_id"`
	ViewedAt time.Time `gorm:"type:timestamp;index:idx_view_user_time" json:"viewed_at"`

	User *User `gorm:"foreignKey:UserID"`
}
