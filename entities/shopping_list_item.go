package entities

import (
	"github.com/google/uuid"
)

type ShoppingListItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Name     string    `json:"name"`
	Quantity string    `json:"quantity"`
	Unit     string    `json:"unit"`
	Checked  bool      `json:"checked"`
	RecipeID *string   `json:"recipe_id,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
