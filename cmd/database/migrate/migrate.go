package migration

import (
	"log/slog"
	"recipe-app/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";").Error; err != nil {
		slog.Error("error creating uuid-ossp extension", "error", err)
		return err
	}

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		slog.Error("error migrating user table", "error", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FavoriteRecipe{}); err != nil {
		slog.Error("error migrating favorite recipe table", "error", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeView{}); err != nil {
		slog.Error("error migrating recipe view table", "error", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShoppingListItem{}); err != nil {
		slog.Error("error migrating shopping list table", "error", err)
		return err
	}

	slog.Info("database migration complete")
	return nil
}
