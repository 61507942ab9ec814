package favorite

import (
	"context"
	"os"
	"recipe-app/entities"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error)
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.FavoriteRecipe{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB) string {
	user := entities.User{Name: "Tester", Email: uuid.NewString() + "@example.com"}
	require.NoError(t, db.Create(&user).Error)
	t.Cleanup(func() {
		db.Unscoped().Where("user_id = ?", user.ID).Delete(&entities.FavoriteRecipe{})
		db.Unscoped().Delete(&user)
	})
	return user.ID.String()
}

func TestFavoriteRepositoryUpsertAndOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()
	userID := createUser(t, db)

	require.NoError(t, repo.AddFavorite(ctx, userID, "r1"))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.AddFavorite(ctx, userID, "r2"))
	time.Sleep(10 * time.Millisecond)
	// re-adding refreshes the timestamp instead of duplicating
	require.NoError(t, repo.AddFavorite(ctx, userID, "r1"))

	ids, err := repo.FavoriteRecipeIDs(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2"}, ids)

	isFavorite, err := repo.IsFavorite(ctx, userID, "r2")
	require.NoError(t, err)
	assert.True(t, isFavorite)

	require.NoError(t, repo.RemoveFavorite(ctx, userID, "r2"))
	require.NoError(t, repo.RemoveFavorite(ctx, userID, "r2"))

	isFavorite, err = repo.IsFavorite(ctx, userID, "r2")
	require.NoError(t, err)
	assert.False(t, isFavorite)
}
