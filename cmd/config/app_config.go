package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"recipe-app/internal/api/handlers"
	"recipe-app/internal/api/routes"
	"recipe-app/internal/middleware"
	"recipe-app/internal/utils"
	"recipe-app/internal/utils/kvstore"
	"recipe-app/internal/utils/mailing"
	"recipe-app/internal/utils/storage"
	"recipe-app/pkg/favorite"
	"recipe-app/pkg/history"
	"recipe-app/pkg/jwt"
	"recipe-app/pkg/preferences"
	"recipe-app/pkg/recipe"
	"recipe-app/pkg/shopping"
	"recipe-app/pkg/user"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

const defaultFanoutLimit = 8

func NewApp(db *gorm.DB, documents *mongo.Database, store kvstore.Store, log *slog.Logger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware(store)
	validator := utils.Validate

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("open access log: %w", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer(mailing.LoadMailConfig())
	fanoutLimit := utils.GetConfigInt("FANOUT_LIMIT", defaultFanoutLimit)

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(documents)
	favoriteRepository := favorite.NewFavoriteRepository(db)
	historyRepository := history.NewHistoryRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	userService := user.NewUserService(userRepository, jwtService, store, mailer)
	recipeService := recipe.NewRecipeService(recipeRepository, favoriteRepository, s3)
	favoriteService := favorite.NewFavoriteService(favoriteRepository, recipeService, fanoutLimit)
	historyService := history.NewHistoryService(historyRepository, recipeService, fanoutLimit)
	localLog := history.NewLocalLog(store, log)
	shoppingService := shopping.NewShoppingService(shoppingRepository, recipeService)
	preferencesService := preferences.NewPreferencesService(store)

	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := recipeService.SeedSampleRecipes(seedCtx); err != nil {
		log.Warn("seeding sample recipes failed", "error", err)
	}

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, validator)
	historyHandler := handlers.NewHistoryHandler(historyService, localLog, recipeService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)
	preferencesHandler := handlers.NewPreferencesHandler(preferencesService)

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		RecipeHandler:      recipeHandler,
		FavoriteHandler:    favoriteHandler,
		HistoryHandler:     historyHandler,
		ShoppingHandler:    shoppingHandler,
		PreferencesHandler: preferencesHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
