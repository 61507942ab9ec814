package routes

import (
	"recipe-app/internal/api/handlers"
	"recipe-app/internal/middleware"
	"recipe-app/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	RecipeHandler      handlers.RecipeHandler
	FavoriteHandler    handlers.FavoriteHandler
	HistoryHandler     handlers.HistoryHandler
	ShoppingHandler    handlers.ShoppingHandler
	PreferencesHandler handlers.PreferencesHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.Recipes()
	c.Favorites()
	c.History()
	c.ShoppingList()
	c.Devices()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/logout", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Logout)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.OptionalAuthMiddleware(c.JWTService))

	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/category/:category", c.RecipeHandler.GetRecipesByCategory)
	recipes.Get("/cuisine/:cuisine", c.RecipeHandler.GetRecipesByCuisine)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Get("/:id/share", c.RecipeHandler.ShareRecipe)

	recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.SaveRecipe)
	recipes.Post("/image", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UploadRecipeImage)
}

// Favorites and History accept anonymous requests; the services decide what
// an anonymous caller may see.
func (c *Config) Favorites() {
	favorites := c.App.Group("/api/v1/favorites", c.Middleware.OptionalAuthMiddleware(c.JWTService))

	favorites.Get("", c.FavoriteHandler.GetFavorites)
	favorites.Post("", c.FavoriteHandler.AddFavorite)
	favorites.Get("/:recipe_id", c.FavoriteHandler.CheckFavorite)
	favorites.Delete("/:recipe_id", c.FavoriteHandler.RemoveFavorite)
}

func (c *Config) History() {
	history := c.App.Group("/api/v1/history", c.Middleware.OptionalAuthMiddleware(c.JWTService))

	history.Get("", c.HistoryHandler.GetHistory)
	history.Post("", c.HistoryHandler.AddToHistory)
	history.Delete("", c.HistoryHandler.ClearHistory)
}

func (c *Config) ShoppingList() {
	shopping := c.App.Group("/api/v1/shopping-list", c.Middleware.AuthMiddleware(c.JWTService))

	shopping.Get("", c.ShoppingHandler.GetItems)
	shopping.Post("", c.ShoppingHandler.AddItem)
	shopping.Post("/from-recipe", c.ShoppingHandler.AddFromRecipe)
	shopping.Patch("/:id", c.ShoppingHandler.SetChecked)
	shopping.Delete("/:id", c.ShoppingHandler.RemoveItem)
}

func (c *Config) Devices() {
	devices := c.App.Group("/api/v1/devices/:device_id")

	devices.Get("/history", c.HistoryHandler.GetDeviceHistory)
	devices.Post("/history", c.HistoryHandler.AddToDeviceHistory)
	devices.Delete("/history", c.HistoryHandler.ClearDeviceHistory)

	devices.Get("/settings", c.PreferencesHandler.GetSettings)
	devices.Put("/settings", c.PreferencesHandler.UpdateSettings)

	devices.Get("/notes", c.PreferencesHandler.GetNotes)
	devices.Put("/notes", c.PreferencesHandler.SaveNotes)
}
