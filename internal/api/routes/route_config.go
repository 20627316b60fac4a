package routes

import (
	"Kitchen-Gateway/internal/api/handlers"
	"Kitchen-Gateway/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	PantryHandler     handlers.PantryHandler
	RecipeHandler     handlers.RecipeHandler
	CookingHandler    handlers.CookingHandler
	ReceiptHandler    handlers.ReceiptHandler
	PreferenceHandler handlers.PreferenceHandler
	ShoppingHandler   handlers.ShoppingHandler
	SummaryHandler    handlers.SummaryHandler
	Middleware        middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Pantry()
	c.Recipes()
	c.Cooking()
	c.Receipts()
	c.Preferences()
	c.Shopping()
	c.Summary()
	c.GuestRoute()
}

func (c *Config) Pantry() {
	pantry := c.App.Group("/api/v1/pantry")
	{
		pantry.Get("", c.PantryHandler.GetPantry)
		pantry.Post("/items", c.PantryHandler.AddItems)
		pantry.Put("/items/:id", c.PantryHandler.UpdateItem)
		pantry.Delete("/items/:id", c.PantryHandler.DeleteItem)
		pantry.Post("/select", c.PantryHandler.ToggleItem)
		pantry.Post("/used", c.PantryHandler.MarkUsed)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Post("/suggest", c.RecipeHandler.SuggestRecipes)
		recipes.Get("/:index", c.RecipeHandler.GetRecipe)
	}
}

func (c *Config) Cooking() {
	c.App.Post("/api/v1/cooking/finish", c.CookingHandler.FinishCooking)
}

func (c *Config) Receipts() {
	c.App.Post("/api/v1/receipts/scan", c.ReceiptHandler.ScanReceipt)
}

func (c *Config) Preferences() {
	preferences := c.App.Group("/api/v1/preferences")
	{
		preferences.Get("", c.PreferenceHandler.GetPreferences)
		preferences.Put("", c.PreferenceHandler.SavePreferences)
	}
}

func (c *Config) Shopping() {
	shopping := c.App.Group("/api/v1/shopping")
	{
		shopping.Get("", c.ShoppingHandler.GetShoppingList)
		shopping.Post("/items", c.ShoppingHandler.AddShoppingItem)
		shopping.Patch("/items/:id", c.ShoppingHandler.CheckShoppingItem)
		shopping.Delete("/items/:id", c.ShoppingHandler.RemoveShoppingItem)
		shopping.Get("/recommendations", c.ShoppingHandler.GetRecommendations)
	}
}

func (c *Config) Summary() {
	c.App.Get("/api/v1/summary", c.SummaryHandler.GetSummary)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
