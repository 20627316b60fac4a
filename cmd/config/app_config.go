package config

import (
	"Kitchen-Gateway/internal/api/handlers"
	"Kitchen-Gateway/internal/api/routes"
	"Kitchen-Gateway/internal/middleware"
	"Kitchen-Gateway/internal/session"
	"Kitchen-Gateway/internal/utils"
	"Kitchen-Gateway/pkg/cooking"
	"Kitchen-Gateway/pkg/kitchenapi"
	"Kitchen-Gateway/pkg/pantry"
	"Kitchen-Gateway/pkg/preference"
	"Kitchen-Gateway/pkg/receipt"
	"Kitchen-Gateway/pkg/recipe"
	"Kitchen-Gateway/pkg/shopping"
	"Kitchen-Gateway/pkg/summary"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func NewApp() (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// upstream clients and session store
	client := kitchenapi.NewClient(
		utils.GetConfig("UPSTREAM_API_URL"),
		utils.GetConfig("SCANNER_URL"),
		utils.GetConfig("UPSTREAM_API_TOKEN"),
	)
	sessions := session.NewStore(session.DefaultTTL)

	// Service
	pantryService := pantry.NewPantryService(client)
	recipeService := recipe.NewRecipeService(client, utils.GetConfig("CONTRIBUTOR_ID"))
	cookingService := cooking.NewCookingService(client)
	receiptService := receipt.NewReceiptService(client)
	preferenceService := preference.NewPreferenceService()
	shoppingService := shopping.NewShoppingService(pantryService)
	summaryService := summary.NewSummaryService(pantryService)

	// Handler
	pantryHandler := handlers.NewPantryHandler(pantryService, sessions, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, preferenceService, sessions, validator)
	cookingHandler := handlers.NewCookingHandler(cookingService, validator)
	receiptHandler := handlers.NewReceiptHandler(receiptService, validator)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)
	summaryHandler := handlers.NewSummaryHandler(summaryService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		PantryHandler:     pantryHandler,
		RecipeHandler:     recipeHandler,
		CookingHandler:    cookingHandler,
		ReceiptHandler:    receiptHandler,
		PreferenceHandler: preferenceHandler,
		ShoppingHandler:   shoppingHandler,
		SummaryHandler:    summaryHandler,
		Middleware:        middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
