package main

import (
	"Kitchen-Gateway/cmd/config"
	"Kitchen-Gateway/internal/utils"
	"log"
)

func main() {
	utils.LoadConfig()

	app, err := config.NewApp()
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
