package main

import (
	"log"
	"time"

	"github.com/caions/lead/internal/infrastructure/config"
	"github.com/caions/lead/internal/infrastructure/database"
	"github.com/caions/lead/internal/interfaces/http/middleware"
	"github.com/caions/lead/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	// Resolve configuration once at startup
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Error loading configuration: %v", err)
	}

	// Initialize database
	db, err := database.SetupDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Error setting up database: %v", err)
	}

	// Configure Fiber for better performance
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app, cfg.AllowOrigins)

	// Setup routes
	routes.SetupRoutes(app, db, cfg)

	// Start server
	log.Printf("🚀 Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
