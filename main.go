package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/pithiyakeval/shopify-ai-analytics/agent"
	"github.com/pithiyakeval/shopify-ai-analytics/config"
	"github.com/pithiyakeval/shopify-ai-analytics/database"
	"github.com/pithiyakeval/shopify-ai-analytics/handlers"
	"github.com/pithiyakeval/shopify-ai-analytics/llm"
	"github.com/pithiyakeval/shopify-ai-analytics/middleware"
	"github.com/pithiyakeval/shopify-ai-analytics/query"
	"github.com/pithiyakeval/shopify-ai-analytics/routes"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	cfg := config.Load()

	gateway, err := llm.New(cfg)
	if err != nil {
		log.Fatalf("LLM gateway setup failed: %v", err)
	}
	log.Printf("LLM backend: %s", cfg.LLMBackend)

	var executor query.Executor = query.StubExecutor{}
	if cfg.Executor == "postgres" {
		if cfg.DatabaseURL == "" {
			log.Fatal("DATABASE_URL is required for the postgres executor")
		}
		database.Connect(cfg.DatabaseURL)
		defer database.Close()
		executor = query.NewPostgresExecutor(database.GetDB())
	}
	log.Printf("Query executor: %s", cfg.Executor)

	handlers.SetPipeline(agent.New(gateway, executor))

	app := fiber.New()

	app.Use(cors.New())
	app.Use(recover.New())
	app.Use(middleware.RequestLogger)

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":" + cfg.Port))
}
