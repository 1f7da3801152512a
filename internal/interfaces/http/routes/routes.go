package routes

import (
	"github.com/caions/lead/internal/application/usecases"
	"github.com/caions/lead/internal/domain/repositories"
	"github.com/caions/lead/internal/infrastructure/cache"
	"github.com/caions/lead/internal/infrastructure/config"
	"github.com/caions/lead/internal/interfaces/http/handlers"
	"github.com/caions/lead/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	app.Use(middleware.PerformanceLogger())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Repositories
	leadRepo := repositories.NewLeadRepository(db)

	// Use Cases
	leadUseCase := usecases.NewLeadUseCase(leadRepo)
	exportUseCase := usecases.NewExportUseCase(leadRepo)
	authUseCase := usecases.NewAuthUseCase(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret, cfg.JWTExpiresIn)

	// Handlers
	exportCache := cache.New()
	leadHandler := handlers.NewLeadHandler(leadUseCase, exportUseCase, exportCache)
	authHandler := handlers.NewAuthHandler(authUseCase)

	authRequired := middleware.NewAuthMiddleware(authUseCase)

	// Routes
	groups := middleware.SetupRouteGroups(app)

	// Submissão pública do formulário
	groups.Leads.Post("/", leadHandler.CreateLead)

	// Painel administrativo (bearer token). A rota de export precisa vir
	// antes de :id para não ser capturada pelo parâmetro.
	groups.Leads.Get("/export/csv", authRequired, leadHandler.ExportCSV)
	groups.Leads.Get("/", authRequired, leadHandler.GetLeads)
	groups.Leads.Get("/:id", authRequired, leadHandler.GetLead)
	groups.Leads.Patch("/:id", authRequired, leadHandler.UpdateLead)
	groups.Leads.Delete("/:id", authRequired, leadHandler.DeleteLead)

	// Autenticação
	groups.Auth.Post("/login", authHandler.Login)
	groups.Auth.Get("/me", authRequired, authHandler.Me)
	groups.Auth.Post("/validate", authRequired, authHandler.Validate)
}
