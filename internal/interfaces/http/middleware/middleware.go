package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func SetupMiddlewares(app *fiber.App, allowOrigins string) {
	// CORS configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))
}

// RouteGroups define os grupos de rotas da API
type RouteGroups struct {
	Leads fiber.Router
	Auth  fiber.Router
}

// SetupRouteGroups configura os grupos de rotas. O POST público de leads e
// o login ficam fora do middleware de autenticação; o restante do grupo de
// leads é protegido rota a rota.
func SetupRouteGroups(app *fiber.App) RouteGroups {
	return RouteGroups{
		Leads: app.Group("/api/leads"),
		Auth:  app.Group("/api/auth"),
	}
}
