package middleware

import (
	"strings"

	"github.com/caions/lead/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

// AdminLocalKey é a chave de contexto com a identidade autenticada.
const AdminLocalKey = "admin"

// NewAuthMiddleware protege rotas administrativas exigindo um bearer token
// válido no cabeçalho Authorization.
func NewAuthMiddleware(authUseCase *usecases.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Token inválido",
			})
		}

		user, err := authUseCase.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Token inválido",
			})
		}

		c.Locals(AdminLocalKey, user)
		return c.Next()
	}
}
