package handlers

import (
	"github.com/caions/lead/internal/application/usecases"
	"github.com/caions/lead/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authUseCase *usecases.AuthUseCase
}

func NewAuthHandler(authUseCase *usecases.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// Login autentica o administrador e emite o bearer token do painel.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input usecases.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Corpo da requisição inválido",
		})
	}

	token, user, err := h.authUseCase.Login(input)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Credenciais inválidas",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login realizado com sucesso",
		"data": fiber.Map{
			"access_token": token,
			"user":         user,
		},
	})
}

// Me devolve a identidade autenticada pelo token corrente.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Perfil do usuário",
		"data": fiber.Map{
			"user": c.Locals(middleware.AdminLocalKey),
		},
	})
}

// Validate confirma que o token apresentado ainda é válido.
func (h *AuthHandler) Validate(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Token válido",
		"data": fiber.Map{
			"user": c.Locals(middleware.AdminLocalKey),
		},
	})
}
