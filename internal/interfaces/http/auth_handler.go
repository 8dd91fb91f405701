package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/suryatek/quotation-api/internal/application/auth"
	"github.com/suryatek/quotation-api/internal/application/dto"
)

// AuthHandler exposes register and login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler wires the handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register POST /api/v1/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "invalid_input",
			Message: "invalid request body",
		})
	}
	user, err := h.uc.RegisterUser(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "invalid_input",
			Message: "invalid request body",
		})
	}
	resp, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
