package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/suryatek/quotation-api/internal/application/dto"
	"github.com/suryatek/quotation-api/internal/domain/entity"
	"github.com/suryatek/quotation-api/pkg/jwt"
	"github.com/suryatek/quotation-api/pkg/logger"
)

const (
	localsUserID = "user_id"
	localsRole   = "role"
)

// AuthMiddleware validates the bearer token and stores the caller identity
// in the request locals.
func AuthMiddleware(secret string, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "unauthorized",
				Message: "missing bearer token",
			})
		}
		userID, role, err := jwt.Parse(secret, strings.TrimPrefix(header, prefix))
		if err != nil {
			log.Warn().Err(err).Msg("token rejected")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "unauthorized",
				Message: "invalid or expired token",
			})
		}
		c.Locals(localsUserID, userID)
		c.Locals(localsRole, role)
		return c.Next()
	}
}

// RequireAdmin gates catalog mutations to admin accounts.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) != entity.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "forbidden",
				Message: "admin role required",
			})
		}
		return c.Next()
	}
}

// GetUserID returns the authenticated user id, empty when unauthenticated.
func GetUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(localsUserID).(string)
	return id
}

// GetRole returns the authenticated role, empty when unauthenticated.
func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals(localsRole).(string)
	return role
}
