package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/suryatek/quotation-api/internal/application/dto"
	"github.com/suryatek/quotation-api/internal/domain"
)

// respondError maps domain sentinels to HTTP statuses and stable error codes.
// Unknown errors never leak details to the client.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMalformedItems):
		return respond(c, fiber.StatusBadRequest, "malformed_items", err)
	case errors.Is(err, domain.ErrNoItems):
		return respond(c, fiber.StatusBadRequest, "no_items", err)
	case errors.Is(err, domain.ErrItemNameRequired):
		return respond(c, fiber.StatusBadRequest, "item_name_required", err)
	case errors.Is(err, domain.ErrCustomerNameRequired):
		return respond(c, fiber.StatusBadRequest, "customer_name_required", err)
	case errors.Is(err, domain.ErrInvalidInput):
		return respond(c, fiber.StatusBadRequest, "invalid_input", err)
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return respond(c, fiber.StatusNotFound, "not_found", err)
	case errors.Is(err, domain.ErrUnauthorized):
		return respond(c, fiber.StatusUnauthorized, "unauthorized", err)
	case errors.Is(err, domain.ErrForbidden):
		return respond(c, fiber.StatusForbidden, "forbidden", err)
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return respond(c, fiber.StatusConflict, "conflict", err)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "internal_error",
			Message: "internal server error",
		})
	}
}

func respond(c *fiber.Ctx, status int, code string, err error) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
