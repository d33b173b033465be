package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/rateview/storefront-backend/internal/dto"
	"github.com/rateview/storefront-backend/internal/services"
)

// serviceError maps service-layer errors to HTTP responses: field-level
// validation to 400, duplicates to 409, missing identity to 401, absent
// entities to 404, everything unexpected to a masked 500.
func serviceError(c *fiber.Ctx, err error) error {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Validation error",
			Errors:  ve.Fields,
		})
	}

	switch {
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrStoreEmailTaken),
		errors.Is(err, services.ErrOwnerHasStore):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrInvalidOwner),
		errors.Is(err, services.ErrWrongPassword):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrStoreNotFound),
		errors.Is(err, services.ErrNoStoreForOwner):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	slog.Error("unhandled service error", "method", c.Method(), "path", c.Path(), "error", err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Message: "Internal server error",
	})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Message: "Invalid request body",
	})
}
