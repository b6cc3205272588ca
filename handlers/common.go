package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sdas2004/job_portal/services"
)

var validate = validator.New()

// serviceError maps the services' typed failures onto HTTP responses.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this resource"})
	case errors.Is(err, services.ErrInvalidOrExpired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid or expired code or token"})
	case errors.Is(err, services.ErrDuplicateApplication):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already applied for this position"})
	case errors.Is(err, services.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already exists on the platform"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
}
