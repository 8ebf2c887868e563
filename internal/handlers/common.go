package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/kickstartvisuals/studio-backend/internal/dto"
)

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

// serverError logs the real cause and returns a generic 500; store and
// transport failures never leak detail to the client.
func serverError(c *fiber.Ctx, err error) error {
	slog.Error("request failed",
		"method", c.Method(),
		"path", c.Path(),
		"error", err.Error(),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}
