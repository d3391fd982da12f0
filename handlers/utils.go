package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

// badRequestWithDetails answers 400 with the raw error text and logs it
func badRequestWithDetails(c *fiber.Ctx, err error) error {
	logFailure(c, slog.LevelWarn, "request rejected", err)
	return badRequest(c, err.Error())
}

// serverErrorWithDetails answers 500 with the raw error text and logs it
func serverErrorWithDetails(c *fiber.Ctx, err error) error {
	logFailure(c, slog.LevelError, "server error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func logFailure(c *fiber.Ctx, level slog.Level, msg string, err error) {
	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	slog.Log(c.Context(), level, msg,
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"error", err,
	)
}
