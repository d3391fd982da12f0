package handlers

import (
	"esantiye/app"

	"github.com/gofiber/fiber/v2"
)

// GetStats returns row counts for projects, materials, personnel and tasks
func GetStats(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := a.Stats.Compute()
		if err != nil {
			return serverErrorWithDetails(c, err)
		}

		return success(c, fiber.Map{"data": stats})
	}
}

// Health never touches the database.
func Health(c *fiber.Ctx) error {
	return success(c, fiber.Map{"status": "ok"})
}
