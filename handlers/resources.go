package handlers

import (
	"errors"
	"esantiye/app"
	"esantiye/models"
	"esantiye/services"

	"github.com/gofiber/fiber/v2"
)

// ListResource returns every row of the named resource
func ListResource(a *app.App, name string) fiber.Handler {
	svc := a.Resource(name)

	return func(c *fiber.Ctx) error {
		rows, err := svc.List()
		if err != nil {
			return serverErrorWithDetails(c, err)
		}

		return success(c, fiber.Map{"data": rows})
	}
}

// CreateResource inserts a row holding only the resource's mandatory field
func CreateResource(a *app.App, name string) fiber.Handler {
	svc := a.Resource(name)

	return func(c *fiber.Ctx) error {
		var req models.CreateResourceRequest
		// An empty body, or one in a content type we cannot decode, is a
		// missing name rather than a malformed request
		if len(c.Body()) > 0 {
			err := c.BodyParser(&req)
			if err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
				return badRequest(c, "Invalid request body")
			}
		}

		id, err := svc.Create(req.Fields())
		if err != nil {
			var vErr *services.ValidationError
			switch {
			case errors.As(err, &vErr):
				return badRequest(c, vErr.Message)
			case errors.Is(err, services.ErrReadOnlyResource):
				return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{"error": err.Error()})
			default:
				return badRequestWithDetails(c, err)
			}
		}

		resp := fiber.Map{"id": id}
		if msg := svc.Spec().CreatedMessage; msg != "" {
			resp["message"] = msg
		}
		return success(c, resp)
	}
}
