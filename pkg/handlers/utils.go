package handlers

import (
	"github.com/gofiber/fiber/v2"
)

func jsonResponse(c *fiber.Ctx, status int, payload interface{}) error {
	return c.Status(status).JSON(payload)
}

func badRequest(c *fiber.Ctx, err error) error {
	return jsonResponse(c, fiber.StatusBadRequest, fiber.Map{
		"error": err.Error(),
	})
}

func notFound(c *fiber.Ctx, err error) error {
	return jsonResponse(c, fiber.StatusNotFound, fiber.Map{
		"error": err.Error(),
	})
}

func internalServerError(c *fiber.Ctx) error {
	return jsonResponse(c, fiber.StatusInternalServerError, fiber.Map{
		"error": "Something went wrong",
	})
}

func temporaryUnavailable(c *fiber.Ctx, err error) error {
	return jsonResponse(c, fiber.StatusServiceUnavailable, fiber.Map{
		"error": err.Error(),
	})
}

func success(c *fiber.Ctx) error {
	return jsonResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Success",
	})
}
