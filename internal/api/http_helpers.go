package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func requiredParam(c *fiber.Ctx, name string) (string, bool) {
	value := strings.TrimSpace(c.Params(name))
	return value, value != ""
}
