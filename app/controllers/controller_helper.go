package controllers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// jsonError writes a uniform error body for the JSON API
func jsonError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   code,
		"message": message,
	})
}

// queryInt reads an integer query parameter with a default and floor
func queryInt(c *fiber.Ctx, key string, def, min int) int {
	value := c.QueryInt(key, def)
	if value < min {
		return def
	}
	return value
}
