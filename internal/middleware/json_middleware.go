package middleware

import "github.com/gofiber/fiber/v2"

// RequireJSON rejects request bodies that are not declared as JSON.
func RequireJSON(c *fiber.Ctx) error {
	if !c.Is("json") {
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
			"success": false,
			"error":   "Content-Type must be application/json",
		})
	}
	return c.Next()
}
