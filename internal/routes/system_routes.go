package routes

import (
	"absenteeism-system/internal/handler"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupSystemRoutes registers the health check and the reference data.
func SetupSystemRoutes(app *fiber.App, db *gorm.DB, predictionURL string) {
	health := handler.NewHealthHandler(db, predictionURL)

	api := app.Group("/api")
	api.Get("/health", health.Check)
	api.Get("/reasons", handler.GetReasons)
}
