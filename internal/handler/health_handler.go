package handler

import (
	"absenteeism-system/config"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db            *gorm.DB
	predictionURL string
}

func NewHealthHandler(db *gorm.DB, predictionURL string) *HealthHandler {
	return &HealthHandler{db: db, predictionURL: predictionURL}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	connected := true
	if err := config.Ping(h.db); err != nil {
		logrus.WithError(err).Warn("Database ping failed")
		connected = false
	}
	return c.JSON(fiber.Map{
		"status":         "ok",
		"prediction_url": h.predictionURL,
		"db_connected":   connected,
	})
}
