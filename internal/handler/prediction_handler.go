package handler

import (
	"errors"

	"absenteeism-system/internal/client"
	"absenteeism-system/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type PredictionHandler struct {
	uc *usecase.PredictionUsecase
}

func NewPredictionHandler(uc *usecase.PredictionUsecase) *PredictionHandler {
	return &PredictionHandler{uc: uc}
}

// Predict validates a JSON payload the same way the predictor page does and
// forwards it to the prediction service.
func (h *PredictionHandler) Predict(c *fiber.Ctx) error {
	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	payload, err := client.BuildPredictionPayload(client.FormValuesFromJSON(body))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hours, err := h.uc.Predict(payload)
	if err != nil {
		return c.Status(upstreamStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"predicted_hours": hours})
}

// upstreamStatus passes client errors from the prediction service through and
// maps everything else to 502.
func upstreamStatus(err error) int {
	var ce *client.Error
	if errors.As(err, &ce) && ce.Status >= 400 && ce.Status < 500 {
		return ce.Status
	}
	return fiber.StatusBadGateway
}

func (h *PredictionHandler) GetLogs(c *fiber.Ctx) error {
	logs, err := h.uc.RecentLogs(c.QueryInt("limit", usecase.DefaultLogLimit))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch prediction logs"})
	}
	return c.JSON(fiber.Map{"data": logs})
}
