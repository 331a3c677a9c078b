package handler

import (
	"errors"
	"strconv"

	"absenteeism-system/internal/repository"
	"absenteeism-system/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AbsenceHandler struct {
	uc *usecase.AbsenceUsecase
}

func NewAbsenceHandler(uc *usecase.AbsenceUsecase) *AbsenceHandler {
	return &AbsenceHandler{uc: uc}
}

// AddAbsence stores one labeled absence event for later retraining.
func (h *AbsenceHandler) AddAbsence(c *fiber.Ctx) error {
	var req usecase.NewAbsence
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	event, err := h.uc.Register(req)
	if err != nil {
		if usecase.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}
		logrus.WithError(err).Error("Failed to store absence event")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to register absence",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Absence registered.",
		"data":    event,
	})
}

// GetAll lists absence events, optionally filtered by ?employee_id= and
// ?processed=.
func (h *AbsenceHandler) GetAll(c *fiber.Ctx) error {
	var filter repository.AbsenceFilter

	if raw := c.Query("employee_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "employee_id must be a whole number"})
		}
		filter.EmployeeID = &id
	}
	if raw := c.Query("processed"); raw != "" {
		processed, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "processed must be true or false"})
		}
		filter.Processed = &processed
	}

	events, err := h.uc.List(filter)
	if err != nil {
		logrus.WithError(err).Error("Failed to list absence events")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch absences"})
	}
	return c.JSON(fiber.Map{"data": events})
}

func (h *AbsenceHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	event, err := h.uc.Get(uint(id))
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Absence not found"})
	}
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch absence event")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch absence"})
	}
	return c.JSON(fiber.Map{"data": event})
}
