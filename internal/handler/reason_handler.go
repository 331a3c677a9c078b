package handler

import (
	"absenteeism-system/internal/model"

	"github.com/gofiber/fiber/v2"
)

// GetReasons returns the reason reference table in display order.
func GetReasons(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data":             model.Reasons(),
		"reason_groups":    model.ReasonGroups(),
		"education_levels": model.EducationLevels(),
	})
}
