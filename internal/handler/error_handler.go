package handler

import (
	"errors"
	"strings"

	"absenteeism-system/internal/view"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ErrorHandler answers /api requests with JSON and everything else with the
// error page.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	message := err.Error()
	if code == fiber.StatusInternalServerError {
		logrus.WithError(err).WithField("path", c.Path()).Error("Unhandled error")
		message = "Internal Server Error"
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   message,
			"code":    code,
		})
	}

	title := "An Error Occurred"
	switch code {
	case fiber.StatusNotFound:
		title = "Page Not Found"
		message = "The page you are looking for does not exist."
	case fiber.StatusMethodNotAllowed:
		title = "Method Not Allowed"
	case fiber.StatusInternalServerError:
		title = "Internal Server Error"
		message = "Something went wrong. Please try again later."
	}

	renderErr := c.Status(code).Render("error", fiber.Map{
		"Title":        title,
		"Nav":          view.Links(c.Path()),
		"ErrorCode":    code,
		"ErrorTitle":   title,
		"ErrorMessage": message,
	})
	if renderErr != nil {
		logrus.WithError(renderErr).Error("Failed to render error page")
		return c.Status(code).SendString(message)
	}
	return nil
}
