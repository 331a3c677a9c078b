package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id (kept from the client when it
// sends one) and logs the result once the handler chain returns.
func RequestLogger(c *fiber.Ctx) error {
	start := time.Now()

	requestID := c.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Locals("request_id", requestID)
	c.Set(RequestIDHeader, requestID)

	err := c.Next()

	status := c.Response().StatusCode()
	if fe, ok := err.(*fiber.Error); ok {
		status = fe.Code
	} else if err != nil {
		status = fiber.StatusInternalServerError
	}

	entry := logrus.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     c.Method(),
		"path":       c.Path(),
		"status":     status,
		"latency":    time.Since(start).String(),
	})
	switch {
	case status >= 500:
		entry.Error("Request failed")
	case status >= 400:
		entry.Warn("Request rejected")
	default:
		entry.Info("Request handled")
	}
	return err
}
