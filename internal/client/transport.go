package client

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// postJSON sends payload as a JSON body and returns the raw response. A
// non-nil error means no response was received.
func postJSON(url string, timeout time.Duration, payload any) (int, []byte, error) {
	agent := fiber.Post(url)
	agent.JSON(payload)
	if timeout > 0 {
		agent.Timeout(timeout)
	}
	if err := agent.Parse(); err != nil {
		fiber.ReleaseAgent(agent)
		return 0, nil, err
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return 0, nil, errors.Join(errs...)
	}
	return code, body, nil
}

// decodeObject parses a JSON object body. Anything else yields nil, which
// callers treat as a body carrying no usable fields.
func decodeObject(body []byte) map[string]any {
	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil
	}
	return out
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

func stringField(body map[string]any, key, fallback string) string {
	if s, ok := body[key].(string); ok && s != "" {
		return s
	}
	return fallback
}
