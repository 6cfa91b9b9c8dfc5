package middleware

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"todoapi/internal/apperror"
)

// BodyLocalKey is the locals key holding the decoded request body.
const BodyLocalKey = "body"

// BodyParser decodes JSON request bodies into a map stored under BodyLocalKey.
//
// Only POST, PUT and PATCH bodies with a JSON content type are decoded; anything
// else yields an empty map. A body that is not a JSON object short-circuits the
// chain with *apperror.ParseError.
func BodyParser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := map[string]any{}

		switch c.Method() {
		case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch:
			raw := c.Body()
			if c.Is("json") && len(bytes.TrimSpace(raw)) > 0 {
				if err := c.App().Config().JSONDecoder(raw, &body); err != nil {
					return &apperror.ParseError{Err: err}
				}
				if body == nil {
					return &apperror.ParseError{}
				}
			}
		}

		c.Locals(BodyLocalKey, body)
		return c.Next()
	}
}

// Body returns the map decoded by BodyParser, or nil when it did not run.
func Body(c *fiber.Ctx) map[string]any {
	body, _ := c.Locals(BodyLocalKey).(map[string]any)
	return body
}
