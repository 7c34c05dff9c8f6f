package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// responseStatus reports the status the client will see.
// The global ErrorHandler runs after middleware returns, so an error from c.Next()
// decides the status instead of the response written so far.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
