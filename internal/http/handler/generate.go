package handler

import (
	"github.com/gofiber/fiber/v2"

	"fixtureplanner/internal/service"
)

// Generate handles POST /generate.
//
// The body is decoded permissively: an empty, null or malformed body is treated as {}.
// The request is never rejected because of its payload.
//
// @Summary Generate a fixture
// @Description Placeholder: echoes the tournament configuration back. Schedules are still built in the browser.
// @Tags fixture
// @Accept json
// @Produce json
// @Param payload body object false "Tournament configuration"
// @Success 200 {object} model.GenerateResponse
// @Router /generate [post]
func Generate(gen service.FixtureGenerator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := service.DecodePayload(c.Body())

		res, err := gen.Generate(c.UserContext(), payload)
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}
