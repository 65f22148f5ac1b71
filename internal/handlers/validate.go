package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"marketpay/internal/utils/response"
)

var validate = validator.New()

// BindAndValidate parses the request body into T and validates its
// struct tags. On failure the error envelope has already been written;
// the caller just stops.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		_ = response.BadRequest(c, "invalid request format")
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		_ = response.BadRequest(c, err.Error())
		return nil, err
	}
	return &input, nil
}
