// Package response writes the JSON envelope used by every endpoint:
// {"success": true, ...} on success, {"success": false, "message": ...}
// on failure.
package response

import (
	"github.com/gofiber/fiber/v2"

	"marketpay/internal/apperr"
)

// OK writes a success envelope with the given payload fields.
func OK(c *fiber.Ctx, payload fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.JSON(body)
}

// Fail writes a failure envelope with the given status.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// BadRequest writes a 400 failure envelope.
func BadRequest(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusBadRequest, message)
}

// FromError maps a tagged error to its status code and writes the
// failure envelope. Untagged errors become a generic 500.
func FromError(c *fiber.Ctx, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindSignature, apperr.KindUpstream:
		return Fail(c, fiber.StatusBadRequest, err.Error())
	case apperr.KindNotFound:
		return Fail(c, fiber.StatusNotFound, err.Error())
	default:
		return Fail(c, fiber.StatusInternalServerError, "internal server error")
	}
}
