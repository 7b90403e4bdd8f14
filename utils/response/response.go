package response

import (
	"github.com/gofiber/fiber/v2"
)

// Envelope wraps successful payloads as {"data": ...}
type Envelope struct {
	Data interface{} `json:"data"`
}

// MessageBody is the error body shape: {"message": ...}
type MessageBody struct {
	Message string `json:"message"`
}

// Data returns a 200 response with the payload wrapped in "data"
func Data(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{Data: data})
}

// List returns a 200 response with an unwrapped payload (autocomplete
// endpoints return bare arrays)
func List(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// BadRequest returns a 400 Bad Request response
func BadRequest(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Bad request"
	}
	return c.Status(fiber.StatusBadRequest).JSON(MessageBody{Message: message})
}

// NotFound returns a 404 Not Found response
func NotFound(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return c.Status(fiber.StatusNotFound).JSON(MessageBody{Message: message})
}

// Conflict returns a 409 Conflict response
func Conflict(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Database query failed"
	}
	return c.Status(fiber.StatusConflict).JSON(MessageBody{Message: message})
}

// InternalServerError returns a 500 response. Callers log the real
// error; the body carries a generic message so internal details never
// reach clients.
func InternalServerError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(MessageBody{Message: "Internal server error"})
}

// ServiceUnavailable returns a 503 Service Unavailable response
func ServiceUnavailable(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Service temporarily unavailable"
	}
	return c.Status(fiber.StatusServiceUnavailable).JSON(MessageBody{Message: message})
}
