package response

import (
	"github.com/gofiber/fiber/v2"

	"go-repair-pos/internal/apperr"
)

// Envelope is the JSON shape every endpoint answers with.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func OK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(Envelope{Success: true, Data: data})
}

func Created(c *fiber.Ctx, data interface{}, message string) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{Success: true, Data: data, Message: message})
}

func Message(c *fiber.Ctx, message string) error {
	return c.JSON(Envelope{Success: true, Message: message})
}

func Fail(c *fiber.Ctx, status int, errMsg string) error {
	return c.Status(status).JSON(Envelope{Success: false, Error: errMsg})
}

// FromError maps a service error onto the envelope using the apperr taxonomy.
func FromError(c *fiber.Ctx, err error) error {
	return Fail(c, apperr.StatusCode(err), apperr.PublicMessage(err))
}
