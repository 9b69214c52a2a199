package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fleetdesk/FleetDesk/internal/apperr"
)

// Envelope is the uniform response body for every endpoint.
type Envelope struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// OK writes a 200 envelope.
func OK(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{Status: true, Message: message, Data: data})
}

// Created writes a 201 envelope.
func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{Status: true, Message: message, Data: data})
}

// Fail maps an error to its envelope. Unexpected errors surface the fallback
// message; in development mode the underlying error is attached for debugging.
func Fail(c *fiber.Ctx, err error, fallback string, development bool) error {
	appErr := apperr.From(err, fallback)
	var data interface{}
	if development && appErr.Err != nil {
		data = fiber.Map{"error": appErr.Err.Error()}
	}
	return c.Status(appErr.Status).JSON(Envelope{Status: false, Message: appErr.Message, Data: data})
}
