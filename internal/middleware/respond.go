package middleware

import (
	"github.com/gofiber/fiber/v3"

	"playtube/internal/apperr"
)

// Envelope is the uniform success response body.
type Envelope struct {
	StatusCode int         `json:"statuscode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// ErrorEnvelope is the uniform error response body. Errors is always present,
// if only as an empty list.
type ErrorEnvelope struct {
	StatusCode int         `json:"statuscode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
	Errors     []string    `json:"errors"`
}

// Success writes a success envelope.
func Success(c fiber.Ctx, status int, data interface{}, message string) error {
	return c.Status(status).JSON(Envelope{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < 400,
	})
}

// Fail maps an error to the error envelope. Internal details never reach the
// client; they are logged here instead.
func Fail(c fiber.Ctx, err error) error {
	status := apperr.Status(err)
	if status >= 500 {
		Logger.Error().Err(err).
			Str("method", c.Method()).
			Str("path", sanitizePath(c.Path())).
			Msg("request failed")
	}
	return c.Status(status).JSON(ErrorEnvelope{
		StatusCode: status,
		Data:       nil,
		Message:    apperr.Message(err),
		Success:    false,
		Errors:     []string{},
	})
}
