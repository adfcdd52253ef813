package apperr

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Error is a status-coded application error. Every error that reaches a
// handler is either an *Error or gets wrapped as Internal before it is
// written to the response envelope.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error   { return New(fiber.StatusBadRequest, message) }
func Unauthorized(message string) *Error { return New(fiber.StatusUnauthorized, message) }
func Forbidden(message string) *Error    { return New(fiber.StatusForbidden, message) }
func NotFound(message string) *Error     { return New(fiber.StatusNotFound, message) }
func Conflict(message string) *Error     { return New(fiber.StatusConflict, message) }

func Internal(message string, err error) *Error {
	return &Error{Status: fiber.StatusInternalServerError, Message: message, Err: err}
}

func Unavailable(message string) *Error {
	return New(fiber.StatusServiceUnavailable, message)
}

// Status extracts the HTTP status for an error. Unknown errors are internal.
func Status(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return fiber.StatusInternalServerError
}

// Message returns the user-visible message for an error. Internal details
// never leak: anything that is not an *Error gets a generic message.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "something went wrong"
}

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// FromStore translates entity store failures into application errors:
// pgx.ErrNoRows becomes NotFound with the given message, unique violations
// become Conflict, exceeded deadlines become Unavailable, anything else is
// Internal.
func FromStore(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return NotFound(notFoundMsg)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return Unavailable("store unavailable, try again")
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return Conflict("resource already exists")
	}
	return Internal("store error", err)
}

// ConflictMessage rewrites the message of a Conflict error so callers can
// name the duplicated resource. Other errors pass through untouched.
func ConflictMessage(err error, message string) error {
	var ae *Error
	if errors.As(err, &ae) && ae.Status == fiber.StatusConflict {
		return Conflict(message)
	}
	return err
}
