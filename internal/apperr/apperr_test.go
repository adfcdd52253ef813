package apperr

import (
	"context"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestFromStore_Nil(t *testing.T) {
	if err := FromStore(nil, "whatever"); err != nil {
		t.Errorf("FromStore(nil) = %v, want nil", err)
	}
}

func TestFromStore_NoRows(t *testing.T) {
	err := FromStore(pgx.ErrNoRows, "video not found")
	if got := Status(err); got != fiber.StatusNotFound {
		t.Errorf("Status = %d, want %d", got, fiber.StatusNotFound)
	}
	if got := Message(err); got != "video not found" {
		t.Errorf("Message = %q, want %q", got, "video not found")
	}
}

func TestFromStore_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}
	err := FromStore(pgErr, "user not found")
	if got := Status(err); got != fiber.StatusConflict {
		t.Errorf("Status = %d, want %d", got, fiber.StatusConflict)
	}
}

func TestFromStore_DeadlineExceeded(t *testing.T) {
	err := FromStore(context.DeadlineExceeded, "not found")
	if got := Status(err); got != fiber.StatusServiceUnavailable {
		t.Errorf("Status = %d, want %d", got, fiber.StatusServiceUnavailable)
	}
}

func TestFromStore_Canceled(t *testing.T) {
	err := FromStore(context.Canceled, "not found")
	if got := Status(err); got != fiber.StatusServiceUnavailable {
		t.Errorf("Status = %d, want %d", got, fiber.StatusServiceUnavailable)
	}
}

func TestFromStore_PassesThroughAppErrors(t *testing.T) {
	original := Forbidden("you do not own this video")
	err := FromStore(original, "video not found")
	if !errors.Is(err, original) {
		t.Errorf("FromStore should return application errors unchanged, got %v", err)
	}
}

func TestFromStore_UnknownError(t *testing.T) {
	err := FromStore(errors.New("connection reset"), "not found")
	if got := Status(err); got != fiber.StatusInternalServerError {
		t.Errorf("Status = %d, want %d", got, fiber.StatusInternalServerError)
	}
	// The driver error must never leak to clients.
	if got := Message(err); got != "store error" {
		t.Errorf("Message = %q, want %q", got, "store error")
	}
}

func TestStatus_PlainError(t *testing.T) {
	if got := Status(errors.New("boom")); got != fiber.StatusInternalServerError {
		t.Errorf("Status = %d, want %d", got, fiber.StatusInternalServerError)
	}
}

func TestMessage_PlainError(t *testing.T) {
	if got := Message(errors.New("boom")); got != "something went wrong" {
		t.Errorf("Message = %q, want %q", got, "something went wrong")
	}
}

func TestStatus_WrappedError(t *testing.T) {
	wrapped := Internal("store error", pgx.ErrNoRows)
	if got := Status(wrapped); got != fiber.StatusInternalServerError {
		t.Errorf("Status = %d, want %d", got, fiber.StatusInternalServerError)
	}
}

func TestConflictMessage(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    string
		rewrote bool
	}{
		{"rewrites conflict", Conflict("resource already exists"), "email already exists", true},
		{"leaves not found", NotFound("user not found"), "user not found", false},
		{"leaves plain errors", errors.New("boom"), "something went wrong", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConflictMessage(tt.err, "email already exists")
			if Message(got) != tt.want {
				t.Errorf("Message = %q, want %q", Message(got), tt.want)
			}
			if tt.rewrote && Status(got) != fiber.StatusConflict {
				t.Errorf("Status = %d, want %d", Status(got), fiber.StatusConflict)
			}
		})
	}
}

func TestError_UnwrapChain(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Internal("store error", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}
