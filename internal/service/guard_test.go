package service

import (
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"playtube/internal/apperr"
)

func TestRequireOwner_Owner(t *testing.T) {
	if err := requireOwner("user-1", "user-1", "video"); err != nil {
		t.Errorf("owner should pass the guard, got %v", err)
	}
}

func TestRequireOwner_NotOwner(t *testing.T) {
	err := requireOwner("user-1", "user-2", "video")
	if err == nil {
		t.Fatal("non-owner should be rejected")
	}
	if got := apperr.Status(err); got != fiber.StatusForbidden {
		t.Errorf("Status = %d, want %d", got, fiber.StatusForbidden)
	}
	if msg := apperr.Message(err); !strings.Contains(msg, "video") {
		t.Errorf("message should name the resource kind, got %q", msg)
	}
}
