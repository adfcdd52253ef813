package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v3"

	"playtube/internal/apperr"
)

// Self-subscription is rejected before any store access, so a zero-value
// service suffices.
func TestSubscriptionToggle_OwnChannel(t *testing.T) {
	svc := NewSubscriptionService(nil, nil, nil)

	// The rejection is unconditional, not dependent on subscription state:
	// repeated toggles fail identically.
	for i := 0; i < 2; i++ {
		resp, err := svc.Toggle(context.Background(), "user-1", "user-1")
		if resp != nil {
			t.Error("no toggle response should be returned")
		}
		if err == nil {
			t.Fatal("subscribing to your own channel should be rejected")
		}
		if got := apperr.Status(err); got != fiber.StatusBadRequest {
			t.Errorf("Status = %d, want %d", got, fiber.StatusBadRequest)
		}
		if got := apperr.Message(err); got != "you cannot subscribe to your own channel" {
			t.Errorf("Message = %q", got)
		}
	}
}
