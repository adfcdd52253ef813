package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
)

// WithTimeout bounds every request with a deadline so a slow store cannot
// pin a connection forever. Deadline hits surface as 503 through the
// repository error translation.
func WithTimeout(d time.Duration) fiber.Handler {
	return func(c fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
