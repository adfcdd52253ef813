package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"playtube/internal/apperr"
	"playtube/internal/repository"
	"playtube/pkg/token"
)

// Locals keys set by the auth middleware.
const (
	LocalUserID   = "userID"
	LocalUsername = "username"
)

// Cookie names carrying the token pair.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// Auth verifies access tokens from the cookie or the Authorization header
// and resolves the caller. The user row is loaded so tokens of deleted
// accounts stop working immediately.
type Auth struct {
	tokens *token.Manager
	users  *repository.UserRepo
}

func NewAuth(tokens *token.Manager, users *repository.UserRepo) *Auth {
	return &Auth{tokens: tokens, users: users}
}

// Require rejects unauthenticated requests with 401.
func (a *Auth) Require() fiber.Handler {
	return func(c fiber.Ctx) error {
		userID, username, err := a.resolve(c)
		if err != nil {
			return Fail(c, err)
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUsername, username)
		return c.Next()
	}
}

// Optional resolves the caller when a valid token is present and continues
// anonymously otherwise. Used by public reads that personalise their
// projection for authenticated callers.
func (a *Auth) Optional() fiber.Handler {
	return func(c fiber.Ctx) error {
		userID, username, err := a.resolve(c)
		if err == nil {
			c.Locals(LocalUserID, userID)
			c.Locals(LocalUsername, username)
		}
		return c.Next()
	}
}

func (a *Auth) resolve(c fiber.Ctx) (userID, username string, err error) {
	raw := c.Cookies(AccessTokenCookie)
	if raw == "" {
		header := c.Get(fiber.HeaderAuthorization)
		raw = strings.TrimPrefix(header, "Bearer ")
		if raw == header {
			raw = ""
		}
	}
	if raw == "" {
		return "", "", apperr.Unauthorized("unauthorized request")
	}

	claims, err := a.tokens.VerifyAccess(raw)
	if err != nil {
		return "", "", apperr.Unauthorized("invalid access token")
	}

	user, err := a.users.FindByID(c.UserContext(), claims.Subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", apperr.Unauthorized("invalid access token")
		}
		return "", "", apperr.FromStore(err, "user not found")
	}
	return user.ID, user.Username, nil
}

// UserID returns the authenticated caller's id from Locals.
func UserID(c fiber.Ctx) string {
	uid, _ := c.Locals(LocalUserID).(string)
	return uid
}

// OptionalUserID returns the caller's id or nil for anonymous requests.
func OptionalUserID(c fiber.Ctx) *string {
	if uid, ok := c.Locals(LocalUserID).(string); ok && uid != "" {
		return &uid
	}
	return nil
}
