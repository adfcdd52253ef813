package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"playtube/internal/apperr"
	"playtube/internal/middleware"
	"playtube/internal/model"
	"playtube/internal/service"
)

// CookieConfig controls how the token pair is written as cookies.
type CookieConfig struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type UserHandler struct {
	auth    *service.AuthService
	users   *service.UserService
	cookies CookieConfig
}

func NewUserHandler(auth *service.AuthService, users *service.UserService, cookies CookieConfig) *UserHandler {
	return &UserHandler{auth: auth, users: users, cookies: cookies}
}

// Register handles POST /api/v1/users/register (multipart).
func (h *UserHandler) Register(c fiber.Ctx) error {
	req := model.RegisterRequest{
		FullName: c.FormValue("fullname"),
		Email:    c.FormValue("email"),
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
	}

	avatarFile, err := c.FormFile("avatar")
	if err != nil {
		return middleware.Fail(c, apperr.BadRequest("avatar is required"))
	}
	avatar, closeAvatar, aerr := openUpload(avatarFile)
	if aerr != nil {
		return middleware.Fail(c, aerr)
	}
	defer closeAvatar()

	var cover *service.Upload
	if coverFile, err := c.FormFile("coverImage"); err == nil && coverFile != nil {
		up, closeCover, cerr := openUpload(coverFile)
		if cerr != nil {
			return middleware.Fail(c, cerr)
		}
		defer closeCover()
		cover = &up
	}

	user, err := h.auth.Register(c.UserContext(), req, avatar, cover)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusCreated, user, "user registered successfully")
}

// Login handles POST /api/v1/users/login.
func (h *UserHandler) Login(c fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.Fail(c, apperr.BadRequest("invalid request body"))
	}

	resp, err := h.auth.Login(c.UserContext(), req)
	if err != nil {
		return middleware.Fail(c, err)
	}

	h.setAuthCookies(c, resp.AccessToken, resp.RefreshToken)
	return middleware.Success(c, fiber.StatusOK, resp, "user logged in successfully")
}

// Logout handles POST /api/v1/users/logout.
func (h *UserHandler) Logout(c fiber.Ctx) error {
	if err := h.auth.Logout(c.UserContext(), middleware.UserID(c)); err != nil {
		return middleware.Fail(c, err)
	}
	h.clearAuthCookies(c)
	return middleware.Success(c, fiber.StatusOK, nil, "user logged out successfully")
}

// Refresh handles POST /api/v1/users/refresh-token. The token comes from the
// cookie or the request body.
func (h *UserHandler) Refresh(c fiber.Ctx) error {
	presented := c.Cookies(middleware.RefreshTokenCookie)
	if presented == "" {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := c.Bind().Body(&body); err == nil {
			presented = body.RefreshToken
		}
	}

	pair, err := h.auth.Refresh(c.UserContext(), presented)
	if err != nil {
		return middleware.Fail(c, err)
	}

	h.setAuthCookies(c, pair.AccessToken, pair.RefreshToken)
	return middleware.Success(c, fiber.StatusOK, pair, "access token refreshed")
}

// ChangePassword handles POST /api/v1/users/change-password.
func (h *UserHandler) ChangePassword(c fiber.Ctx) error {
	var req model.ChangePasswordRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.Fail(c, apperr.BadRequest("invalid request body"))
	}
	if err := h.auth.ChangePassword(c.UserContext(), middleware.UserID(c), req); err != nil {
		return middleware.Fail(c, err)
	}
	h.clearAuthCookies(c)
	return middleware.Success(c, fiber.StatusOK, nil, "password changed successfully")
}

// CurrentUser handles GET /api/v1/users/current-user.
func (h *UserHandler) CurrentUser(c fiber.Ctx) error {
	user, err := h.users.CurrentUser(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, user, "current user fetched successfully")
}

// UpdateAccount handles PATCH /api/v1/users/update-acc.
func (h *UserHandler) UpdateAccount(c fiber.Ctx) error {
	var req model.UpdateAccountRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.Fail(c, apperr.BadRequest("invalid request body"))
	}
	user, err := h.users.UpdateAccount(c.UserContext(), middleware.UserID(c), req)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, user, "account updated successfully")
}

// UpdateAvatar handles PATCH /api/v1/users/avatar (multipart).
func (h *UserHandler) UpdateAvatar(c fiber.Ctx) error {
	fh, err := c.FormFile("avatar")
	if err != nil {
		return middleware.Fail(c, apperr.BadRequest("avatar is required"))
	}
	up, closeFile, uerr := openUpload(fh)
	if uerr != nil {
		return middleware.Fail(c, uerr)
	}
	defer closeFile()

	user, err := h.users.UpdateAvatar(c.UserContext(), middleware.UserID(c), up)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, user, "avatar updated successfully")
}

// UpdateCoverImage handles PATCH /api/v1/users/cover-image (multipart).
func (h *UserHandler) UpdateCoverImage(c fiber.Ctx) error {
	fh, err := c.FormFile("coverImage")
	if err != nil {
		return middleware.Fail(c, apperr.BadRequest("cover image is required"))
	}
	up, closeFile, uerr := openUpload(fh)
	if uerr != nil {
		return middleware.Fail(c, uerr)
	}
	defer closeFile()

	user, err := h.users.UpdateCoverImage(c.UserContext(), middleware.UserID(c), up)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, user, "cover image updated successfully")
}

// Channel handles GET /api/v1/users/c/:username. Public, with a personalised
// isSubscribed for authenticated callers.
func (h *UserHandler) Channel(c fiber.Ctx) error {
	username, msg := middleware.ValidateUsername(c.Params("username"))
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	profile, err := h.users.ChannelProfile(c.UserContext(), username, middleware.OptionalUserID(c))
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, profile, "channel fetched successfully")
}

// History handles GET /api/v1/users/history.
func (h *UserHandler) History(c fiber.Ctx) error {
	history, err := h.users.WatchHistory(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, history, "watch history fetched successfully")
}

// DeleteChannel handles DELETE /api/v1/users/channel/delete.
func (h *UserHandler) DeleteChannel(c fiber.Ctx) error {
	if err := h.users.DeleteChannel(c.UserContext(), middleware.UserID(c)); err != nil {
		return middleware.Fail(c, err)
	}
	h.clearAuthCookies(c)
	return middleware.Success(c, fiber.StatusOK, nil, "channel deleted successfully")
}

func (h *UserHandler) setAuthCookies(c fiber.Ctx, access, refresh string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    access,
		Expires:  time.Now().Add(h.cookies.AccessTTL),
		HTTPOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     middleware.RefreshTokenCookie,
		Value:    refresh,
		Expires:  time.Now().Add(h.cookies.RefreshTTL),
		HTTPOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})
}

func (h *UserHandler) clearAuthCookies(c fiber.Ctx) {
	for _, name := range []string{middleware.AccessTokenCookie, middleware.RefreshTokenCookie} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			Secure:   h.cookies.Secure,
			SameSite: fiber.CookieSameSiteStrictMode,
			Path:     "/",
		})
	}
}
