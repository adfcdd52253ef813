package handler

import (
	"github.com/gofiber/fiber/v3"

	"playtube/internal/apperr"
	"playtube/internal/middleware"
	"playtube/internal/model"
	"playtube/internal/service"
)

type PlaylistHandler struct {
	svc *service.PlaylistService
}

func NewPlaylistHandler(svc *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{svc: svc}
}

// Create handles POST /api/v1/playlists/create.
func (h *PlaylistHandler) Create(c fiber.Ctx) error {
	var req model.PlaylistRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.Fail(c, apperr.BadRequest("invalid request body"))
	}

	playlist, err := h.svc.Create(c.UserContext(), middleware.UserID(c), req)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusCreated, playlist, "playlist created successfully")
}

// ListForUser handles GET /api/v1/playlists/:userId.
func (h *PlaylistHandler) ListForUser(c fiber.Ctx) error {
	userID, msg := middleware.ValidateID(c.Params("userId"), "userId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	playlists, err := h.svc.ListForUser(c.UserContext(), userID)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, playlists, "playlists fetched successfully")
}

// Get handles GET /api/v1/playlists/get/:playlistId.
func (h *PlaylistHandler) Get(c fiber.Ctx) error {
	playlistID, msg := middleware.ValidateID(c.Params("playlistId"), "playlistId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	detail, err := h.svc.Get(c.UserContext(), playlistID)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, detail, "playlist fetched successfully")
}

// AddVideo handles PATCH /api/v1/playlists/add/:videoId/:playlistId.
func (h *PlaylistHandler) AddVideo(c fiber.Ctx) error {
	videoID, msg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}
	playlistID, msg := middleware.ValidateID(c.Params("playlistId"), "playlistId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	playlist, err := h.svc.AddVideo(c.UserContext(), playlistID, videoID, middleware.UserID(c))
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, playlist, "video added to playlist")
}

// RemoveVideo handles PATCH /api/v1/playlists/remove/:videoId/:playlistId.
func (h *PlaylistHandler) RemoveVideo(c fiber.Ctx) error {
	videoID, msg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}
	playlistID, msg := middleware.ValidateID(c.Params("playlistId"), "playlistId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	playlist, err := h.svc.RemoveVideo(c.UserContext(), playlistID, videoID, middleware.UserID(c))
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, playlist, "video removed from playlist")
}

// Update handles PATCH /api/v1/playlists/update/:playlistId.
func (h *PlaylistHandler) Update(c fiber.Ctx) error {
	playlistID, msg := middleware.ValidateID(c.Params("playlistId"), "playlistId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}
	var req model.PlaylistRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.Fail(c, apperr.BadRequest("invalid request body"))
	}

	playlist, err := h.svc.Update(c.UserContext(), playlistID, middleware.UserID(c), req)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, playlist, "playlist updated successfully")
}

// TogglePublish handles PATCH /api/v1/playlists/toggle/:playlistId.
func (h *PlaylistHandler) TogglePublish(c fiber.Ctx) error {
	playlistID, msg := middleware.ValidateID(c.Params("playlistId"), "playlistId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	playlist, err := h.svc.TogglePublish(c.UserContext(), playlistID, middleware.UserID(c))
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, playlist, "publish state toggled successfully")
}

// Delete handles DELETE /api/v1/playlists/delete/:playlistId.
func (h *PlaylistHandler) Delete(c fiber.Ctx) error {
	playlistID, msg := middleware.ValidateID(c.Params("playlistId"), "playlistId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	if err := h.svc.Delete(c.UserContext(), playlistID, middleware.UserID(c)); err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, nil, "playlist deleted successfully")
}
