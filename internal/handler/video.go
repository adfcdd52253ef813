package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"playtube/internal/apperr"
	"playtube/internal/middleware"
	"playtube/internal/model"
	"playtube/internal/service"
)

type VideoHandler struct {
	svc *service.VideoService
}

func NewVideoHandler(svc *service.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// Publish handles POST /api/v1/videos/publish (multipart).
func (h *VideoHandler) Publish(c fiber.Ctx) error {
	duration, _ := strconv.ParseFloat(c.FormValue("duration"), 64)
	req := model.PublishVideoRequest{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Duration:    duration,
	}

	videoFH, err := c.FormFile("videoFile")
	if err != nil {
		return middleware.Fail(c, apperr.BadRequest("video file is required"))
	}
	videoFile, closeVideo, verr := openUpload(videoFH)
	if verr != nil {
		return middleware.Fail(c, verr)
	}
	defer closeVideo()

	thumbFH, err := c.FormFile("thumbnail")
	if err != nil {
		return middleware.Fail(c, apperr.BadRequest("thumbnail is required"))
	}
	thumbnail, closeThumb, terr := openUpload(thumbFH)
	if terr != nil {
		return middleware.Fail(c, terr)
	}
	defer closeThumb()

	video, err := h.svc.Publish(c.UserContext(), middleware.UserID(c), req, videoFile, thumbnail)
	if err != nil {
		return middleware.Fail(c, err)
	}
	Metrics.UploadsTotal.WithLabelValues("video").Inc()
	Metrics.UploadsTotal.WithLabelValues("thumbnail").Inc()
	return middleware.Success(c, fiber.StatusCreated, video, "video published successfully")
}

// Get handles GET /api/v1/videos/c/:videoId. Authenticated callers get a
// view bump and a watch history entry.
func (h *VideoHandler) Get(c fiber.Ctx) error {
	videoID, msg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	detail, err := h.svc.Get(c.UserContext(), videoID, middleware.OptionalUserID(c))
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, detail, "video fetched successfully")
}

// ListByChannel handles GET /api/v1/videos/getall/:userId.
func (h *VideoHandler) ListByChannel(c fiber.Ctx) error {
	channelID, msg := middleware.ValidateID(c.Params("userId"), "userId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}
	page := fiber.Query[int](c, "page", 1)
	limit := fiber.Query[int](c, "limit", 10)

	list, err := h.svc.ListByChannel(c.UserContext(), channelID, page, limit)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, list, "videos fetched successfully")
}

// Update handles PATCH /api/v1/videos/update/:videoId (multipart).
func (h *VideoHandler) Update(c fiber.Ctx) error {
	videoID, msg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}
	req := model.UpdateVideoRequest{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
	}

	var thumbnail *service.Upload
	if thumbFH, err := c.FormFile("thumbnail"); err == nil && thumbFH != nil {
		up, closeThumb, terr := openUpload(thumbFH)
		if terr != nil {
			return middleware.Fail(c, terr)
		}
		defer closeThumb()
		thumbnail = &up
	}

	video, err := h.svc.Update(c.UserContext(), videoID, middleware.UserID(c), req, thumbnail)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, video, "video updated successfully")
}

// TogglePublish handles PATCH /api/v1/videos/toggle/publish/:videoId.
func (h *VideoHandler) TogglePublish(c fiber.Ctx) error {
	videoID, msg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	video, err := h.svc.TogglePublish(c.UserContext(), videoID, middleware.UserID(c))
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, video, "publish state toggled successfully")
}

// Delete handles DELETE /api/v1/videos/delete/:videoId.
func (h *VideoHandler) Delete(c fiber.Ctx) error {
	videoID, msg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	if err := h.svc.Delete(c.UserContext(), videoID, middleware.UserID(c)); err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, nil, "video deleted successfully")
}
