package handler

import (
	"github.com/gofiber/fiber/v3"

	"playtube/internal/apperr"
	"playtube/internal/middleware"
	"playtube/internal/model"
	"playtube/internal/service"
)

type LikeHandler struct {
	svc *service.LikeService
}

func NewLikeHandler(svc *service.LikeService) *LikeHandler {
	return &LikeHandler{svc: svc}
}

// ToggleVideo handles POST /api/v1/likes/video/:videoId.
func (h *LikeHandler) ToggleVideo(c fiber.Ctx) error {
	return h.toggle(c, model.LikeVideo, "videoId")
}

// ToggleComment handles POST /api/v1/likes/comment/:commentId.
func (h *LikeHandler) ToggleComment(c fiber.Ctx) error {
	return h.toggle(c, model.LikeComment, "commentId")
}

// ToggleTweet handles POST /api/v1/likes/tweet/:tweetId.
func (h *LikeHandler) ToggleTweet(c fiber.Ctx) error {
	return h.toggle(c, model.LikeTweet, "tweetId")
}

// ToggleReply handles POST /api/v1/likes/reply/:replyId.
func (h *LikeHandler) ToggleReply(c fiber.Ctx) error {
	return h.toggle(c, model.LikeReply, "replyId")
}

func (h *LikeHandler) toggle(c fiber.Ctx, target model.LikeTarget, param string) error {
	targetID, msg := middleware.ValidateID(c.Params(param), param)
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	resp, err := h.svc.Toggle(c.UserContext(), target, targetID, middleware.UserID(c))
	if err != nil {
		return middleware.Fail(c, err)
	}
	Metrics.TogglesTotal.WithLabelValues(string(target), string(resp.State)).Inc()
	return middleware.Success(c, fiber.StatusOK, resp, "like toggled successfully")
}

// LikedVideos handles GET /api/v1/likes/getall/liked.
func (h *LikeHandler) LikedVideos(c fiber.Ctx) error {
	page := fiber.Query[int](c, "page", 1)
	limit := fiber.Query[int](c, "limit", 10)

	resp, err := h.svc.LikedVideos(c.UserContext(), middleware.UserID(c), page, limit)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, resp, "liked videos fetched successfully")
}
