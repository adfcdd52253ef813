package handler

import (
	"github.com/gofiber/fiber/v3"

	"playtube/internal/apperr"
	"playtube/internal/middleware"
	"playtube/internal/model"
	"playtube/internal/service"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// AddToVideo handles POST /api/v1/comments/add/:videoId.
func (h *CommentHandler) AddToVideo(c fiber.Ctx) error {
	videoID, msg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}
	var req model.CommentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.Fail(c, apperr.BadRequest("invalid request body"))
	}
	content, msg := middleware.ValidateContent(req.Content)
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	comment, err := h.svc.AddToVideo(c.UserContext(), videoID, middleware.UserID(c), content)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusCreated, comment, "comment added successfully")
}

// AddToTweet handles POST /api/v1/comments/tweet/:tweetId.
func (h *CommentHandler) AddToTweet(c fiber.Ctx) error {
	tweetID, msg := middleware.ValidateID(c.Params("tweetId"), "tweetId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}
	var req model.CommentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.Fail(c, apperr.BadRequest("invalid request body"))
	}
	content, msg := middleware.ValidateContent(req.Content)
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	comment, err := h.svc.AddToTweet(c.UserContext(), tweetID, middleware.UserID(c), content)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusCreated, comment, "comment added successfully")
}

// Update handles PATCH /api/v1/comments/update/:commentId.
func (h *CommentHandler) Update(c fiber.Ctx) error {
	commentID, msg := middleware.ValidateID(c.Params("commentId"), "commentId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}
	var req model.CommentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.Fail(c, apperr.BadRequest("invalid request body"))
	}
	content, msg := middleware.ValidateContent(req.Content)
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	comment, err := h.svc.Update(c.UserContext(), commentID, middleware.UserID(c), content)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, comment, "comment updated successfully")
}

// Delete handles DELETE /api/v1/comments/delete/:commentId.
func (h *CommentHandler) Delete(c fiber.Ctx) error {
	commentID, msg := middleware.ValidateID(c.Params("commentId"), "commentId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	if err := h.svc.Delete(c.UserContext(), commentID, middleware.UserID(c)); err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, nil, "comment deleted successfully")
}

// ListForVideo handles GET /api/v1/comments/get/:videoId.
func (h *CommentHandler) ListForVideo(c fiber.Ctx) error {
	videoID, msg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	list, err := h.svc.ListForVideo(c.UserContext(), videoID)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, list, "comments fetched successfully")
}

// ListForTweet handles GET /api/v1/comments/getall/:tweetId.
func (h *CommentHandler) ListForTweet(c fiber.Ctx) error {
	tweetID, msg := middleware.ValidateID(c.Params("tweetId"), "tweetId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	list, err := h.svc.ListForTweet(c.UserContext(), tweetID)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, list, "comments fetched successfully")
}
