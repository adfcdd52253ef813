package handler

import (
	"github.com/gofiber/fiber/v3"

	"playtube/internal/apperr"
	"playtube/internal/middleware"
	"playtube/internal/model"
	"playtube/internal/service"
)

type TweetHandler struct {
	svc *service.TweetService
}

func NewTweetHandler(svc *service.TweetService) *TweetHandler {
	return &TweetHandler{svc: svc}
}

// Create handles POST /api/v1/tweets/create.
func (h *TweetHandler) Create(c fiber.Ctx) error {
	var req model.TweetRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.Fail(c, apperr.BadRequest("invalid request body"))
	}
	content, msg := middleware.ValidateContent(req.Content)
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	tweet, err := h.svc.Create(c.UserContext(), middleware.UserID(c), content)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusCreated, tweet, "tweet created successfully")
}

// ListForUser handles GET /api/v1/tweets/get/:userId.
func (h *TweetHandler) ListForUser(c fiber.Ctx) error {
	userID, msg := middleware.ValidateID(c.Params("userId"), "userId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	tweets, err := h.svc.ListForUser(c.UserContext(), userID)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, tweets, "tweets fetched successfully")
}

// Update handles PATCH /api/v1/tweets/update/:tweetId.
func (h *TweetHandler) Update(c fiber.Ctx) error {
	tweetID, msg := middleware.ValidateID(c.Params("tweetId"), "tweetId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}
	var req model.TweetRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.Fail(c, apperr.BadRequest("invalid request body"))
	}
	content, msg := middleware.ValidateContent(req.Content)
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	tweet, err := h.svc.Update(c.UserContext(), tweetID, middleware.UserID(c), content)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, tweet, "tweet updated successfully")
}

// Delete handles DELETE /api/v1/tweets/delete/:tweetId.
func (h *TweetHandler) Delete(c fiber.Ctx) error {
	tweetID, msg := middleware.ValidateID(c.Params("tweetId"), "tweetId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	if err := h.svc.Delete(c.UserContext(), tweetID, middleware.UserID(c)); err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, nil, "tweet deleted successfully")
}
