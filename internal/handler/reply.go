package handler

import (
	"github.com/gofiber/fiber/v3"

	"playtube/internal/apperr"
	"playtube/internal/middleware"
	"playtube/internal/model"
	"playtube/internal/service"
)

type ReplyHandler struct {
	svc *service.ReplyService
}

func NewReplyHandler(svc *service.ReplyService) *ReplyHandler {
	return &ReplyHandler{svc: svc}
}

// Create handles POST /api/v1/replies/comment/:commentId.
func (h *ReplyHandler) Create(c fiber.Ctx) error {
	commentID, msg := middleware.ValidateID(c.Params("commentId"), "commentId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}
	var req model.ReplyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.Fail(c, apperr.BadRequest("invalid request body"))
	}
	content, msg := middleware.ValidateContent(req.Content)
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	reply, err := h.svc.Create(c.UserContext(), commentID, middleware.UserID(c), content)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusCreated, reply, "reply added successfully")
}

// Update handles PATCH /api/v1/replies/update/:replyId.
func (h *ReplyHandler) Update(c fiber.Ctx) error {
	replyID, msg := middleware.ValidateID(c.Params("replyId"), "replyId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}
	var req model.ReplyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.Fail(c, apperr.BadRequest("invalid request body"))
	}
	content, msg := middleware.ValidateContent(req.Content)
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	reply, err := h.svc.Update(c.UserContext(), replyID, middleware.UserID(c), content)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, reply, "reply updated successfully")
}

// Delete handles DELETE /api/v1/replies/delete/:replyId.
func (h *ReplyHandler) Delete(c fiber.Ctx) error {
	replyID, msg := middleware.ValidateID(c.Params("replyId"), "replyId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	if err := h.svc.Delete(c.UserContext(), replyID, middleware.UserID(c)); err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, nil, "reply deleted successfully")
}

// ListForComment handles GET /api/v1/replies/get/:commentId.
func (h *ReplyHandler) ListForComment(c fiber.Ctx) error {
	commentID, msg := middleware.ValidateID(c.Params("commentId"), "commentId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	replies, err := h.svc.ListForComment(c.UserContext(), commentID)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, replies, "replies fetched successfully")
}
