package handler

import (
	"github.com/gofiber/fiber/v3"

	"playtube/internal/apperr"
	"playtube/internal/middleware"
	"playtube/internal/service"
)

type SubscriptionHandler struct {
	svc *service.SubscriptionService
}

func NewSubscriptionHandler(svc *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc}
}

// Toggle handles POST /api/v1/subscriptions/:channelId.
func (h *SubscriptionHandler) Toggle(c fiber.Ctx) error {
	channelID, msg := middleware.ValidateID(c.Params("channelId"), "channelId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	resp, err := h.svc.Toggle(c.UserContext(), middleware.UserID(c), channelID)
	if err != nil {
		return middleware.Fail(c, err)
	}
	Metrics.TogglesTotal.WithLabelValues("subscription", string(resp.State)).Inc()
	return middleware.Success(c, fiber.StatusOK, resp, "subscription toggled successfully")
}

// Subscribers handles GET /api/v1/subscriptions/:channelId. Only the channel
// owner may list their subscribers.
func (h *SubscriptionHandler) Subscribers(c fiber.Ctx) error {
	channelID, msg := middleware.ValidateID(c.Params("channelId"), "channelId")
	if msg != "" {
		return middleware.Fail(c, apperr.BadRequest(msg))
	}

	resp, err := h.svc.Subscribers(c.UserContext(), middleware.UserID(c), channelID)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, resp, "subscribers fetched successfully")
}

// SubscribedChannels handles GET /api/v1/subscriptions/channels/subscribed-channels.
func (h *SubscriptionHandler) SubscribedChannels(c fiber.Ctx) error {
	resp, err := h.svc.SubscribedChannels(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, resp, "subscribed channels fetched successfully")
}
