package handler

import (
	"github.com/gofiber/fiber/v3"

	"playtube/internal/middleware"
	"playtube/internal/service"
)

type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Stats handles GET /api/v1/dashboard/stats.
func (h *DashboardHandler) Stats(c fiber.Ctx) error {
	stats, err := h.svc.Stats(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, stats, "channel stats fetched successfully")
}

// Videos handles GET /api/v1/dashboard/videos.
func (h *DashboardHandler) Videos(c fiber.Ctx) error {
	page := fiber.Query[int](c, "page", 1)
	limit := fiber.Query[int](c, "limit", 10)

	list, err := h.svc.Videos(c.UserContext(), middleware.UserID(c), page, limit)
	if err != nil {
		return middleware.Fail(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, list, "channel videos fetched successfully")
}
