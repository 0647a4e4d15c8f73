package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/repair-dashboard/internal/api/dto"
	"github.com/spec-kit/repair-dashboard/internal/service"
)

// DashboardHandler serves the landing-page card stats.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Summary GET /dashboard/summary.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.dashboard.LoadSummary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.SummaryResponse{
		TotalUsers:   summary.TotalUsers,
		TotalOrders:  summary.TotalOrders,
		StatusCounts: summary.StatusCounts,
	}})
}
