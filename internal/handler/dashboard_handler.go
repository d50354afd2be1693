package handler

import (
	"time"

	"go-repair-pos/internal/service"
	"go-repair-pos/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboardStats returns the aggregate counters snapshot
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.GetDashboardStats()
	if err != nil {
		return response.FromError(c, err)
	}
	return response.OK(c, stats)
}

// GetDailyReport returns the day-bucketed sales report.
// Query params: start_date, end_date (YYYY-MM-DD), default last 30 days.
func (h *DashboardHandler) GetDailyReport(c *fiber.Ctx) error {
	var startDate, endDate *time.Time

	if raw := c.Query("start_date"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return response.Fail(c, 400, "Invalid start_date, expected YYYY-MM-DD")
		}
		startDate = &t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return response.Fail(c, 400, "Invalid end_date, expected YYYY-MM-DD")
		}
		// Include the whole end day
		t = t.Add(24*time.Hour - time.Nanosecond)
		endDate = &t
	}

	report, err := h.service.GetDailyReport(startDate, endDate)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.OK(c, report)
}
