package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unicampus/campus-portal/internal/core/ports"
)

type DashboardHandler struct {
	dashboard ports.DashboardService
}

func NewDashboardHandler(dashboard ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Stats handles GET /v1/dashboard/stats.
//
// @Summary      Dashboard statistics
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DashboardStats
// @Router       /v1/dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	stats, err := h.dashboard.Stats(c.Request().Context(), who)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
