package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/serenispa/reservation-system/internal/core/ports"
)

// DashboardHandler serves the admin landing-page snapshot.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary returns today's booking counts and the active record totals.
//
// @Summary      Dashboard summary
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardSummary
// @Failure      401  {object}  map[string]string
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	summary, err := h.service.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, summary)
}
