package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/report"
)

// ReportHandler serves printable PDF reports.
type ReportHandler struct {
	schedules *report.ScheduleService
}

func NewReportHandler(schedules *report.ScheduleService) *ReportHandler {
	return &ReportHandler{schedules: schedules}
}

// Schedule renders the daily schedule PDF. Defaults to today (UTC) when no
// date is given.
//
// @Summary      Daily schedule PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        date  query  string  false  "Day to render (2006-01-02), defaults to today"
// @Success      200  {file}  binary
// @Failure      400  {object}  map[string]string
// @Router       /v1/reports/schedule [get]
func (h *ReportHandler) Schedule(c echo.Context) error {
	day := time.Now().UTC()
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return fmt.Errorf("%w: date must be formatted 2006-01-02", domain.ErrInvalidArgument)
		}
		day = parsed
	}

	pdf, err := h.schedules.DailySchedule(c.Request().Context(), day)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="schedule-%s.pdf"`, day.Format("2006-01-02")))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
