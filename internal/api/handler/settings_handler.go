package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

// SettingsHandler handles the weekly opening hours and the free-form
// configuration items.
type SettingsHandler struct {
	service ports.MasterDataService
}

func NewSettingsHandler(service ports.MasterDataService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

type openingHourRequest struct {
	Weekday  int    `json:"weekday"  validate:"gte=0,lte=6"`
	OpensAt  string `json:"opensAt"  validate:"omitempty,len=5"`
	ClosesAt string `json:"closesAt" validate:"omitempty,len=5"`
	Closed   bool   `json:"closed"`
}

type settingRequest struct {
	Key   string `json:"key"   validate:"required,max=64"`
	Value string `json:"value" validate:"max=1024"`
}

// ListOpeningHours returns the weekly schedule ordered by weekday.
//
// @Summary      List opening hours
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Router       /v1/opening-hours [get]
func (h *SettingsHandler) ListOpeningHours(c echo.Context) error {
	hours, err := h.service.ListOpeningHours(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, hours)
}

// GetOpeningHour returns a single weekday's schedule.
//
// @Summary      Get opening hours for a weekday
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Param        weekday  path  int  true  "Weekday (0=Sunday..6=Saturday)"
// @Success      200  {object}  domain.OpeningHour
// @Failure      404  {object}  map[string]string
// @Router       /v1/opening-hours/{weekday} [get]
func (h *SettingsHandler) GetOpeningHour(c echo.Context) error {
	weekday, err := strconv.Atoi(c.Param("weekday"))
	if err != nil {
		return fmt.Errorf("%w: weekday must be a number", domain.ErrInvalidArgument)
	}
	hour, err := h.service.GetOpeningHour(c.Request().Context(), weekday)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, hour)
}

// UpsertOpeningHour creates or replaces one weekday's schedule.
//
// @Summary      Set opening hours for a weekday
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  openingHourRequest  true  "Weekday schedule"
// @Success      200  {object}  domain.OpeningHour
// @Failure      400  {object}  map[string]string
// @Router       /v1/opening-hours [put]
func (h *SettingsHandler) UpsertOpeningHour(c echo.Context) error {
	var req openingHourRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	hour := &domain.OpeningHour{
		Weekday:  req.Weekday,
		OpensAt:  req.OpensAt,
		ClosesAt: req.ClosesAt,
		Closed:   req.Closed,
	}
	if err := h.service.UpsertOpeningHour(c.Request().Context(), hour); err != nil {
		return err
	}
	return respond(c, http.StatusOK, hour)
}

// ListSettings returns all configuration items.
//
// @Summary      List settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Router       /v1/settings [get]
func (h *SettingsHandler) ListSettings(c echo.Context) error {
	items, err := h.service.ListSettings(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, items)
}

// GetSetting returns one configuration item by key.
//
// @Summary      Get a setting
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Param        key  path  string  true  "Setting key"
// @Success      200  {object}  domain.Setting
// @Failure      404  {object}  map[string]string
// @Router       /v1/settings/{key} [get]
func (h *SettingsHandler) GetSetting(c echo.Context) error {
	s, err := h.service.GetSetting(c.Request().Context(), c.Param("key"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, s)
}

// UpsertSetting creates or replaces a configuration item.
//
// @Summary      Set a setting
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  settingRequest  true  "Setting"
// @Success      200  {object}  domain.Setting
// @Failure      400  {object}  map[string]string
// @Router       /v1/settings [put]
func (h *SettingsHandler) UpsertSetting(c echo.Context) error {
	var req settingRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	s := &domain.Setting{Key: req.Key, Value: req.Value}
	if err := h.service.UpsertSetting(c.Request().Context(), s); err != nil {
		return err
	}
	return respond(c, http.StatusOK, s)
}

// DeleteSetting removes a configuration item.
//
// @Summary      Delete a setting
// @Tags         settings
// @Security     BearerAuth
// @Param        key  path  string  true  "Setting key"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Router       /v1/settings/{key} [delete]
func (h *SettingsHandler) DeleteSetting(c echo.Context) error {
	if err := h.service.DeleteSetting(c.Request().Context(), c.Param("key")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
