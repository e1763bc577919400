package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

// BookingHandler handles reservation operations.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type createBookingRequest struct {
	GuestID     uint      `json:"guestId" validate:"required"`
	RoomID      uint      `json:"roomId" validate:"required"`
	ServiceID   uint      `json:"serviceId" validate:"required"`
	TherapistID uint      `json:"therapistId" validate:"required"`
	StartsAt    time.Time `json:"startsAt" validate:"required"`
	Notes       string    `json:"notes" validate:"max=1024"`
}

type updateBookingRequest struct {
	Notes string `json:"notes" validate:"max=1024"`
}

type changeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=reserved confirmed in_progress completed cancelled no_show"`
	Notes  string `json:"notes" validate:"max=512"`
}

type bookingDetailResponse struct {
	domain.Booking
	Events []domain.BookingEvent `json:"events"`
}

// timeQuery parses an optional date ("2006-01-02") or RFC 3339 timestamp.
func timeQuery(c echo.Context, name string) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a date or RFC 3339 timestamp", domain.ErrInvalidArgument, name)
	}
	return t.UTC(), nil
}

// List returns a filtered page of bookings.
//
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        status       query  string  false  "Filter by status"
// @Param        guestId      query  int     false  "Filter by guest"
// @Param        roomId       query  int     false  "Filter by room"
// @Param        therapistId  query  int     false  "Filter by therapist"
// @Param        dateFrom     query  string  false  "startsAt lower bound (date or RFC 3339)"
// @Param        dateTo       query  string  false  "startsAt upper bound (date or RFC 3339)"
// @Success      200  {object}  successResponse
// @Failure      400  {object}  map[string]string
// @Router       /v1/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return err
	}
	guestID, err := uintQuery(c, "guestId")
	if err != nil {
		return err
	}
	roomID, err := uintQuery(c, "roomId")
	if err != nil {
		return err
	}
	therapistID, err := uintQuery(c, "therapistId")
	if err != nil {
		return err
	}
	dateFrom, err := timeQuery(c, "dateFrom")
	if err != nil {
		return err
	}
	dateTo, err := timeQuery(c, "dateTo")
	if err != nil {
		return err
	}

	page, err := h.service.List(c.Request().Context(), ports.BookingFilter{
		ListQuery:   q,
		Status:      c.QueryParam("status"),
		GuestID:     guestID,
		RoomID:      roomID,
		TherapistID: therapistID,
		DateFrom:    dateFrom,
		DateTo:      dateTo,
	})
	if err != nil {
		return err
	}
	return respondPage(c, page)
}

// Get returns one booking with its audit trail.
//
// @Summary      Get a booking by reference
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        reference  path  string  true  "Booking reference (e.g. SPA-7A8B9C2D)"
// @Success      200  {object}  bookingDetailResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/bookings/{reference} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	detail, err := h.service.GetByReference(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, bookingDetailResponse{
		Booking: detail.Booking,
		Events:  detail.Events,
	})
}

// Create places a reservation.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  createBookingRequest  true  "Booking details"
// @Success      201  {object}  domain.Booking
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	booking, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		GuestID:     req.GuestID,
		RoomID:      req.RoomID,
		ServiceID:   req.ServiceID,
		TherapistID: req.TherapistID,
		StartsAt:    req.StartsAt.UTC(),
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, booking)
}

// Update changes the free-form notes of a booking.
//
// @Summary      Update booking notes
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        reference  path  string                true  "Booking reference"
// @Param        body       body  updateBookingRequest  true  "Notes"
// @Success      200  {object}  domain.Booking
// @Failure      404  {object}  map[string]string
// @Router       /v1/bookings/{reference} [put]
func (h *BookingHandler) Update(c echo.Context) error {
	var req updateBookingRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	booking, err := h.service.UpdateNotes(c.Request().Context(), c.Param("reference"), req.Notes)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, booking)
}

// ChangeStatus applies one state-machine transition to a booking.
//
// @Summary      Change booking status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        reference  path  string               true  "Booking reference"
// @Param        body       body  changeStatusRequest  true  "Target status"
// @Success      200  {object}  domain.Booking
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/bookings/{reference}/status [patch]
func (h *BookingHandler) ChangeStatus(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req changeStatusRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	booking, err := h.service.ChangeStatus(c.Request().Context(), ports.StatusChangeInput{
		Reference: c.Param("reference"),
		Status:    domain.BookingStatus(req.Status),
		Actor:     username,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, booking)
}
