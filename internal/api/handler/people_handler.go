package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

// GuestHandler handles spa customers.
type GuestHandler struct {
	service ports.GuestService
}

func NewGuestHandler(service ports.GuestService) *GuestHandler {
	return &GuestHandler{service: service}
}

type guestRequest struct {
	FirstName  string `json:"firstName" validate:"required,max=64"`
	LastName   string `json:"lastName" validate:"required,max=64"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"max=32"`
	CountryID  uint   `json:"countryId"`
	CityID     uint   `json:"cityId"`
	LanguageID uint   `json:"languageId"`
	Notes      string `json:"notes" validate:"max=1024"`
	Active     *bool  `json:"active"`
}

func (r guestRequest) toDomain(id uint) *domain.Guest {
	return &domain.Guest{
		ID:         id,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Phone:      r.Phone,
		CountryID:  r.CountryID,
		CityID:     r.CityID,
		LanguageID: r.LanguageID,
		Notes:      r.Notes,
		Active:     orTrue(r.Active),
	}
}

// List returns a filtered page of guests.
//
// @Summary      List guests
// @Tags         guests
// @Produce      json
// @Security     BearerAuth
// @Param        search     query  string  false  "Substring match on name, email and phone"
// @Param        countryId  query  int     false  "Filter by country"
// @Param        cityId     query  int     false  "Filter by city"
// @Param        active     query  bool    false  "Filter by active flag"
// @Success      200  {object}  successResponse
// @Router       /v1/guests [get]
func (h *GuestHandler) List(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return err
	}
	countryID, err := uintQuery(c, "countryId")
	if err != nil {
		return err
	}
	cityID, err := uintQuery(c, "cityId")
	if err != nil {
		return err
	}
	active, err := boolQuery(c, "active")
	if err != nil {
		return err
	}
	page, err := h.service.List(c.Request().Context(), ports.GuestFilter{
		ListQuery: q,
		CountryID: countryID,
		CityID:    cityID,
		Active:    active,
	})
	if err != nil {
		return err
	}
	return respondPage(c, page)
}

// Get returns one guest.
//
// @Summary      Get a guest
// @Tags         guests
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Guest ID"
// @Success      200  {object}  domain.Guest
// @Failure      404  {object}  map[string]string
// @Router       /v1/guests/{id} [get]
func (h *GuestHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	g, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, g)
}

// Create registers a guest.
//
// @Summary      Create a guest
// @Tags         guests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  guestRequest  true  "Guest"
// @Success      201  {object}  domain.Guest
// @Failure      400  {object}  map[string]string
// @Router       /v1/guests [post]
func (h *GuestHandler) Create(c echo.Context) error {
	var req guestRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	g := req.toDomain(0)
	if err := h.service.Create(c.Request().Context(), g); err != nil {
		return err
	}
	return respond(c, http.StatusCreated, g)
}

// Update replaces a guest.
//
// @Summary      Update a guest
// @Tags         guests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int           true  "Guest ID"
// @Param        body  body  guestRequest  true  "Guest"
// @Success      200  {object}  domain.Guest
// @Failure      404  {object}  map[string]string
// @Router       /v1/guests/{id} [put]
func (h *GuestHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req guestRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	g := req.toDomain(id)
	if err := h.service.Update(c.Request().Context(), g); err != nil {
		return err
	}
	return respond(c, http.StatusOK, g)
}

// Delete archives a guest without upcoming bookings.
//
// @Summary      Archive a guest
// @Tags         guests
// @Security     BearerAuth
// @Param        id  path  int  true  "Guest ID"
// @Success      204  "archived"
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/guests/{id} [delete]
func (h *GuestHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// TherapistHandler handles therapists.
type TherapistHandler struct {
	service ports.TherapistService
}

func NewTherapistHandler(service ports.TherapistService) *TherapistHandler {
	return &TherapistHandler{service: service}
}

type therapistRequest struct {
	FirstName string `json:"firstName" validate:"required,max=64"`
	LastName  string `json:"lastName" validate:"required,max=64"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"max=32"`
	Title     string `json:"title" validate:"max=64"`
	Bio       string `json:"bio" validate:"max=1024"`
	Active    *bool  `json:"active"`
}

func (r therapistRequest) toDomain(id uint) *domain.Therapist {
	return &domain.Therapist{
		ID:        id,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Title:     r.Title,
		Bio:       r.Bio,
		Active:    orTrue(r.Active),
	}
}

// List returns a filtered page of therapists.
//
// @Summary      List therapists
// @Tags         therapists
// @Produce      json
// @Security     BearerAuth
// @Param        search  query  string  false  "Substring match on name, email and title"
// @Param        active  query  bool    false  "Filter by active flag"
// @Success      200  {object}  successResponse
// @Router       /v1/therapists [get]
func (h *TherapistHandler) List(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return err
	}
	active, err := boolQuery(c, "active")
	if err != nil {
		return err
	}
	page, err := h.service.List(c.Request().Context(), ports.TherapistFilter{
		ListQuery: q,
		Active:    active,
	})
	if err != nil {
		return err
	}
	return respondPage(c, page)
}

// Get returns one therapist.
//
// @Summary      Get a therapist
// @Tags         therapists
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Therapist ID"
// @Success      200  {object}  domain.Therapist
// @Failure      404  {object}  map[string]string
// @Router       /v1/therapists/{id} [get]
func (h *TherapistHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	t, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, t)
}

// Create registers a therapist.
//
// @Summary      Create a therapist
// @Tags         therapists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  therapistRequest  true  "Therapist"
// @Success      201  {object}  domain.Therapist
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/therapists [post]
func (h *TherapistHandler) Create(c echo.Context) error {
	var req therapistRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	t := req.toDomain(0)
	if err := h.service.Create(c.Request().Context(), t); err != nil {
		return err
	}
	return respond(c, http.StatusCreated, t)
}

// Update replaces a therapist.
//
// @Summary      Update a therapist
// @Tags         therapists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int               true  "Therapist ID"
// @Param        body  body  therapistRequest  true  "Therapist"
// @Success      200  {object}  domain.Therapist
// @Failure      404  {object}  map[string]string
// @Router       /v1/therapists/{id} [put]
func (h *TherapistHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req therapistRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	t := req.toDomain(id)
	if err := h.service.Update(c.Request().Context(), t); err != nil {
		return err
	}
	return respond(c, http.StatusOK, t)
}

// Delete archives a therapist without upcoming bookings.
//
// @Summary      Archive a therapist
// @Tags         therapists
// @Security     BearerAuth
// @Param        id  path  int  true  "Therapist ID"
// @Success      204  "archived"
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/therapists/{id} [delete]
func (h *TherapistHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
