package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

// CatalogHandler handles treatment rooms and the service catalog.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type roomRequest struct {
	Name        string `json:"name" validate:"required,max=128"`
	Description string `json:"description" validate:"max=512"`
	Capacity    int    `json:"capacity" validate:"required,min=1"`
	Status      *bool  `json:"status"`
}

type serviceRequest struct {
	Name        string  `json:"name" validate:"required,max=128"`
	Description string  `json:"description" validate:"max=512"`
	DurationMin int     `json:"durationMin" validate:"required,min=5"`
	Price       float64 `json:"price" validate:"gte=0"`
	CategoryID  uint    `json:"categoryId" validate:"required"`
	TaxID       uint    `json:"taxId"`
	CurrencyID  uint    `json:"currencyId"`
	Status      *bool   `json:"status"`
}

// --- Rooms ---

// ListRooms returns a filtered page of treatment rooms.
//
// @Summary      List rooms
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  bool  false  "Filter by status"
// @Success      200  {object}  successResponse
// @Router       /v1/rooms [get]
func (h *CatalogHandler) ListRooms(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return err
	}
	status, err := boolQuery(c, "status")
	if err != nil {
		return err
	}
	page, err := h.service.ListRooms(c.Request().Context(), ports.RoomFilter{
		ListQuery: q,
		Status:    status,
	})
	if err != nil {
		return err
	}
	return respondPage(c, page)
}

// GetRoom returns one room.
//
// @Summary      Get a room
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Room ID"
// @Success      200  {object}  domain.Room
// @Failure      404  {object}  map[string]string
// @Router       /v1/rooms/{id} [get]
func (h *CatalogHandler) GetRoom(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	room, err := h.service.GetRoom(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, room)
}

// CreateRoom creates a treatment room.
//
// @Summary      Create a room
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  roomRequest  true  "Room"
// @Success      201  {object}  domain.Room
// @Failure      400  {object}  map[string]string
// @Router       /v1/rooms [post]
func (h *CatalogHandler) CreateRoom(c echo.Context) error {
	var req roomRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	room := &domain.Room{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		Status:      orTrue(req.Status),
	}
	if err := h.service.CreateRoom(c.Request().Context(), room); err != nil {
		return err
	}
	return respond(c, http.StatusCreated, room)
}

// UpdateRoom replaces a treatment room.
//
// @Summary      Update a room
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int          true  "Room ID"
// @Param        body  body  roomRequest  true  "Room"
// @Success      200  {object}  domain.Room
// @Failure      404  {object}  map[string]string
// @Router       /v1/rooms/{id} [put]
func (h *CatalogHandler) UpdateRoom(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req roomRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	room := &domain.Room{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		Status:      orTrue(req.Status),
	}
	if err := h.service.UpdateRoom(c.Request().Context(), room); err != nil {
		return err
	}
	return respond(c, http.StatusOK, room)
}

// DeleteRoom retires a room without upcoming bookings.
//
// @Summary      Retire a room
// @Tags         catalog
// @Security     BearerAuth
// @Param        id  path  int  true  "Room ID"
// @Success      204  "retired"
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/rooms/{id} [delete]
func (h *CatalogHandler) DeleteRoom(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteRoom(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Services ---

// ListServices returns a filtered page of the treatment catalog.
//
// @Summary      List services
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        categoryId  query  int   false  "Filter by category"
// @Param        status      query  bool  false  "Filter by status"
// @Success      200  {object}  successResponse
// @Router       /v1/services [get]
func (h *CatalogHandler) ListServices(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return err
	}
	categoryID, err := uintQuery(c, "categoryId")
	if err != nil {
		return err
	}
	status, err := boolQuery(c, "status")
	if err != nil {
		return err
	}
	page, err := h.service.ListServices(c.Request().Context(), ports.ServiceFilter{
		ListQuery:  q,
		CategoryID: categoryID,
		Status:     status,
	})
	if err != nil {
		return err
	}
	return respondPage(c, page)
}

// GetService returns one treatment.
//
// @Summary      Get a service
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Service ID"
// @Success      200  {object}  domain.Service
// @Failure      404  {object}  map[string]string
// @Router       /v1/services/{id} [get]
func (h *CatalogHandler) GetService(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	svc, err := h.service.GetService(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, svc)
}

// CreateService creates a treatment.
//
// @Summary      Create a service
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  serviceRequest  true  "Service"
// @Success      201  {object}  domain.Service
// @Failure      400  {object}  map[string]string
// @Router       /v1/services [post]
func (h *CatalogHandler) CreateService(c echo.Context) error {
	var req serviceRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	svc := &domain.Service{
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		TaxID:       req.TaxID,
		CurrencyID:  req.CurrencyID,
		Status:      orTrue(req.Status),
	}
	if err := h.service.CreateService(c.Request().Context(), svc); err != nil {
		return err
	}
	return respond(c, http.StatusCreated, svc)
}

// UpdateService replaces a treatment.
//
// @Summary      Update a service
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int             true  "Service ID"
// @Param        body  body  serviceRequest  true  "Service"
// @Success      200  {object}  domain.Service
// @Failure      404  {object}  map[string]string
// @Router       /v1/services/{id} [put]
func (h *CatalogHandler) UpdateService(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req serviceRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	svc := &domain.Service{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		TaxID:       req.TaxID,
		CurrencyID:  req.CurrencyID,
		Status:      orTrue(req.Status),
	}
	if err := h.service.UpdateService(c.Request().Context(), svc); err != nil {
		return err
	}
	return respond(c, http.StatusOK, svc)
}

// DeleteService retires a treatment without upcoming bookings.
//
// @Summary      Retire a service
// @Tags         catalog
// @Security     BearerAuth
// @Param        id  path  int  true  "Service ID"
// @Success      204  "retired"
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/services/{id} [delete]
func (h *CatalogHandler) DeleteService(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteService(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
