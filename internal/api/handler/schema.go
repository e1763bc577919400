package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

// successResponse is the canonical envelope for all 2xx responses.
// Pagination is present on list responses only.
type successResponse struct {
	Success    bool              `json:"success"`
	Data       any               `json:"data"`
	Pagination *ports.Pagination `json:"pagination,omitempty"`
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, successResponse{Success: true, Data: data})
}

func respondPage[T any](c echo.Context, page *ports.Page[T]) error {
	return c.JSON(http.StatusOK, successResponse{
		Success:    true,
		Data:       page.Items,
		Pagination: &page.Pagination,
	})
}

// bindListQuery reads the shared pagination/search/sort query parameters.
// Validation of ranges and sort fields happens in the service's Normalize.
func bindListQuery(c echo.Context) (ports.ListQuery, error) {
	q := ports.ListQuery{
		Search:    c.QueryParam("search"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}
	var err error
	if q.Page, err = intQuery(c, "page"); err != nil {
		return q, err
	}
	if q.Limit, err = intQuery(c, "limit"); err != nil {
		return q, err
	}
	return q, nil
}

func intQuery(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidArgument, name)
	}
	return n, nil
}

// uintQuery returns nil when the parameter is absent, for optional ID filters.
func uintQuery(c echo.Context, name string) (*uint, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a positive number", domain.ErrInvalidArgument, name)
	}
	v := uint(n)
	return &v, nil
}

// boolQuery returns nil when the parameter is absent, for optional flag filters.
func boolQuery(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidArgument, name)
	}
	return &v, nil
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%w: %s must be a positive number", domain.ErrInvalidArgument, name)
	}
	return uint(n), nil
}
