package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

// MasterDataHandler handles HTTP requests for the master-data entities:
// categories, currencies, countries, cities, languages and taxes.
type MasterDataHandler struct {
	service ports.MasterDataService
}

func NewMasterDataHandler(service ports.MasterDataService) *MasterDataHandler {
	return &MasterDataHandler{service: service}
}

// --- Request types ---

type categoryRequest struct {
	Name     string `json:"name" validate:"required,max=128"`
	ParentID uint   `json:"parentId"`
	ColorID  uint   `json:"colorId"`
	Status   *bool  `json:"status"`
}

type currencyRequest struct {
	Code      string `json:"code" validate:"required,len=3"`
	Name      string `json:"name" validate:"required,max=64"`
	Symbol    string `json:"symbol" validate:"max=8"`
	IsDefault bool   `json:"isDefault"`
}

type countryRequest struct {
	Name      string `json:"name" validate:"required,max=128"`
	Code      string `json:"code" validate:"required,len=2"`
	IsDefault bool   `json:"isDefault"`
}

type cityRequest struct {
	Name      string `json:"name" validate:"required,max=128"`
	CountryID uint   `json:"countryId" validate:"required"`
	IsDefault bool   `json:"isDefault"`
}

type languageRequest struct {
	Name      string `json:"name" validate:"required,max=64"`
	Code      string `json:"code" validate:"required,min=2,max=5"`
	IsDefault bool   `json:"isDefault"`
}

type taxRequest struct {
	Name   string  `json:"name" validate:"required,max=64"`
	Rate   float64 `json:"rate" validate:"gte=0,lte=100"`
	Status *bool   `json:"status"`
}

func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func orTrue(b *bool) bool {
	if b == nil {
		return true
	}
	return *b
}

// --- Categories ---

// ListCategories returns a filtered page of categories.
//
// @Summary      List categories
// @Tags         master-data
// @Produce      json
// @Security     BearerAuth
// @Param        page      query  int     false  "Page number"
// @Param        limit     query  int     false  "Page size (max 100)"
// @Param        search    query  string  false  "Substring match on name"
// @Param        parentId  query  int     false  "Filter by parent category"
// @Param        status    query  bool    false  "Filter by status"
// @Success      200  {object}  successResponse
// @Router       /v1/categories [get]
func (h *MasterDataHandler) ListCategories(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return err
	}
	parentID, err := uintQuery(c, "parentId")
	if err != nil {
		return err
	}
	status, err := boolQuery(c, "status")
	if err != nil {
		return err
	}

	page, err := h.service.ListCategories(c.Request().Context(), ports.CategoryFilter{
		ListQuery: q,
		ParentID:  parentID,
		Status:    status,
	})
	if err != nil {
		return err
	}
	return respondPage(c, page)
}

// GetCategory returns one category.
//
// @Summary      Get a category
// @Tags         master-data
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Category ID"
// @Success      200  {object}  domain.Category
// @Failure      404  {object}  map[string]string
// @Router       /v1/categories/{id} [get]
func (h *MasterDataHandler) GetCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cat, err := h.service.GetCategory(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, cat)
}

// CreateCategory creates a category.
//
// @Summary      Create a category
// @Tags         master-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  categoryRequest  true  "Category"
// @Success      201  {object}  domain.Category
// @Failure      400  {object}  map[string]string
// @Router       /v1/categories [post]
func (h *MasterDataHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	cat := &domain.Category{
		Name:     req.Name,
		ParentID: req.ParentID,
		ColorID:  req.ColorID,
		Status:   orTrue(req.Status),
	}
	if err := h.service.CreateCategory(c.Request().Context(), cat); err != nil {
		return err
	}
	return respond(c, http.StatusCreated, cat)
}

// UpdateCategory replaces a category.
//
// @Summary      Update a category
// @Tags         master-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int              true  "Category ID"
// @Param        body  body  categoryRequest  true  "Category"
// @Success      200  {object}  domain.Category
// @Failure      404  {object}  map[string]string
// @Router       /v1/categories/{id} [put]
func (h *MasterDataHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req categoryRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	cat := &domain.Category{
		ID:       id,
		Name:     req.Name,
		ParentID: req.ParentID,
		ColorID:  req.ColorID,
		Status:   orTrue(req.Status),
	}
	if err := h.service.UpdateCategory(c.Request().Context(), cat); err != nil {
		return err
	}
	return respond(c, http.StatusOK, cat)
}

// DeleteCategory deletes a category without children or services.
//
// @Summary      Delete a category
// @Tags         master-data
// @Security     BearerAuth
// @Param        id  path  int  true  "Category ID"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/categories/{id} [delete]
func (h *MasterDataHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteCategory(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Currencies ---

// ListCurrencies returns a filtered page of currencies.
//
// @Summary      List currencies
// @Tags         master-data
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Router       /v1/currencies [get]
func (h *MasterDataHandler) ListCurrencies(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return err
	}
	page, err := h.service.ListCurrencies(c.Request().Context(), ports.CurrencyFilter{ListQuery: q})
	if err != nil {
		return err
	}
	return respondPage(c, page)
}

// GetCurrency returns one currency.
//
// @Summary      Get a currency
// @Tags         master-data
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Currency ID"
// @Success      200  {object}  domain.Currency
// @Failure      404  {object}  map[string]string
// @Router       /v1/currencies/{id} [get]
func (h *MasterDataHandler) GetCurrency(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cur, err := h.service.GetCurrency(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, cur)
}

// CreateCurrency creates a currency; setting isDefault demotes the previous
// default.
//
// @Summary      Create a currency
// @Tags         master-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  currencyRequest  true  "Currency"
// @Success      201  {object}  domain.Currency
// @Failure      400  {object}  map[string]string
// @Router       /v1/currencies [post]
func (h *MasterDataHandler) CreateCurrency(c echo.Context) error {
	var req currencyRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	cur := &domain.Currency{Code: req.Code, Name: req.Name, Symbol: req.Symbol, IsDefault: req.IsDefault}
	if err := h.service.CreateCurrency(c.Request().Context(), cur); err != nil {
		return err
	}
	return respond(c, http.StatusCreated, cur)
}

// UpdateCurrency replaces a currency.
//
// @Summary      Update a currency
// @Tags         master-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int              true  "Currency ID"
// @Param        body  body  currencyRequest  true  "Currency"
// @Success      200  {object}  domain.Currency
// @Failure      404  {object}  map[string]string
// @Router       /v1/currencies/{id} [put]
func (h *MasterDataHandler) UpdateCurrency(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req currencyRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	cur := &domain.Currency{ID: id, Code: req.Code, Name: req.Name, Symbol: req.Symbol, IsDefault: req.IsDefault}
	if err := h.service.UpdateCurrency(c.Request().Context(), cur); err != nil {
		return err
	}
	return respond(c, http.StatusOK, cur)
}

// DeleteCurrency deletes a non-default, unused currency.
//
// @Summary      Delete a currency
// @Tags         master-data
// @Security     BearerAuth
// @Param        id  path  int  true  "Currency ID"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/currencies/{id} [delete]
func (h *MasterDataHandler) DeleteCurrency(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteCurrency(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Countries ---

// ListCountries returns a filtered page of countries.
//
// @Summary      List countries
// @Tags         master-data
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Router       /v1/countries [get]
func (h *MasterDataHandler) ListCountries(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return err
	}
	page, err := h.service.ListCountries(c.Request().Context(), ports.CountryFilter{ListQuery: q})
	if err != nil {
		return err
	}
	return respondPage(c, page)
}

// GetCountry returns one country.
//
// @Summary      Get a country
// @Tags         master-data
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Country ID"
// @Success      200  {object}  domain.Country
// @Failure      404  {object}  map[string]string
// @Router       /v1/countries/{id} [get]
func (h *MasterDataHandler) GetCountry(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	country, err := h.service.GetCountry(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, country)
}

// CreateCountry creates a country.
//
// @Summary      Create a country
// @Tags         master-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  countryRequest  true  "Country"
// @Success      201  {object}  domain.Country
// @Failure      400  {object}  map[string]string
// @Router       /v1/countries [post]
func (h *MasterDataHandler) CreateCountry(c echo.Context) error {
	var req countryRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	country := &domain.Country{Name: req.Name, Code: req.Code, IsDefault: req.IsDefault}
	if err := h.service.CreateCountry(c.Request().Context(), country); err != nil {
		return err
	}
	return respond(c, http.StatusCreated, country)
}

// UpdateCountry replaces a country.
//
// @Summary      Update a country
// @Tags         master-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int             true  "Country ID"
// @Param        body  body  countryRequest  true  "Country"
// @Success      200  {object}  domain.Country
// @Failure      404  {object}  map[string]string
// @Router       /v1/countries/{id} [put]
func (h *MasterDataHandler) UpdateCountry(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req countryRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	country := &domain.Country{ID: id, Name: req.Name, Code: req.Code, IsDefault: req.IsDefault}
	if err := h.service.UpdateCountry(c.Request().Context(), country); err != nil {
		return err
	}
	return respond(c, http.StatusOK, country)
}

// DeleteCountry deletes a country without cities.
//
// @Summary      Delete a country
// @Tags         master-data
// @Security     BearerAuth
// @Param        id  path  int  true  "Country ID"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/countries/{id} [delete]
func (h *MasterDataHandler) DeleteCountry(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteCountry(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListCountryCities returns the cities of one country, paginated.
//
// @Summary      List cities of a country
// @Tags         master-data
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Country ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/countries/{id}/cities [get]
func (h *MasterDataHandler) ListCountryCities(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	q, err := bindListQuery(c)
	if err != nil {
		return err
	}
	if _, err := h.service.GetCountry(c.Request().Context(), id); err != nil {
		return err
	}
	page, err := h.service.ListCities(c.Request().Context(), ports.CityFilter{
		ListQuery: q,
		CountryID: &id,
	})
	if err != nil {
		return err
	}
	return respondPage(c, page)
}

// --- Cities ---

// ListCities returns a filtered page of cities.
//
// @Summary      List cities
// @Tags         master-data
// @Produce      json
// @Security     BearerAuth
// @Param        countryId  query  int  false  "Filter by country"
// @Success      200  {object}  successResponse
// @Router       /v1/cities [get]
func (h *MasterDataHandler) ListCities(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return err
	}
	countryID, err := uintQuery(c, "countryId")
	if err != nil {
		return err
	}
	page, err := h.service.ListCities(c.Request().Context(), ports.CityFilter{
		ListQuery: q,
		CountryID: countryID,
	})
	if err != nil {
		return err
	}
	return respondPage(c, page)
}

// GetCity returns one city.
//
// @Summary      Get a city
// @Tags         master-data
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "City ID"
// @Success      200  {object}  domain.City
// @Failure      404  {object}  map[string]string
// @Router       /v1/cities/{id} [get]
func (h *MasterDataHandler) GetCity(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	city, err := h.service.GetCity(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, city)
}

// CreateCity creates a city; the default flag is scoped to its country.
//
// @Summary      Create a city
// @Tags         master-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  cityRequest  true  "City"
// @Success      201  {object}  domain.City
// @Failure      400  {object}  map[string]string
// @Router       /v1/cities [post]
func (h *MasterDataHandler) CreateCity(c echo.Context) error {
	var req cityRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	city := &domain.City{Name: req.Name, CountryID: req.CountryID, IsDefault: req.IsDefault}
	if err := h.service.CreateCity(c.Request().Context(), city); err != nil {
		return err
	}
	return respond(c, http.StatusCreated, city)
}

// UpdateCity replaces a city.
//
// @Summary      Update a city
// @Tags         master-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int          true  "City ID"
// @Param        body  body  cityRequest  true  "City"
// @Success      200  {object}  domain.City
// @Failure      404  {object}  map[string]string
// @Router       /v1/cities/{id} [put]
func (h *MasterDataHandler) UpdateCity(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req cityRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	city := &domain.City{ID: id, Name: req.Name, CountryID: req.CountryID, IsDefault: req.IsDefault}
	if err := h.service.UpdateCity(c.Request().Context(), city); err != nil {
		return err
	}
	return respond(c, http.StatusOK, city)
}

// DeleteCity deletes a city.
//
// @Summary      Delete a city
// @Tags         master-data
// @Security     BearerAuth
// @Param        id  path  int  true  "City ID"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Router       /v1/cities/{id} [delete]
func (h *MasterDataHandler) DeleteCity(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteCity(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Languages ---

// ListLanguages returns a filtered page of languages.
//
// @Summary      List languages
// @Tags         master-data
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Router       /v1/languages [get]
func (h *MasterDataHandler) ListLanguages(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return err
	}
	page, err := h.service.ListLanguages(c.Request().Context(), ports.LanguageFilter{ListQuery: q})
	if err != nil {
		return err
	}
	return respondPage(c, page)
}

// GetLanguage returns one language.
//
// @Summary      Get a language
// @Tags         master-data
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Language ID"
// @Success      200  {object}  domain.Language
// @Failure      404  {object}  map[string]string
// @Router       /v1/languages/{id} [get]
func (h *MasterDataHandler) GetLanguage(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	lang, err := h.service.GetLanguage(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, lang)
}

// CreateLanguage creates a language.
//
// @Summary      Create a language
// @Tags         master-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  languageRequest  true  "Language"
// @Success      201  {object}  domain.Language
// @Failure      400  {object}  map[string]string
// @Router       /v1/languages [post]
func (h *MasterDataHandler) CreateLanguage(c echo.Context) error {
	var req languageRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	lang := &domain.Language{Name: req.Name, Code: req.Code, IsDefault: req.IsDefault}
	if err := h.service.CreateLanguage(c.Request().Context(), lang); err != nil {
		return err
	}
	return respond(c, http.StatusCreated, lang)
}

// UpdateLanguage replaces a language.
//
// @Summary      Update a language
// @Tags         master-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int              true  "Language ID"
// @Param        body  body  languageRequest  true  "Language"
// @Success      200  {object}  domain.Language
// @Failure      404  {object}  map[string]string
// @Router       /v1/languages/{id} [put]
func (h *MasterDataHandler) UpdateLanguage(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req languageRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	lang := &domain.Language{ID: id, Name: req.Name, Code: req.Code, IsDefault: req.IsDefault}
	if err := h.service.UpdateLanguage(c.Request().Context(), lang); err != nil {
		return err
	}
	return respond(c, http.StatusOK, lang)
}

// DeleteLanguage deletes a non-default language.
//
// @Summary      Delete a language
// @Tags         master-data
// @Security     BearerAuth
// @Param        id  path  int  true  "Language ID"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/languages/{id} [delete]
func (h *MasterDataHandler) DeleteLanguage(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteLanguage(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Taxes ---

// ListTaxes returns a filtered page of tax rates.
//
// @Summary      List taxes
// @Tags         master-data
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  bool  false  "Filter by status"
// @Success      200  {object}  successResponse
// @Router       /v1/taxes [get]
func (h *MasterDataHandler) ListTaxes(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return err
	}
	status, err := boolQuery(c, "status")
	if err != nil {
		return err
	}
	page, err := h.service.ListTaxes(c.Request().Context(), ports.TaxFilter{
		ListQuery: q,
		Status:    status,
	})
	if err != nil {
		return err
	}
	return respondPage(c, page)
}

// GetTax returns one tax rate.
//
// @Summary      Get a tax
// @Tags         master-data
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Tax ID"
// @Success      200  {object}  domain.Tax
// @Failure      404  {object}  map[string]string
// @Router       /v1/taxes/{id} [get]
func (h *MasterDataHandler) GetTax(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	tax, err := h.service.GetTax(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, tax)
}

// CreateTax creates a tax rate.
//
// @Summary      Create a tax
// @Tags         master-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  taxRequest  true  "Tax"
// @Success      201  {object}  domain.Tax
// @Failure      400  {object}  map[string]string
// @Router       /v1/taxes [post]
func (h *MasterDataHandler) CreateTax(c echo.Context) error {
	var req taxRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	tax := &domain.Tax{Name: req.Name, Rate: req.Rate, Status: orTrue(req.Status)}
	if err := h.service.CreateTax(c.Request().Context(), tax); err != nil {
		return err
	}
	return respond(c, http.StatusCreated, tax)
}

// UpdateTax replaces a tax rate.
//
// @Summary      Update a tax
// @Tags         master-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int         true  "Tax ID"
// @Param        body  body  taxRequest  true  "Tax"
// @Success      200  {object}  domain.Tax
// @Failure      404  {object}  map[string]string
// @Router       /v1/taxes/{id} [put]
func (h *MasterDataHandler) UpdateTax(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req taxRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	tax := &domain.Tax{ID: id, Name: req.Name, Rate: req.Rate, Status: orTrue(req.Status)}
	if err := h.service.UpdateTax(c.Request().Context(), tax); err != nil {
		return err
	}
	return respond(c, http.StatusOK, tax)
}

// DeleteTax deletes an unused tax rate.
//
// @Summary      Delete a tax
// @Tags         master-data
// @Security     BearerAuth
// @Param        id  path  int  true  "Tax ID"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/taxes/{id} [delete]
func (h *MasterDataHandler) DeleteTax(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteTax(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
