package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

var (
	categoryListDefaults = ports.ListDefaults{
		Limit:  50,
		SortBy: "name",
		SortFields: map[string]string{
			"id": "id", "name": "name", "parentId": "parent_id", "createdAt": "created_at",
		},
	}
	currencyListDefaults = ports.ListDefaults{
		Limit:  50,
		SortBy: "code",
		SortFields: map[string]string{
			"id": "id", "code": "code", "name": "name",
		},
	}
	countryListDefaults = ports.ListDefaults{
		Limit:  100,
		SortBy: "name",
		SortFields: map[string]string{
			"id": "id", "name": "name", "code": "code",
		},
	}
	cityListDefaults = ports.ListDefaults{
		Limit:  100,
		SortBy: "name",
		SortFields: map[string]string{
			"id": "id", "name": "name", "countryId": "country_id",
		},
	}
	languageListDefaults = ports.ListDefaults{
		Limit:  50,
		SortBy: "name",
		SortFields: map[string]string{
			"id": "id", "name": "name", "code": "code",
		},
	}
	taxListDefaults = ports.ListDefaults{
		Limit:  50,
		SortBy: "name",
		SortFields: map[string]string{
			"id": "id", "name": "name", "rate": "rate",
		},
	}
)

// MasterDataService implements CRUD for the master-data entities, enforcing
// default-flag exclusivity and dependent-record delete guards.
type MasterDataService struct {
	categories ports.CategoryRepository
	currencies ports.CurrencyRepository
	countries  ports.CountryRepository
	cities     ports.CityRepository
	languages  ports.LanguageRepository
	taxes      ports.TaxRepository
	hours      ports.OpeningHourRepository
	settings   ports.SettingRepository
	services   ports.ServiceRepository
	guests     ports.GuestRepository
	logger     zerolog.Logger
}

// MasterDataDeps bundles the repositories MasterDataService depends on.
type MasterDataDeps struct {
	Categories ports.CategoryRepository
	Currencies ports.CurrencyRepository
	Countries  ports.CountryRepository
	Cities     ports.CityRepository
	Languages  ports.LanguageRepository
	Taxes      ports.TaxRepository
	Hours      ports.OpeningHourRepository
	Settings   ports.SettingRepository
	Services   ports.ServiceRepository
	Guests     ports.GuestRepository
}

func NewMasterDataService(deps MasterDataDeps, logger zerolog.Logger) *MasterDataService {
	return &MasterDataService{
		categories: deps.Categories,
		currencies: deps.Currencies,
		countries:  deps.Countries,
		cities:     deps.Cities,
		languages:  deps.Languages,
		taxes:      deps.Taxes,
		hours:      deps.Hours,
		settings:   deps.Settings,
		services:   deps.Services,
		guests:     deps.Guests,
		logger:     logger,
	}
}

// deleteBlocked logs a refused delete and returns the dependents error.
func (s *MasterDataService) deleteBlocked(entity string, id uint, reason string) error {
	s.logger.Warn().Str("entity", entity).Uint("id", id).Str("reason", reason).Msg("delete blocked")
	return fmt.Errorf("%w: %s", domain.ErrHasDependents, reason)
}

// --- Categories ---

func (s *MasterDataService) ListCategories(ctx context.Context, f ports.CategoryFilter) (*ports.Page[domain.Category], error) {
	if err := f.Normalize(categoryListDefaults); err != nil {
		return nil, err
	}
	items, total, err := s.categories.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return ports.NewPage(items, f.ListQuery, total), nil
}

func (s *MasterDataService) GetCategory(ctx context.Context, id uint) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *MasterDataService) CreateCategory(ctx context.Context, c *domain.Category) error {
	if c.ParentID != 0 {
		if _, err := s.categories.GetByID(ctx, c.ParentID); err != nil {
			return fmt.Errorf("parent category: %w", err)
		}
	}
	return s.categories.Create(ctx, c)
}

func (s *MasterDataService) UpdateCategory(ctx context.Context, c *domain.Category) error {
	if _, err := s.categories.GetByID(ctx, c.ID); err != nil {
		return err
	}
	if c.ParentID != 0 {
		if c.ParentID == c.ID {
			return fmt.Errorf("%w: category cannot be its own parent", domain.ErrInvalidArgument)
		}
		if _, err := s.categories.GetByID(ctx, c.ParentID); err != nil {
			return fmt.Errorf("parent category: %w", err)
		}
	}
	return s.categories.Update(ctx, c)
}

func (s *MasterDataService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		return err
	}
	children, err := s.categories.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return s.deleteBlocked("category", id, "category has child categories")
	}
	inUse, err := s.services.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return s.deleteBlocked("category", id, "category is used by services")
	}
	return s.categories.Delete(ctx, id)
}

// --- Currencies ---

func (s *MasterDataService) ListCurrencies(ctx context.Context, f ports.CurrencyFilter) (*ports.Page[domain.Currency], error) {
	if err := f.Normalize(currencyListDefaults); err != nil {
		return nil, err
	}
	items, total, err := s.currencies.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return ports.NewPage(items, f.ListQuery, total), nil
}

func (s *MasterDataService) GetCurrency(ctx context.Context, id uint) (*domain.Currency, error) {
	return s.currencies.GetByID(ctx, id)
}

func (s *MasterDataService) CreateCurrency(ctx context.Context, c *domain.Currency) error {
	return s.currencies.Create(ctx, c)
}

func (s *MasterDataService) UpdateCurrency(ctx context.Context, c *domain.Currency) error {
	if _, err := s.currencies.GetByID(ctx, c.ID); err != nil {
		return err
	}
	return s.currencies.Update(ctx, c)
}

func (s *MasterDataService) DeleteCurrency(ctx context.Context, id uint) error {
	cur, err := s.currencies.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cur.IsDefault {
		return domain.ErrDefaultRecord
	}
	inUse, err := s.services.CountByCurrency(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return s.deleteBlocked("currency", id, "currency is used by services")
	}
	return s.currencies.Delete(ctx, id)
}

// --- Countries ---

func (s *MasterDataService) ListCountries(ctx context.Context, f ports.CountryFilter) (*ports.Page[domain.Country], error) {
	if err := f.Normalize(countryListDefaults); err != nil {
		return nil, err
	}
	items, total, err := s.countries.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return ports.NewPage(items, f.ListQuery, total), nil
}

func (s *MasterDataService) GetCountry(ctx context.Context, id uint) (*domain.Country, error) {
	return s.countries.GetByID(ctx, id)
}

func (s *MasterDataService) CreateCountry(ctx context.Context, c *domain.Country) error {
	return s.countries.Create(ctx, c)
}

func (s *MasterDataService) UpdateCountry(ctx context.Context, c *domain.Country) error {
	if _, err := s.countries.GetByID(ctx, c.ID); err != nil {
		return err
	}
	return s.countries.Update(ctx, c)
}

func (s *MasterDataService) DeleteCountry(ctx context.Context, id uint) error {
	country, err := s.countries.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if country.IsDefault {
		return domain.ErrDefaultRecord
	}
	cities, err := s.cities.CountByCountry(ctx, id)
	if err != nil {
		return err
	}
	if cities > 0 {
		return s.deleteBlocked("country", id, "country has cities")
	}
	return s.countries.Delete(ctx, id)
}

// --- Cities ---

func (s *MasterDataService) ListCities(ctx context.Context, f ports.CityFilter) (*ports.Page[domain.City], error) {
	if err := f.Normalize(cityListDefaults); err != nil {
		return nil, err
	}
	items, total, err := s.cities.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return ports.NewPage(items, f.ListQuery, total), nil
}

func (s *MasterDataService) GetCity(ctx context.Context, id uint) (*domain.City, error) {
	return s.cities.GetByID(ctx, id)
}

func (s *MasterDataService) CreateCity(ctx context.Context, c *domain.City) error {
	if _, err := s.countries.GetByID(ctx, c.CountryID); err != nil {
		return fmt.Errorf("city country: %w", err)
	}
	return s.cities.Create(ctx, c)
}

func (s *MasterDataService) UpdateCity(ctx context.Context, c *domain.City) error {
	if _, err := s.cities.GetByID(ctx, c.ID); err != nil {
		return err
	}
	if _, err := s.countries.GetByID(ctx, c.CountryID); err != nil {
		return fmt.Errorf("city country: %w", err)
	}
	return s.cities.Update(ctx, c)
}

func (s *MasterDataService) DeleteCity(ctx context.Context, id uint) error {
	if _, err := s.cities.GetByID(ctx, id); err != nil {
		return err
	}
	return s.cities.Delete(ctx, id)
}

// --- Languages ---

func (s *MasterDataService) ListLanguages(ctx context.Context, f ports.LanguageFilter) (*ports.Page[domain.Language], error) {
	if err := f.Normalize(languageListDefaults); err != nil {
		return nil, err
	}
	items, total, err := s.languages.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return ports.NewPage(items, f.ListQuery, total), nil
}

func (s *MasterDataService) GetLanguage(ctx context.Context, id uint) (*domain.Language, error) {
	return s.languages.GetByID(ctx, id)
}

func (s *MasterDataService) CreateLanguage(ctx context.Context, l *domain.Language) error {
	return s.languages.Create(ctx, l)
}

func (s *MasterDataService) UpdateLanguage(ctx context.Context, l *domain.Language) error {
	if _, err := s.languages.GetByID(ctx, l.ID); err != nil {
		return err
	}
	return s.languages.Update(ctx, l)
}

func (s *MasterDataService) DeleteLanguage(ctx context.Context, id uint) error {
	lang, err := s.languages.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lang.IsDefault {
		return domain.ErrDefaultRecord
	}
	guests, err := s.guests.CountByLanguage(ctx, id)
	if err != nil {
		return err
	}
	if guests > 0 {
		return s.deleteBlocked("language", id, "language is used by guests")
	}
	return s.languages.Delete(ctx, id)
}

// --- Taxes ---

func (s *MasterDataService) ListTaxes(ctx context.Context, f ports.TaxFilter) (*ports.Page[domain.Tax], error) {
	if err := f.Normalize(taxListDefaults); err != nil {
		return nil, err
	}
	items, total, err := s.taxes.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return ports.NewPage(items, f.ListQuery, total), nil
}

func (s *MasterDataService) GetTax(ctx context.Context, id uint) (*domain.Tax, error) {
	return s.taxes.GetByID(ctx, id)
}

func (s *MasterDataService) CreateTax(ctx context.Context, t *domain.Tax) error {
	if t.Rate < 0 || t.Rate > 100 {
		return fmt.Errorf("%w: tax rate must be between 0 and 100", domain.ErrInvalidArgument)
	}
	return s.taxes.Create(ctx, t)
}

func (s *MasterDataService) UpdateTax(ctx context.Context, t *domain.Tax) error {
	if t.Rate < 0 || t.Rate > 100 {
		return fmt.Errorf("%w: tax rate must be between 0 and 100", domain.ErrInvalidArgument)
	}
	if _, err := s.taxes.GetByID(ctx, t.ID); err != nil {
		return err
	}
	return s.taxes.Update(ctx, t)
}

func (s *MasterDataService) DeleteTax(ctx context.Context, id uint) error {
	if _, err := s.taxes.GetByID(ctx, id); err != nil {
		return err
	}
	inUse, err := s.services.CountByTax(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return s.deleteBlocked("tax", id, "tax is used by services")
	}
	return s.taxes.Delete(ctx, id)
}

// --- Opening hours ---

func (s *MasterDataService) ListOpeningHours(ctx context.Context) ([]domain.OpeningHour, error) {
	return s.hours.ListAll(ctx)
}

func (s *MasterDataService) GetOpeningHour(ctx context.Context, weekday int) (*domain.OpeningHour, error) {
	if weekday < 0 || weekday > 6 {
		return nil, fmt.Errorf("%w: weekday must be 0-6", domain.ErrInvalidArgument)
	}
	return s.hours.GetByWeekday(ctx, weekday)
}

func (s *MasterDataService) UpsertOpeningHour(ctx context.Context, h *domain.OpeningHour) error {
	if h.Weekday < 0 || h.Weekday > 6 {
		return fmt.Errorf("%w: weekday must be 0-6", domain.ErrInvalidArgument)
	}
	if !h.Closed && (h.OpensAt == "" || h.ClosesAt == "" || h.OpensAt >= h.ClosesAt) {
		return fmt.Errorf("%w: opensAt must precede closesAt", domain.ErrInvalidArgument)
	}
	return s.hours.Upsert(ctx, h)
}

// --- Settings ---

func (s *MasterDataService) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	return s.settings.ListAll(ctx)
}

func (s *MasterDataService) GetSetting(ctx context.Context, key string) (*domain.Setting, error) {
	return s.settings.GetByKey(ctx, key)
}

func (s *MasterDataService) UpsertSetting(ctx context.Context, set *domain.Setting) error {
	if set.Key == "" {
		return fmt.Errorf("%w: setting key is required", domain.ErrInvalidArgument)
	}
	return s.settings.Upsert(ctx, set)
}

func (s *MasterDataService) DeleteSetting(ctx context.Context, key string) error {
	if _, err := s.settings.GetByKey(ctx, key); err != nil {
		return err
	}
	return s.settings.Delete(ctx, key)
}
