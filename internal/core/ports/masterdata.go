package ports

import (
	"context"

	"github.com/serenispa/reservation-system/internal/core/domain"
)

// Filters for master-data list endpoints. Each embeds ListQuery and adds
// the entity's equality filters; nil pointer means "not filtered".

type CategoryFilter struct {
	ListQuery
	ParentID *uint
	Status   *bool
}

type CurrencyFilter struct {
	ListQuery
}

type CountryFilter struct {
	ListQuery
}

type CityFilter struct {
	ListQuery
	CountryID *uint
}

type LanguageFilter struct {
	ListQuery
}

type TaxFilter struct {
	ListQuery
	Status *bool
}

// CategoryRepository persists treatment categories.
type CategoryRepository interface {
	List(ctx context.Context, f CategoryFilter) ([]domain.Category, int64, error)
	GetByID(ctx context.Context, id uint) (*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) error
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id uint) error
	CountChildren(ctx context.Context, parentID uint) (int64, error)
}

// CurrencyRepository persists currencies. Create and Update clear the
// default flag on sibling rows in the same transaction when IsDefault is set.
type CurrencyRepository interface {
	List(ctx context.Context, f CurrencyFilter) ([]domain.Currency, int64, error)
	GetByID(ctx context.Context, id uint) (*domain.Currency, error)
	Create(ctx context.Context, c *domain.Currency) error
	Update(ctx context.Context, c *domain.Currency) error
	Delete(ctx context.Context, id uint) error
}

// CountryRepository persists countries; default-flag handling as for currencies.
type CountryRepository interface {
	List(ctx context.Context, f CountryFilter) ([]domain.Country, int64, error)
	GetByID(ctx context.Context, id uint) (*domain.Country, error)
	Create(ctx context.Context, c *domain.Country) error
	Update(ctx context.Context, c *domain.Country) error
	Delete(ctx context.Context, id uint) error
}

// CityRepository persists cities; the default flag is scoped per country.
type CityRepository interface {
	List(ctx context.Context, f CityFilter) ([]domain.City, int64, error)
	GetByID(ctx context.Context, id uint) (*domain.City, error)
	Create(ctx context.Context, c *domain.City) error
	Update(ctx context.Context, c *domain.City) error
	Delete(ctx context.Context, id uint) error
	CountByCountry(ctx context.Context, countryID uint) (int64, error)
}

// LanguageRepository persists languages; default-flag handling as for currencies.
type LanguageRepository interface {
	List(ctx context.Context, f LanguageFilter) ([]domain.Language, int64, error)
	GetByID(ctx context.Context, id uint) (*domain.Language, error)
	Create(ctx context.Context, l *domain.Language) error
	Update(ctx context.Context, l *domain.Language) error
	Delete(ctx context.Context, id uint) error
}

// TaxRepository persists tax rates.
type TaxRepository interface {
	List(ctx context.Context, f TaxFilter) ([]domain.Tax, int64, error)
	GetByID(ctx context.Context, id uint) (*domain.Tax, error)
	Create(ctx context.Context, t *domain.Tax) error
	Update(ctx context.Context, t *domain.Tax) error
	Delete(ctx context.Context, id uint) error
}

// OpeningHourRepository persists the weekly business schedule.
type OpeningHourRepository interface {
	ListAll(ctx context.Context) ([]domain.OpeningHour, error)
	GetByWeekday(ctx context.Context, weekday int) (*domain.OpeningHour, error)
	Upsert(ctx context.Context, h *domain.OpeningHour) error
}

// SettingRepository persists free-form configuration items.
type SettingRepository interface {
	ListAll(ctx context.Context) ([]domain.Setting, error)
	GetByKey(ctx context.Context, key string) (*domain.Setting, error)
	Upsert(ctx context.Context, s *domain.Setting) error
	Delete(ctx context.Context, key string) error
}

// MasterDataService exposes the CRUD use-cases for all master-data
// entities, including delete guards and default-flag exclusivity.
type MasterDataService interface {
	ListCategories(ctx context.Context, f CategoryFilter) (*Page[domain.Category], error)
	GetCategory(ctx context.Context, id uint) (*domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) error
	UpdateCategory(ctx context.Context, c *domain.Category) error
	DeleteCategory(ctx context.Context, id uint) error

	ListCurrencies(ctx context.Context, f CurrencyFilter) (*Page[domain.Currency], error)
	GetCurrency(ctx context.Context, id uint) (*domain.Currency, error)
	CreateCurrency(ctx context.Context, c *domain.Currency) error
	UpdateCurrency(ctx context.Context, c *domain.Currency) error
	DeleteCurrency(ctx context.Context, id uint) error

	ListCountries(ctx context.Context, f CountryFilter) (*Page[domain.Country], error)
	GetCountry(ctx context.Context, id uint) (*domain.Country, error)
	CreateCountry(ctx context.Context, c *domain.Country) error
	UpdateCountry(ctx context.Context, c *domain.Country) error
	DeleteCountry(ctx context.Context, id uint) error

	ListCities(ctx context.Context, f CityFilter) (*Page[domain.City], error)
	GetCity(ctx context.Context, id uint) (*domain.City, error)
	CreateCity(ctx context.Context, c *domain.City) error
	UpdateCity(ctx context.Context, c *domain.City) error
	DeleteCity(ctx context.Context, id uint) error

	ListLanguages(ctx context.Context, f LanguageFilter) (*Page[domain.Language], error)
	GetLanguage(ctx context.Context, id uint) (*domain.Language, error)
	CreateLanguage(ctx context.Context, l *domain.Language) error
	UpdateLanguage(ctx context.Context, l *domain.Language) error
	DeleteLanguage(ctx context.Context, id uint) error

	ListTaxes(ctx context.Context, f TaxFilter) (*Page[domain.Tax], error)
	GetTax(ctx context.Context, id uint) (*domain.Tax, error)
	CreateTax(ctx context.Context, t *domain.Tax) error
	UpdateTax(ctx context.Context, t *domain.Tax) error
	DeleteTax(ctx context.Context, id uint) error

	ListOpeningHours(ctx context.Context) ([]domain.OpeningHour, error)
	GetOpeningHour(ctx context.Context, weekday int) (*domain.OpeningHour, error)
	UpsertOpeningHour(ctx context.Context, h *domain.OpeningHour) error

	ListSettings(ctx context.Context) ([]domain.Setting, error)
	GetSetting(ctx context.Context, key string) (*domain.Setting, error)
	UpsertSetting(ctx context.Context, s *domain.Setting) error
	DeleteSetting(ctx context.Context, key string) error
}
