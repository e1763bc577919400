package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

// clearDefault flips IsDefault off on every row of model matching cond,
// keeping the exclusivity invariant inside the caller's transaction.
func clearDefault(tx *gorm.DB, model any, cond string, args ...any) error {
	return tx.Model(model).Where(cond, args...).Update("is_default", false).Error
}

// CategoryRepository persists treatment categories.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context, f ports.CategoryFilter) ([]domain.Category, int64, error) {
	spec := listSpec{
		Query:  f.ListQuery,
		Search: []string{"name"},
	}
	if f.ParentID != nil {
		spec.Where = append(spec.Where, where("parent_id = ?", *f.ParentID))
	}
	if f.Status != nil {
		spec.Where = append(spec.Where, where("status = ?", *f.Status))
	}
	return runList[domain.Category](ctx, r.db, "categories", spec)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*domain.Category, error) {
	var c domain.Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err, domain.ErrCategoryNotFound)
	}
	return &c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	return translate(r.db.WithContext(ctx).Create(c).Error, domain.ErrCategoryNotFound)
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	return translate(r.db.WithContext(ctx).Save(c).Error, domain.ErrCategoryNotFound)
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Category{}, id)
	if res.Error != nil {
		return translate(res.Error, domain.ErrCategoryNotFound)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) CountChildren(ctx context.Context, parentID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Category{}).
		Where("parent_id = ?", parentID).Count(&n).Error
	return n, err
}

// CurrencyRepository persists currencies. Writes that set IsDefault clear
// the flag on sibling rows in the same transaction.
type CurrencyRepository struct {
	db *gorm.DB
}

func NewCurrencyRepository(db *gorm.DB) *CurrencyRepository {
	return &CurrencyRepository{db: db}
}

func (r *CurrencyRepository) List(ctx context.Context, f ports.CurrencyFilter) ([]domain.Currency, int64, error) {
	spec := listSpec{
		Query:  f.ListQuery,
		Search: []string{"name", "code"},
	}
	return runList[domain.Currency](ctx, r.db, "currencies", spec)
}

func (r *CurrencyRepository) GetByID(ctx context.Context, id uint) (*domain.Currency, error) {
	var c domain.Currency
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err, domain.ErrCurrencyNotFound)
	}
	return &c, nil
}

func (r *CurrencyRepository) Create(ctx context.Context, c *domain.Currency) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if c.IsDefault {
			if err := clearDefault(tx, &domain.Currency{}, "is_default = ?", true); err != nil {
				return err
			}
		}
		return tx.Create(c).Error
	})
	return translate(err, domain.ErrCurrencyNotFound)
}

func (r *CurrencyRepository) Update(ctx context.Context, c *domain.Currency) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if c.IsDefault {
			if err := clearDefault(tx, &domain.Currency{}, "is_default = ? AND id <> ?", true, c.ID); err != nil {
				return err
			}
		}
		return tx.Save(c).Error
	})
	return translate(err, domain.ErrCurrencyNotFound)
}

func (r *CurrencyRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Currency{}, id)
	if res.Error != nil {
		return translate(res.Error, domain.ErrCurrencyNotFound)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCurrencyNotFound
	}
	return nil
}

// CountryRepository persists countries; default-flag handling as for
// currencies.
type CountryRepository struct {
	db *gorm.DB
}

func NewCountryRepository(db *gorm.DB) *CountryRepository {
	return &CountryRepository{db: db}
}

func (r *CountryRepository) List(ctx context.Context, f ports.CountryFilter) ([]domain.Country, int64, error) {
	spec := listSpec{
		Query:  f.ListQuery,
		Search: []string{"name", "code"},
	}
	return runList[domain.Country](ctx, r.db, "countries", spec)
}

func (r *CountryRepository) GetByID(ctx context.Context, id uint) (*domain.Country, error) {
	var c domain.Country
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err, domain.ErrCountryNotFound)
	}
	return &c, nil
}

func (r *CountryRepository) Create(ctx context.Context, c *domain.Country) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if c.IsDefault {
			if err := clearDefault(tx, &domain.Country{}, "is_default = ?", true); err != nil {
				return err
			}
		}
		return tx.Create(c).Error
	})
	return translate(err, domain.ErrCountryNotFound)
}

func (r *CountryRepository) Update(ctx context.Context, c *domain.Country) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if c.IsDefault {
			if err := clearDefault(tx, &domain.Country{}, "is_default = ? AND id <> ?", true, c.ID); err != nil {
				return err
			}
		}
		return tx.Save(c).Error
	})
	return translate(err, domain.ErrCountryNotFound)
}

func (r *CountryRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Country{}, id)
	if res.Error != nil {
		return translate(res.Error, domain.ErrCountryNotFound)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCountryNotFound
	}
	return nil
}

// CityRepository persists cities. The default flag is scoped per country, so
// clearing only touches sibling rows of the same country.
type CityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) *CityRepository {
	return &CityRepository{db: db}
}

func (r *CityRepository) List(ctx context.Context, f ports.CityFilter) ([]domain.City, int64, error) {
	spec := listSpec{
		Query:  f.ListQuery,
		Search: []string{"name"},
	}
	if f.CountryID != nil {
		spec.Where = append(spec.Where, where("country_id = ?", *f.CountryID))
	}
	return runList[domain.City](ctx, r.db, "cities", spec)
}

func (r *CityRepository) GetByID(ctx context.Context, id uint) (*domain.City, error) {
	var c domain.City
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err, domain.ErrCityNotFound)
	}
	return &c, nil
}

func (r *CityRepository) Create(ctx context.Context, c *domain.City) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if c.IsDefault {
			if err := clearDefault(tx, &domain.City{}, "country_id = ? AND is_default = ?", c.CountryID, true); err != nil {
				return err
			}
		}
		return tx.Create(c).Error
	})
	return translate(err, domain.ErrCityNotFound)
}

func (r *CityRepository) Update(ctx context.Context, c *domain.City) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if c.IsDefault {
			if err := clearDefault(tx, &domain.City{}, "country_id = ? AND is_default = ? AND id <> ?", c.CountryID, true, c.ID); err != nil {
				return err
			}
		}
		return tx.Save(c).Error
	})
	return translate(err, domain.ErrCityNotFound)
}

func (r *CityRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.City{}, id)
	if res.Error != nil {
		return translate(res.Error, domain.ErrCityNotFound)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCityNotFound
	}
	return nil
}

func (r *CityRepository) CountByCountry(ctx context.Context, countryID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.City{}).
		Where("country_id = ?", countryID).Count(&n).Error
	return n, err
}

// LanguageRepository persists languages; default-flag handling as for
// currencies.
type LanguageRepository struct {
	db *gorm.DB
}

func NewLanguageRepository(db *gorm.DB) *LanguageRepository {
	return &LanguageRepository{db: db}
}

func (r *LanguageRepository) List(ctx context.Context, f ports.LanguageFilter) ([]domain.Language, int64, error) {
	spec := listSpec{
		Query:  f.ListQuery,
		Search: []string{"name", "code"},
	}
	return runList[domain.Language](ctx, r.db, "languages", spec)
}

func (r *LanguageRepository) GetByID(ctx context.Context, id uint) (*domain.Language, error) {
	var l domain.Language
	if err := r.db.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, translate(err, domain.ErrLanguageNotFound)
	}
	return &l, nil
}

func (r *LanguageRepository) Create(ctx context.Context, l *domain.Language) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if l.IsDefault {
			if err := clearDefault(tx, &domain.Language{}, "is_default = ?", true); err != nil {
				return err
			}
		}
		return tx.Create(l).Error
	})
	return translate(err, domain.ErrLanguageNotFound)
}

func (r *LanguageRepository) Update(ctx context.Context, l *domain.Language) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if l.IsDefault {
			if err := clearDefault(tx, &domain.Language{}, "is_default = ? AND id <> ?", true, l.ID); err != nil {
				return err
			}
		}
		return tx.Save(l).Error
	})
	return translate(err, domain.ErrLanguageNotFound)
}

func (r *LanguageRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Language{}, id)
	if res.Error != nil {
		return translate(res.Error, domain.ErrLanguageNotFound)
	}
	if res.RowsAffected == 0 {
		return domain.ErrLanguageNotFound
	}
	return nil
}

// TaxRepository persists tax rates.
type TaxRepository struct {
	db *gorm.DB
}

func NewTaxRepository(db *gorm.DB) *TaxRepository {
	return &TaxRepository{db: db}
}

func (r *TaxRepository) List(ctx context.Context, f ports.TaxFilter) ([]domain.Tax, int64, error) {
	spec := listSpec{
		Query:  f.ListQuery,
		Search: []string{"name"},
	}
	if f.Status != nil {
		spec.Where = append(spec.Where, where("status = ?", *f.Status))
	}
	return runList[domain.Tax](ctx, r.db, "taxes", spec)
}

func (r *TaxRepository) GetByID(ctx context.Context, id uint) (*domain.Tax, error) {
	var t domain.Tax
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, translate(err, domain.ErrTaxNotFound)
	}
	return &t, nil
}

func (r *TaxRepository) Create(ctx context.Context, t *domain.Tax) error {
	return translate(r.db.WithContext(ctx).Create(t).Error, domain.ErrTaxNotFound)
}

func (r *TaxRepository) Update(ctx context.Context, t *domain.Tax) error {
	return translate(r.db.WithContext(ctx).Save(t).Error, domain.ErrTaxNotFound)
}

func (r *TaxRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Tax{}, id)
	if res.Error != nil {
		return translate(res.Error, domain.ErrTaxNotFound)
	}
	if res.RowsAffected == 0 {
		return domain.ErrTaxNotFound
	}
	return nil
}
