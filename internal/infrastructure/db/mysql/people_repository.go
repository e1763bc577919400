package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

// GuestRepository persists spa customers.
type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

func (r *GuestRepository) List(ctx context.Context, f ports.GuestFilter) ([]domain.Guest, int64, error) {
	spec := listSpec{
		Query:  f.ListQuery,
		Search: []string{"first_name", "last_name", "email", "phone"},
	}
	if f.CountryID != nil {
		spec.Where = append(spec.Where, where("country_id = ?", *f.CountryID))
	}
	if f.CityID != nil {
		spec.Where = append(spec.Where, where("city_id = ?", *f.CityID))
	}
	if f.Active != nil {
		spec.Where = append(spec.Where, where("active = ?", *f.Active))
	}
	return runList[domain.Guest](ctx, r.db, "guests", spec)
}

func (r *GuestRepository) GetByID(ctx context.Context, id uint) (*domain.Guest, error) {
	var g domain.Guest
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, translate(err, domain.ErrGuestNotFound)
	}
	return &g, nil
}

func (r *GuestRepository) Create(ctx context.Context, g *domain.Guest) error {
	return translate(r.db.WithContext(ctx).Create(g).Error, domain.ErrGuestNotFound)
}

func (r *GuestRepository) Update(ctx context.Context, g *domain.Guest) error {
	return translate(r.db.WithContext(ctx).Save(g).Error, domain.ErrGuestNotFound)
}

func (r *GuestRepository) CountByLanguage(ctx context.Context, languageID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Guest{}).
		Where("language_id = ?", languageID).Count(&n).Error
	return n, err
}

// TherapistRepository persists therapists.
type TherapistRepository struct {
	db *gorm.DB
}

func NewTherapistRepository(db *gorm.DB) *TherapistRepository {
	return &TherapistRepository{db: db}
}

func (r *TherapistRepository) List(ctx context.Context, f ports.TherapistFilter) ([]domain.Therapist, int64, error) {
	spec := listSpec{
		Query:  f.ListQuery,
		Search: []string{"first_name", "last_name", "email", "title"},
	}
	if f.Active != nil {
		spec.Where = append(spec.Where, where("active = ?", *f.Active))
	}
	return runList[domain.Therapist](ctx, r.db, "therapists", spec)
}

func (r *TherapistRepository) GetByID(ctx context.Context, id uint) (*domain.Therapist, error) {
	var t domain.Therapist
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, translate(err, domain.ErrTherapistNotFound)
	}
	return &t, nil
}

func (r *TherapistRepository) Create(ctx context.Context, t *domain.Therapist) error {
	return translate(r.db.WithContext(ctx).Create(t).Error, domain.ErrTherapistNotFound)
}

func (r *TherapistRepository) Update(ctx context.Context, t *domain.Therapist) error {
	return translate(r.db.WithContext(ctx).Save(t).Error, domain.ErrTherapistNotFound)
}
