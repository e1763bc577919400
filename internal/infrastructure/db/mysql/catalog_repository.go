package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

// RoomRepository persists treatment rooms.
type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) List(ctx context.Context, f ports.RoomFilter) ([]domain.Room, int64, error) {
	spec := listSpec{
		Query:  f.ListQuery,
		Search: []string{"name", "description"},
	}
	if f.Status != nil {
		spec.Where = append(spec.Where, where("status = ?", *f.Status))
	}
	return runList[domain.Room](ctx, r.db, "rooms", spec)
}

func (r *RoomRepository) GetByID(ctx context.Context, id uint) (*domain.Room, error) {
	var room domain.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, translate(err, domain.ErrRoomNotFound)
	}
	return &room, nil
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return translate(r.db.WithContext(ctx).Create(room).Error, domain.ErrRoomNotFound)
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	return translate(r.db.WithContext(ctx).Save(room).Error, domain.ErrRoomNotFound)
}

// ServiceRepository persists the treatment catalog.
type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) List(ctx context.Context, f ports.ServiceFilter) ([]domain.Service, int64, error) {
	spec := listSpec{
		Query:  f.ListQuery,
		Search: []string{"name", "description"},
	}
	if f.CategoryID != nil {
		spec.Where = append(spec.Where, where("category_id = ?", *f.CategoryID))
	}
	if f.Status != nil {
		spec.Where = append(spec.Where, where("status = ?", *f.Status))
	}
	return runList[domain.Service](ctx, r.db, "services", spec)
}

func (r *ServiceRepository) GetByID(ctx context.Context, id uint) (*domain.Service, error) {
	var s domain.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, translate(err, domain.ErrServiceNotFound)
	}
	return &s, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	return translate(r.db.WithContext(ctx).Create(s).Error, domain.ErrServiceNotFound)
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	return translate(r.db.WithContext(ctx).Save(s).Error, domain.ErrServiceNotFound)
}

func (r *ServiceRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	return r.countBy(ctx, "category_id = ?", categoryID)
}

func (r *ServiceRepository) CountByTax(ctx context.Context, taxID uint) (int64, error) {
	return r.countBy(ctx, "tax_id = ?", taxID)
}

func (r *ServiceRepository) CountByCurrency(ctx context.Context, currencyID uint) (int64, error) {
	return r.countBy(ctx, "currency_id = ?", currencyID)
}

func (r *ServiceRepository) countBy(ctx context.Context, cond string, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Service{}).Where(cond, id).Count(&n).Error
	return n, err
}
