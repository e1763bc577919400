package ports

import (
	"context"

	"github.com/serenispa/reservation-system/internal/core/domain"
)

type RoomFilter struct {
	ListQuery
	Status *bool
}

type ServiceFilter struct {
	ListQuery
	CategoryID *uint
	Status     *bool
}

// RoomRepository persists treatment rooms.
type RoomRepository interface {
	List(ctx context.Context, f RoomFilter) ([]domain.Room, int64, error)
	GetByID(ctx context.Context, id uint) (*domain.Room, error)
	Create(ctx context.Context, r *domain.Room) error
	Update(ctx context.Context, r *domain.Room) error
}

// ServiceRepository persists the treatment catalog.
type ServiceRepository interface {
	List(ctx context.Context, f ServiceFilter) ([]domain.Service, int64, error)
	GetByID(ctx context.Context, id uint) (*domain.Service, error)
	Create(ctx context.Context, s *domain.Service) error
	Update(ctx context.Context, s *domain.Service) error
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
	CountByTax(ctx context.Context, taxID uint) (int64, error)
	CountByCurrency(ctx context.Context, currencyID uint) (int64, error)
}

// CatalogService exposes room and treatment-catalog use-cases. Deletes are
// soft (status flip) and guarded by upcoming bookings.
type CatalogService interface {
	ListRooms(ctx context.Context, f RoomFilter) (*Page[domain.Room], error)
	GetRoom(ctx context.Context, id uint) (*domain.Room, error)
	CreateRoom(ctx context.Context, r *domain.Room) error
	UpdateRoom(ctx context.Context, r *domain.Room) error
	DeleteRoom(ctx context.Context, id uint) error

	ListServices(ctx context.Context, f ServiceFilter) (*Page[domain.Service], error)
	GetService(ctx context.Context, id uint) (*domain.Service, error)
	CreateService(ctx context.Context, s *domain.Service) error
	UpdateService(ctx context.Context, s *domain.Service) error
	DeleteService(ctx context.Context, id uint) error
}
