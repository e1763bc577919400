package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

var (
	roomListDefaults = ports.ListDefaults{
		Limit:  20,
		SortBy: "name",
		SortFields: map[string]string{
			"id": "id", "name": "name", "capacity": "capacity", "createdAt": "created_at",
		},
	}
	serviceListDefaults = ports.ListDefaults{
		Limit:  20,
		SortBy: "name",
		SortFields: map[string]string{
			"id": "id", "name": "name", "price": "price",
			"durationMin": "duration_min", "createdAt": "created_at",
		},
	}
)

// CatalogService implements room and treatment-catalog use-cases. Deletes
// are soft (status flip) and blocked while upcoming bookings reference the
// record.
type CatalogService struct {
	rooms      ports.RoomRepository
	services   ports.ServiceRepository
	categories ports.CategoryRepository
	taxes      ports.TaxRepository
	currencies ports.CurrencyRepository
	bookings   ports.BookingRepository
	logger     zerolog.Logger
}

// CatalogDeps bundles the repositories CatalogService depends on.
type CatalogDeps struct {
	Rooms      ports.RoomRepository
	Services   ports.ServiceRepository
	Categories ports.CategoryRepository
	Taxes      ports.TaxRepository
	Currencies ports.CurrencyRepository
	Bookings   ports.BookingRepository
}

func NewCatalogService(deps CatalogDeps, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		rooms:      deps.Rooms,
		services:   deps.Services,
		categories: deps.Categories,
		taxes:      deps.Taxes,
		currencies: deps.Currencies,
		bookings:   deps.Bookings,
		logger:     logger,
	}
}

// --- Rooms ---

func (s *CatalogService) ListRooms(ctx context.Context, f ports.RoomFilter) (*ports.Page[domain.Room], error) {
	if err := f.Normalize(roomListDefaults); err != nil {
		return nil, err
	}
	items, total, err := s.rooms.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return ports.NewPage(items, f.ListQuery, total), nil
}

func (s *CatalogService) GetRoom(ctx context.Context, id uint) (*domain.Room, error) {
	return s.rooms.GetByID(ctx, id)
}

func (s *CatalogService) CreateRoom(ctx context.Context, r *domain.Room) error {
	if r.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be >= 1", domain.ErrInvalidArgument)
	}
	return s.rooms.Create(ctx, r)
}

func (s *CatalogService) UpdateRoom(ctx context.Context, r *domain.Room) error {
	if r.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be >= 1", domain.ErrInvalidArgument)
	}
	if _, err := s.rooms.GetByID(ctx, r.ID); err != nil {
		return err
	}
	return s.rooms.Update(ctx, r)
}

// DeleteRoom retires the room unless upcoming bookings still reference it.
func (s *CatalogService) DeleteRoom(ctx context.Context, id uint) error {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return err
	}
	upcoming, err := s.bookings.CountUpcoming(ctx, ports.OwnerRoom, id, time.Now().UTC())
	if err != nil {
		return err
	}
	if upcoming > 0 {
		s.logger.Warn().Uint("id", id).Int64("upcoming", upcoming).Msg("room delete blocked")
		return fmt.Errorf("%w: room has upcoming bookings", domain.ErrHasDependents)
	}
	room.Status = false
	return s.rooms.Update(ctx, room)
}

// --- Services ---

func (s *CatalogService) ListServices(ctx context.Context, f ports.ServiceFilter) (*ports.Page[domain.Service], error) {
	if err := f.Normalize(serviceListDefaults); err != nil {
		return nil, err
	}
	items, total, err := s.services.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return ports.NewPage(items, f.ListQuery, total), nil
}

func (s *CatalogService) GetService(ctx context.Context, id uint) (*domain.Service, error) {
	return s.services.GetByID(ctx, id)
}

func (s *CatalogService) CreateService(ctx context.Context, svc *domain.Service) error {
	if err := s.validateService(ctx, svc); err != nil {
		return err
	}
	return s.services.Create(ctx, svc)
}

func (s *CatalogService) UpdateService(ctx context.Context, svc *domain.Service) error {
	if _, err := s.services.GetByID(ctx, svc.ID); err != nil {
		return err
	}
	if err := s.validateService(ctx, svc); err != nil {
		return err
	}
	return s.services.Update(ctx, svc)
}

// DeleteService deactivates the service unless upcoming bookings still
// reference it.
func (s *CatalogService) DeleteService(ctx context.Context, id uint) error {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return err
	}
	upcoming, err := s.bookings.CountUpcoming(ctx, ports.OwnerService, id, time.Now().UTC())
	if err != nil {
		return err
	}
	if upcoming > 0 {
		s.logger.Warn().Uint("id", id).Int64("upcoming", upcoming).Msg("service delete blocked")
		return fmt.Errorf("%w: service has upcoming bookings", domain.ErrHasDependents)
	}
	svc.Status = false
	return s.services.Update(ctx, svc)
}

func (s *CatalogService) validateService(ctx context.Context, svc *domain.Service) error {
	if svc.DurationMin < 5 {
		return fmt.Errorf("%w: duration must be at least 5 minutes", domain.ErrInvalidArgument)
	}
	if svc.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidArgument)
	}
	if _, err := s.categories.GetByID(ctx, svc.CategoryID); err != nil {
		return fmt.Errorf("service category: %w", err)
	}
	if svc.TaxID != 0 {
		if _, err := s.taxes.GetByID(ctx, svc.TaxID); err != nil {
			return fmt.Errorf("service tax: %w", err)
		}
	}
	if svc.CurrencyID != 0 {
		if _, err := s.currencies.GetByID(ctx, svc.CurrencyID); err != nil {
			return fmt.Errorf("service currency: %w", err)
		}
	}
	return nil
}
