package ports

import (
	"context"

	"github.com/serenispa/reservation-system/internal/core/domain"
)

type GuestFilter struct {
	ListQuery
	CountryID *uint
	CityID    *uint
	Active    *bool
}

type TherapistFilter struct {
	ListQuery
	Active *bool
}

// GuestRepository persists spa customers.
type GuestRepository interface {
	List(ctx context.Context, f GuestFilter) ([]domain.Guest, int64, error)
	GetByID(ctx context.Context, id uint) (*domain.Guest, error)
	Create(ctx context.Context, g *domain.Guest) error
	Update(ctx context.Context, g *domain.Guest) error
	CountByLanguage(ctx context.Context, languageID uint) (int64, error)
}

// TherapistRepository persists therapists.
type TherapistRepository interface {
	List(ctx context.Context, f TherapistFilter) ([]domain.Therapist, int64, error)
	GetByID(ctx context.Context, id uint) (*domain.Therapist, error)
	Create(ctx context.Context, t *domain.Therapist) error
	Update(ctx context.Context, t *domain.Therapist) error
}

// GuestService exposes guest use-cases; delete is a soft archive guarded by
// upcoming bookings.
type GuestService interface {
	List(ctx context.Context, f GuestFilter) (*Page[domain.Guest], error)
	Get(ctx context.Context, id uint) (*domain.Guest, error)
	Create(ctx context.Context, g *domain.Guest) error
	Update(ctx context.Context, g *domain.Guest) error
	Delete(ctx context.Context, id uint) error
}

// TherapistService exposes therapist use-cases; delete is a soft archive
// guarded by upcoming bookings.
type TherapistService interface {
	List(ctx context.Context, f TherapistFilter) (*Page[domain.Therapist], error)
	Get(ctx context.Context, id uint) (*domain.Therapist, error)
	Create(ctx context.Context, t *domain.Therapist) error
	Update(ctx context.Context, t *domain.Therapist) error
	Delete(ctx context.Context, id uint) error
}
