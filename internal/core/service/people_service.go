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
	guestListDefaults = ports.ListDefaults{
		Limit:  20,
		SortBy: "lastName",
		SortFields: map[string]string{
			"id": "id", "firstName": "first_name", "lastName": "last_name",
			"email": "email", "createdAt": "created_at",
		},
	}
	therapistListDefaults = ports.ListDefaults{
		Limit:  20,
		SortBy: "lastName",
		SortFields: map[string]string{
			"id": "id", "firstName": "first_name", "lastName": "last_name",
			"email": "email", "title": "title", "createdAt": "created_at",
		},
	}
)

// GuestSvc implements guest use-cases; delete is a soft archive blocked by
// upcoming bookings.
type GuestSvc struct {
	guests   ports.GuestRepository
	bookings ports.BookingRepository
	logger   zerolog.Logger
}

func NewGuestService(guests ports.GuestRepository, bookings ports.BookingRepository, logger zerolog.Logger) *GuestSvc {
	return &GuestSvc{guests: guests, bookings: bookings, logger: logger}
}

func (s *GuestSvc) List(ctx context.Context, f ports.GuestFilter) (*ports.Page[domain.Guest], error) {
	if err := f.Normalize(guestListDefaults); err != nil {
		return nil, err
	}
	items, total, err := s.guests.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return ports.NewPage(items, f.ListQuery, total), nil
}

func (s *GuestSvc) Get(ctx context.Context, id uint) (*domain.Guest, error) {
	return s.guests.GetByID(ctx, id)
}

func (s *GuestSvc) Create(ctx context.Context, g *domain.Guest) error {
	if g.FirstName == "" || g.LastName == "" {
		return fmt.Errorf("%w: first and last name are required", domain.ErrInvalidArgument)
	}
	g.Active = true
	return s.guests.Create(ctx, g)
}

func (s *GuestSvc) Update(ctx context.Context, g *domain.Guest) error {
	if g.FirstName == "" || g.LastName == "" {
		return fmt.Errorf("%w: first and last name are required", domain.ErrInvalidArgument)
	}
	if _, err := s.guests.GetByID(ctx, g.ID); err != nil {
		return err
	}
	return s.guests.Update(ctx, g)
}

func (s *GuestSvc) Delete(ctx context.Context, id uint) error {
	guest, err := s.guests.GetByID(ctx, id)
	if err != nil {
		return err
	}
	upcoming, err := s.bookings.CountUpcoming(ctx, ports.OwnerGuest, id, time.Now().UTC())
	if err != nil {
		return err
	}
	if upcoming > 0 {
		s.logger.Warn().Uint("id", id).Int64("upcoming", upcoming).Msg("guest deactivation blocked")
		return fmt.Errorf("%w: guest has upcoming bookings", domain.ErrHasDependents)
	}
	guest.Active = false
	return s.guests.Update(ctx, guest)
}

// TherapistSvc implements therapist use-cases; delete is a soft archive
// blocked by upcoming bookings.
type TherapistSvc struct {
	therapists ports.TherapistRepository
	bookings   ports.BookingRepository
	logger     zerolog.Logger
}

func NewTherapistService(therapists ports.TherapistRepository, bookings ports.BookingRepository, logger zerolog.Logger) *TherapistSvc {
	return &TherapistSvc{therapists: therapists, bookings: bookings, logger: logger}
}

func (s *TherapistSvc) List(ctx context.Context, f ports.TherapistFilter) (*ports.Page[domain.Therapist], error) {
	if err := f.Normalize(therapistListDefaults); err != nil {
		return nil, err
	}
	items, total, err := s.therapists.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return ports.NewPage(items, f.ListQuery, total), nil
}

func (s *TherapistSvc) Get(ctx context.Context, id uint) (*domain.Therapist, error) {
	return s.therapists.GetByID(ctx, id)
}

func (s *TherapistSvc) Create(ctx context.Context, t *domain.Therapist) error {
	if t.FirstName == "" || t.LastName == "" || t.Email == "" {
		return fmt.Errorf("%w: name and email are required", domain.ErrInvalidArgument)
	}
	t.Active = true
	return s.therapists.Create(ctx, t)
}

func (s *TherapistSvc) Update(ctx context.Context, t *domain.Therapist) error {
	if t.FirstName == "" || t.LastName == "" || t.Email == "" {
		return fmt.Errorf("%w: name and email are required", domain.ErrInvalidArgument)
	}
	if _, err := s.therapists.GetByID(ctx, t.ID); err != nil {
		return err
	}
	return s.therapists.Update(ctx, t)
}

func (s *TherapistSvc) Delete(ctx context.Context, id uint) error {
	therapist, err := s.therapists.GetByID(ctx, id)
	if err != nil {
		return err
	}
	upcoming, err := s.bookings.CountUpcoming(ctx, ports.OwnerTherapist, id, time.Now().UTC())
	if err != nil {
		return err
	}
	if upcoming > 0 {
		s.logger.Warn().Uint("id", id).Int64("upcoming", upcoming).Msg("therapist deactivation blocked")
		return fmt.Errorf("%w: therapist has upcoming bookings", domain.ErrHasDependents)
	}
	therapist.Active = false
	return s.therapists.Update(ctx, therapist)
}
