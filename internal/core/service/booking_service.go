package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/serenispa/reservation-system/internal/api/metrics"
	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

var bookingListDefaults = ports.ListDefaults{
	Limit:  20,
	SortBy: "startsAt",
	SortFields: map[string]string{
		"id":        "id",
		"reference": "reference",
		"startsAt":  "starts_at",
		"status":    "status",
		"createdAt": "created_at",
	},
}

// BookingService implements reservation use-cases. Slot-overlap resolution
// is out of scope; bookings are recorded as submitted.
type BookingService struct {
	bookings   ports.BookingRepository
	guests     ports.GuestRepository
	rooms      ports.RoomRepository
	services   ports.ServiceRepository
	therapists ports.TherapistRepository
	logger     zerolog.Logger
	now        func() time.Time
}

func NewBookingService(
	bookings ports.BookingRepository,
	guests ports.GuestRepository,
	rooms ports.RoomRepository,
	services ports.ServiceRepository,
	therapists ports.TherapistRepository,
	logger zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings:   bookings,
		guests:     guests,
		rooms:      rooms,
		services:   services,
		therapists: therapists,
		logger:     logger,
		now:        time.Now,
	}
}

// Create validates the referenced records, derives the end time from the
// service duration, and persists the booking with a fresh reference.
func (s *BookingService) Create(ctx context.Context, in ports.CreateBookingInput) (*domain.Booking, error) {
	if in.StartsAt.IsZero() {
		return nil, fmt.Errorf("%w: startsAt is required", domain.ErrInvalidArgument)
	}

	guest, err := s.guests.GetByID(ctx, in.GuestID)
	if err != nil {
		return nil, err
	}
	if !guest.Active {
		return nil, fmt.Errorf("%w: guest is archived", domain.ErrInvalidArgument)
	}

	room, err := s.rooms.GetByID(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}
	if !room.Status {
		return nil, fmt.Errorf("%w: room is retired", domain.ErrInvalidArgument)
	}

	svc, err := s.services.GetByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.Status {
		return nil, fmt.Errorf("%w: service is inactive", domain.ErrInvalidArgument)
	}

	therapist, err := s.therapists.GetByID(ctx, in.TherapistID)
	if err != nil {
		return nil, err
	}
	if !therapist.Active {
		return nil, fmt.Errorf("%w: therapist is archived", domain.ErrInvalidArgument)
	}

	booking := &domain.Booking{
		Reference:   generateReference(),
		GuestID:     in.GuestID,
		RoomID:      in.RoomID,
		ServiceID:   in.ServiceID,
		TherapistID: in.TherapistID,
		StartsAt:    in.StartsAt.UTC(),
		EndsAt:      in.StartsAt.UTC().Add(time.Duration(svc.DurationMin) * time.Minute),
		Status:      domain.StatusReserved,
		Notes:       in.Notes,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		s.logger.Error().Err(err).Msg("failed to create booking")
		return nil, err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(svc.Name).Inc()
	s.logger.Info().
		Str("reference", booking.Reference).
		Uint("guest_id", booking.GuestID).
		Time("starts_at", booking.StartsAt).
		Msg("booking created")

	return booking, nil
}

func (s *BookingService) GetByReference(ctx context.Context, reference string) (*ports.BookingDetail, error) {
	booking, err := s.bookings.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	events, err := s.bookings.ListEvents(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	return &ports.BookingDetail{Booking: *booking, Events: events}, nil
}

func (s *BookingService) List(ctx context.Context, f ports.BookingFilter) (*ports.Page[domain.Booking], error) {
	if err := f.Normalize(bookingListDefaults); err != nil {
		return nil, err
	}
	if f.Status != "" && !domain.ValidBookingStatus(domain.BookingStatus(f.Status)) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidArgument, f.Status)
	}
	items, total, err := s.bookings.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return ports.NewPage(items, f.ListQuery, total), nil
}

func (s *BookingService) UpdateNotes(ctx context.Context, reference, notes string) (*domain.Booking, error) {
	booking, err := s.bookings.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	booking.Notes = notes
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// ChangeStatus applies one state-machine transition and appends the audit
// row. Invalid transitions are rejected before any write.
func (s *BookingService) ChangeStatus(ctx context.Context, in ports.StatusChangeInput) (*domain.Booking, error) {
	if !domain.ValidBookingStatus(in.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidArgument, in.Status)
	}

	booking, err := s.bookings.FindByReference(ctx, in.Reference)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(in.Status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, booking.Status, in.Status)
	}
	// A no-show can only be recorded once the booking has started.
	if in.Status == domain.StatusNoShow && s.now().UTC().Before(booking.StartsAt) {
		return nil, fmt.Errorf("%w: no_show before booking start", domain.ErrInvalidTransition)
	}

	event := &domain.BookingEvent{
		BookingID: booking.ID,
		Status:    in.Status,
		Timestamp: s.now().UTC(),
		Actor:     in.Actor,
		Notes:     in.Notes,
	}
	if err := s.bookings.UpdateStatus(ctx, booking.ID, in.Status, event); err != nil {
		return nil, fmt.Errorf("change status: %w", err)
	}

	metrics.BookingStatusChangesTotal.WithLabelValues(string(in.Status)).Inc()
	s.logger.Info().
		Str("reference", booking.Reference).
		Str("from", string(booking.Status)).
		Str("to", string(in.Status)).
		Str("actor", in.Actor).
		Msg("booking status changed")

	booking.Status = in.Status
	return booking, nil
}

// generateReference returns a booking reference in the format SPA-XXXXXXXX.
func generateReference() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("SPA-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("SPA-%08X", b)
}
