package ports

import (
	"context"
	"time"

	"github.com/serenispa/reservation-system/internal/core/domain"
)

// BookingOwner names a foreign key a booking holds; used by delete guards
// to count upcoming bookings for a room, service, therapist or guest.
type BookingOwner string

const (
	OwnerRoom      BookingOwner = "room"
	OwnerService   BookingOwner = "service"
	OwnerTherapist BookingOwner = "therapist"
	OwnerGuest     BookingOwner = "guest"
)

// BookingFilter carries all query parameters for listing bookings.
type BookingFilter struct {
	ListQuery
	Status      string // optional: filter by booking status
	GuestID     *uint
	RoomID      *uint
	TherapistID *uint
	DateFrom    time.Time // optional: starts_at >= DateFrom
	DateTo      time.Time // optional: starts_at <= DateTo
}

// CreateBookingInput carries all data needed to create a new booking.
// EndsAt is derived from the service duration when zero.
type CreateBookingInput struct {
	GuestID     uint
	RoomID      uint
	ServiceID   uint
	TherapistID uint
	StartsAt    time.Time
	Notes       string
}

// StatusChangeInput applies one state-machine transition to a booking.
type StatusChangeInput struct {
	Reference string
	Status    domain.BookingStatus
	Actor     string // username of the staff member applying the change
	Notes     string
}

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	FindByReference(ctx context.Context, reference string) (*domain.Booking, error)
	List(ctx context.Context, f BookingFilter) ([]domain.Booking, int64, error)
	Update(ctx context.Context, b *domain.Booking) error
	// UpdateStatus persists a status transition and the matching audit row
	// in one transaction.
	UpdateStatus(ctx context.Context, bookingID uint, status domain.BookingStatus, event *domain.BookingEvent) error
	ListEvents(ctx context.Context, bookingID uint) ([]domain.BookingEvent, error)
	// CountUpcoming counts non-cancelled bookings starting after now that
	// reference the given owner record. Used by delete guards.
	CountUpcoming(ctx context.Context, owner BookingOwner, id uint, now time.Time) (int64, error)
}

// BookingDetail is the full booking view including its audit trail.
type BookingDetail struct {
	Booking domain.Booking
	Events  []domain.BookingEvent
}

// BookingService defines booking use-cases. Slot-overlap resolution is
// deliberately out of scope; bookings are recorded as submitted.
type BookingService interface {
	Create(ctx context.Context, in CreateBookingInput) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*BookingDetail, error)
	List(ctx context.Context, f BookingFilter) (*Page[domain.Booking], error)
	UpdateNotes(ctx context.Context, reference, notes string) (*domain.Booking, error)
	ChangeStatus(ctx context.Context, in StatusChangeInput) (*domain.Booking, error)
}
