package domain

import "time"

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusReserved   BookingStatus = "reserved"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusNoShow     BookingStatus = "no_show"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusReserved:   {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed:  {StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted},
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid. Completed, cancelled and no_show are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are possible.
func (s BookingStatus) Terminal() bool {
	return len(validTransitions[s]) == 0
}

// ValidBookingStatus reports whether s names a known status.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusReserved, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Booking is the reservation aggregate root. Reference is the
// client-facing identifier in the format SPA-XXXXXXXX.
type Booking struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Reference   string        `json:"reference" gorm:"uniqueIndex;size:16;not null"`
	GuestID     uint          `json:"guestId" gorm:"not null;index"`
	RoomID      uint          `json:"roomId" gorm:"not null;index"`
	ServiceID   uint          `json:"serviceId" gorm:"not null;index"`
	TherapistID uint          `json:"therapistId" gorm:"not null;index"`
	StartsAt    time.Time     `json:"startsAt" gorm:"not null;index"`
	EndsAt      time.Time     `json:"endsAt" gorm:"not null"`
	Status      BookingStatus `json:"status" gorm:"size:16;not null;index"`
	Notes       string        `json:"notes" gorm:"size:1024"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Blocking reports whether the booking still counts against its room,
// therapist and guest for delete guards: any non-cancelled, non-no-show
// booking that has not started yet.
func (b Booking) Blocking(now time.Time) bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow && b.StartsAt.After(now)
}

// BookingEvent is one audit-trail row recording a status change.
type BookingEvent struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	BookingID uint          `json:"bookingId" gorm:"not null;index"`
	Status    BookingStatus `json:"status" gorm:"size:16;not null"`
	Timestamp time.Time     `json:"timestamp" gorm:"not null"`
	Actor     string        `json:"actor" gorm:"size:64"`
	Notes     string        `json:"notes,omitempty" gorm:"size:512"`
}
