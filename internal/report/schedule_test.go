package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

type stubBookings struct {
	items      []domain.Booking
	lastFilter ports.BookingFilter
}

func (s *stubBookings) Create(context.Context, *domain.Booking) error { return nil }
func (s *stubBookings) FindByReference(context.Context, string) (*domain.Booking, error) {
	return nil, domain.ErrBookingNotFound
}
func (s *stubBookings) List(_ context.Context, f ports.BookingFilter) ([]domain.Booking, int64, error) {
	s.lastFilter = f
	return s.items, int64(len(s.items)), nil
}
func (s *stubBookings) Update(context.Context, *domain.Booking) error { return nil }
func (s *stubBookings) UpdateStatus(context.Context, uint, domain.BookingStatus, *domain.BookingEvent) error {
	return nil
}
func (s *stubBookings) ListEvents(context.Context, uint) ([]domain.BookingEvent, error) {
	return nil, nil
}
func (s *stubBookings) CountUpcoming(context.Context, ports.BookingOwner, uint, time.Time) (int64, error) {
	return 0, nil
}

type stubGuests struct{}

func (stubGuests) List(context.Context, ports.GuestFilter) ([]domain.Guest, int64, error) {
	return nil, 0, nil
}
func (stubGuests) GetByID(_ context.Context, id uint) (*domain.Guest, error) {
	if id == 404 {
		return nil, domain.ErrGuestNotFound
	}
	return &domain.Guest{ID: id, FirstName: "Maria", LastName: "Huber"}, nil
}
func (stubGuests) Create(context.Context, *domain.Guest) error { return nil }
func (stubGuests) Update(context.Context, *domain.Guest) error { return nil }
func (stubGuests) CountByLanguage(context.Context, uint) (int64, error) {
	return 0, nil
}

type stubTherapists struct{}

func (stubTherapists) List(context.Context, ports.TherapistFilter) ([]domain.Therapist, int64, error) {
	return nil, 0, nil
}
func (stubTherapists) GetByID(_ context.Context, id uint) (*domain.Therapist, error) {
	return &domain.Therapist{ID: id, FirstName: "Jonas", LastName: "Keller"}, nil
}
func (stubTherapists) Create(context.Context, *domain.Therapist) error { return nil }
func (stubTherapists) Update(context.Context, *domain.Therapist) error { return nil }

type stubRooms struct{}

func (stubRooms) List(context.Context, ports.RoomFilter) ([]domain.Room, int64, error) {
	return nil, 0, nil
}
func (stubRooms) GetByID(_ context.Context, id uint) (*domain.Room, error) {
	return &domain.Room{ID: id, Name: "Lotus"}, nil
}
func (stubRooms) Create(context.Context, *domain.Room) error { return nil }
func (stubRooms) Update(context.Context, *domain.Room) error { return nil }

type stubCatalog struct{}

func (stubCatalog) List(context.Context, ports.ServiceFilter) ([]domain.Service, int64, error) {
	return nil, 0, nil
}
func (stubCatalog) GetByID(_ context.Context, id uint) (*domain.Service, error) {
	return &domain.Service{ID: id, Name: "Hot Stone Massage"}, nil
}
func (stubCatalog) Create(context.Context, *domain.Service) error { return nil }
func (stubCatalog) Update(context.Context, *domain.Service) error { return nil }
func (stubCatalog) CountByCategory(context.Context, uint) (int64, error) { return 0, nil }
func (stubCatalog) CountByTax(context.Context, uint) (int64, error)      { return 0, nil }
func (stubCatalog) CountByCurrency(context.Context, uint) (int64, error) { return 0, nil }

func newScheduleService(bookings *stubBookings) *ScheduleService {
	return NewScheduleService(bookings, stubGuests{}, stubTherapists{}, stubRooms{}, stubCatalog{}, zerolog.Nop())
}

func TestDailySchedulePDF(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	bookings := &stubBookings{items: []domain.Booking{
		{
			ID: 1, Reference: "SPA-0000000A", GuestID: 1, RoomID: 1, ServiceID: 1, TherapistID: 1,
			StartsAt: day.Add(9 * time.Hour), EndsAt: day.Add(10 * time.Hour),
			Status: domain.StatusConfirmed,
		},
		{
			ID: 2, Reference: "SPA-0000000B", GuestID: 404, RoomID: 1, ServiceID: 1, TherapistID: 1,
			StartsAt: day.Add(11 * time.Hour), EndsAt: day.Add(12 * time.Hour),
			Status: domain.StatusReserved,
		},
	}}

	pdf, err := newScheduleService(bookings).DailySchedule(context.Background(), day.Add(15*time.Hour))
	if err != nil {
		t.Fatalf("DailySchedule: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("output is not a PDF document")
	}

	f := bookings.lastFilter
	if !f.DateFrom.Equal(day) {
		t.Errorf("DateFrom = %v, want %v", f.DateFrom, day)
	}
	if !f.DateTo.Before(day.Add(24 * time.Hour)) {
		t.Errorf("DateTo = %v, should stay within the day", f.DateTo)
	}
	if f.SortBy != "starts_at" {
		t.Errorf("SortBy = %q, want starts_at", f.SortBy)
	}
}

func TestDailyScheduleEmptyDay(t *testing.T) {
	pdf, err := newScheduleService(&stubBookings{}).DailySchedule(context.Background(),
		time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("DailySchedule: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("output is not a PDF document")
	}
}
