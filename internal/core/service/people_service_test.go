package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

func TestDeleteGuestWithUpcomingBookingBlocked(t *testing.T) {
	guests := newStubGuestRepo()
	bookings := newStubBookingRepo()
	svc := NewGuestService(guests, bookings, zerolog.Nop())
	ctx := context.Background()

	guest := &domain.Guest{FirstName: "Jane", LastName: "Doe"}
	if err := svc.Create(ctx, guest); err != nil {
		t.Fatal(err)
	}
	_ = bookings.Create(ctx, &domain.Booking{
		Reference: "SPA-BBBB0001",
		GuestID:   guest.ID,
		Status:    domain.StatusReserved,
		StartsAt:  time.Now().UTC().Add(24 * time.Hour),
	})

	if err := svc.Delete(ctx, guest.ID); !errors.Is(err, domain.ErrHasDependents) {
		t.Fatalf("got %v, want ErrHasDependents", err)
	}
	got, _ := guests.GetByID(ctx, guest.ID)
	if !got.Active {
		t.Fatalf("guest was archived despite blocked delete")
	}
}

func TestDeleteGuestArchives(t *testing.T) {
	guests := newStubGuestRepo()
	svc := NewGuestService(guests, newStubBookingRepo(), zerolog.Nop())
	ctx := context.Background()

	guest := &domain.Guest{FirstName: "Jane", LastName: "Doe"}
	if err := svc.Create(ctx, guest); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(ctx, guest.ID); err != nil {
		t.Fatal(err)
	}
	got, _ := guests.GetByID(ctx, guest.ID)
	if got.Active {
		t.Fatalf("guest should be archived")
	}
}

func TestGuestValidation(t *testing.T) {
	svc := NewGuestService(newStubGuestRepo(), newStubBookingRepo(), zerolog.Nop())
	err := svc.Create(context.Background(), &domain.Guest{FirstName: "Only"})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
}

func TestDeleteTherapistWithUpcomingBookingBlocked(t *testing.T) {
	therapists := newStubTherapistRepo()
	bookings := newStubBookingRepo()
	svc := NewTherapistService(therapists, bookings, zerolog.Nop())
	ctx := context.Background()

	th := &domain.Therapist{FirstName: "Mia", LastName: "Lind", Email: "mia@spa.test"}
	if err := svc.Create(ctx, th); err != nil {
		t.Fatal(err)
	}
	_ = bookings.Create(ctx, &domain.Booking{
		Reference:   "SPA-BBBB0002",
		TherapistID: th.ID,
		Status:      domain.StatusConfirmed,
		StartsAt:    time.Now().UTC().Add(24 * time.Hour),
	})

	if err := svc.Delete(ctx, th.ID); !errors.Is(err, domain.ErrHasDependents) {
		t.Fatalf("got %v, want ErrHasDependents", err)
	}
}

func TestTherapistListNormalizesQuery(t *testing.T) {
	therapists := newStubTherapistRepo()
	svc := NewTherapistService(therapists, newStubBookingRepo(), zerolog.Nop())

	page, err := svc.List(context.Background(), ports.TherapistFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if page.Pagination.Page != 1 || page.Pagination.Limit != 20 {
		t.Fatalf("pagination defaults wrong: %+v", page.Pagination)
	}
	if page.Items == nil {
		t.Fatalf("items must be an empty slice, not nil")
	}
}
