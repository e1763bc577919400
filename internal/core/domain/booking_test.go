package domain

import (
	"testing"
	"time"
)

func TestBookingStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		want     bool
	}{
		{StatusReserved, StatusConfirmed, true},
		{StatusReserved, StatusCancelled, true},
		{StatusReserved, StatusNoShow, true},
		{StatusReserved, StatusCompleted, false},
		{StatusConfirmed, StatusInProgress, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusCancelled, false},
		{StatusCompleted, StatusReserved, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusNoShow, StatusReserved, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.want {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	for _, s := range []BookingStatus{StatusCompleted, StatusCancelled, StatusNoShow} {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []BookingStatus{StatusReserved, StatusConfirmed, StatusInProgress} {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestBookingBlocking(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	future := now.Add(2 * time.Hour)
	past := now.Add(-2 * time.Hour)

	cases := []struct {
		name   string
		status BookingStatus
		starts time.Time
		want   bool
	}{
		{"upcoming reserved", StatusReserved, future, true},
		{"upcoming confirmed", StatusConfirmed, future, true},
		{"upcoming cancelled", StatusCancelled, future, false},
		{"upcoming no-show", StatusNoShow, future, false},
		{"past confirmed", StatusConfirmed, past, false},
	}
	for _, c := range cases {
		b := Booking{Status: c.status, StartsAt: c.starts}
		if got := b.Blocking(now); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}
