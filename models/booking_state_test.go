package models

import (
	"testing"

	"taprobane/constants"
)

func TestBookingTransitions(t *testing.T) {
	cases := []struct {
		from   string
		target string
		ok     bool
	}{
		{constants.BookingStatusPending, constants.BookingStatusConfirmed, true},
		{constants.BookingStatusPending, constants.BookingStatusCancelled, true},
		{constants.BookingStatusPending, constants.BookingStatusCompleted, false},
		{constants.BookingStatusConfirmed, constants.BookingStatusCompleted, true},
		{constants.BookingStatusConfirmed, constants.BookingStatusCancelled, true},
		{constants.BookingStatusConfirmed, constants.BookingStatusConfirmed, false},
		{constants.BookingStatusCancelled, constants.BookingStatusConfirmed, false},
		{constants.BookingStatusCancelled, constants.BookingStatusCompleted, false},
		{constants.BookingStatusCancelled, constants.BookingStatusCancelled, false},
		{constants.BookingStatusCompleted, constants.BookingStatusConfirmed, false},
		{constants.BookingStatusCompleted, constants.BookingStatusCancelled, false},
		{constants.BookingStatusCompleted, constants.BookingStatusCompleted, false},
	}

	for _, tc := range cases {
		b := Booking{Status: tc.from}
		err := b.Transition(tc.target)

		if tc.ok {
			if err != nil {
				t.Errorf("%s -> %s: unexpected error %v", tc.from, tc.target, err)
			}
			if b.Status != tc.target {
				t.Errorf("%s -> %s: status not applied, got %s", tc.from, tc.target, b.Status)
			}
		} else {
			if err == nil {
				t.Errorf("%s -> %s: expected error", tc.from, tc.target)
			}
			if b.Status != tc.from {
				t.Errorf("%s -> %s: status mutated on illegal transition to %s", tc.from, tc.target, b.Status)
			}
		}
	}
}

func TestBookingTransitionUnknownTarget(t *testing.T) {
	b := Booking{Status: constants.BookingStatusPending}
	if err := b.Transition("refunded"); err == nil {
		t.Fatal("expected error for unknown target status")
	}
	if b.Status != constants.BookingStatusPending {
		t.Fatalf("status mutated to %s", b.Status)
	}
}
