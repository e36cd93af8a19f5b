package models

import (
	"taprobane/constants"
	"taprobane/errors"
)

// BookingState defines the legal transitions from one booking status.
// pending -> confirmed|cancelled, confirmed -> completed|cancelled,
// cancelled and completed are terminal.
type BookingState interface {
	Confirm(b *Booking) error
	Cancel(b *Booking) error
	Complete(b *Booking) error
}

type pendingState struct{}

func (s *pendingState) Confirm(b *Booking) error {
	b.Status = constants.BookingStatusConfirmed
	return nil
}

func (s *pendingState) Cancel(b *Booking) error {
	b.Status = constants.BookingStatusCancelled
	return nil
}

func (s *pendingState) Complete(b *Booking) error {
	return errors.BadRequest(errors.ErrCodeInvalidStatus, "Cannot complete a pending booking")
}

type confirmedState struct{}

func (s *confirmedState) Confirm(b *Booking) error {
	return errors.BadRequest(errors.ErrCodeInvalidStatus, "Booking already confirmed")
}

func (s *confirmedState) Cancel(b *Booking) error {
	b.Status = constants.BookingStatusCancelled
	return nil
}

func (s *confirmedState) Complete(b *Booking) error {
	b.Status = constants.BookingStatusCompleted
	return nil
}

type completedState struct{}

func (s *completedState) Confirm(b *Booking) error {
	return errors.BadRequest(errors.ErrCodeInvalidStatus, "Booking already completed")
}

func (s *completedState) Cancel(b *Booking) error {
	return errors.BadRequest(errors.ErrCodeInvalidStatus, "Cannot cancel a completed booking")
}

func (s *completedState) Complete(b *Booking) error {
	return errors.BadRequest(errors.ErrCodeInvalidStatus, "Booking already completed")
}

type cancelledState struct{}

func (s *cancelledState) Confirm(b *Booking) error {
	return errors.BadRequest(errors.ErrCodeInvalidStatus, "Cannot confirm a cancelled booking")
}

func (s *cancelledState) Cancel(b *Booking) error {
	return errors.BadRequest(errors.ErrCodeInvalidStatus, "Booking already cancelled")
}

func (s *cancelledState) Complete(b *Booking) error {
	return errors.BadRequest(errors.ErrCodeInvalidStatus, "Cannot complete a cancelled booking")
}

// GetBookingState returns the state for the booking's current status.
func GetBookingState(status string) BookingState {
	switch status {
	case constants.BookingStatusConfirmed:
		return &confirmedState{}
	case constants.BookingStatusCompleted:
		return &completedState{}
	case constants.BookingStatusCancelled:
		return &cancelledState{}
	default:
		return &pendingState{}
	}
}

// Transition applies a named status change through the state machine.
func (b *Booking) Transition(target string) error {
	state := GetBookingState(b.Status)
	switch target {
	case constants.BookingStatusConfirmed:
		return state.Confirm(b)
	case constants.BookingStatusCancelled:
		return state.Cancel(b)
	case constants.BookingStatusCompleted:
		return state.Complete(b)
	default:
		return errors.BadRequest(errors.ErrCodeInvalidStatus, "Invalid booking status")
	}
}
