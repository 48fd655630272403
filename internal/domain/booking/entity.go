package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled    = errors.New("booking is already cancelled")
	ErrNotConfirmed        = errors.New("booking is not confirmed")
	ErrNotWaitlisted       = errors.New("booking is not on the waitlist")
	ErrNoCancellationAsked = errors.New("booking has no pending cancellation request")
	ErrInvalidAttendance   = errors.New("invalid attendance mark")
)

// Booking is a user's claim on a shift, or on an event roster when shiftID
// is nil (general enrollment). Cancellation never deletes the row; a new
// request creates a new booking.
type Booking struct {
	id          uuid.UUID
	userID      uuid.UUID
	shiftID     *uuid.UUID
	eventID     uuid.UUID
	status      Status
	attendance  Attendance
	requestedAt time.Time
	cancelledAt *time.Time
}

func NewBooking(userID, shiftID, eventID uuid.UUID, status Status, requestedAt time.Time) *Booking {
	sid := shiftID
	return &Booking{
		id:          uuid.New(),
		userID:      userID,
		shiftID:     &sid,
		eventID:     eventID,
		status:      status,
		attendance:  AttendancePending,
		requestedAt: requestedAt,
	}
}

// NewGeneralEnrollment keeps a user attached to an event roster without a
// shift, used when their last booking and coordinator assignment go away.
func NewGeneralEnrollment(userID, eventID uuid.UUID, requestedAt time.Time) *Booking {
	return &Booking{
		id:          uuid.New(),
		userID:      userID,
		eventID:     eventID,
		status:      StatusConfirmed,
		attendance:  AttendancePending,
		requestedAt: requestedAt,
	}
}

func ReconstructBooking(
	id, userID uuid.UUID,
	shiftID *uuid.UUID,
	eventID uuid.UUID,
	status Status,
	attendance Attendance,
	requestedAt time.Time,
	cancelledAt *time.Time,
) *Booking {
	return &Booking{
		id:          id,
		userID:      userID,
		shiftID:     shiftID,
		eventID:     eventID,
		status:      status,
		attendance:  attendance,
		requestedAt: requestedAt,
		cancelledAt: cancelledAt,
	}
}

// Confirm resolves a pending approval into a confirmed slot.
func (b *Booking) Confirm() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusConfirmed
	return nil
}

// RequestCancellation marks a confirmed booking as awaiting admin approval.
// The slot stays occupied until the request is resolved.
func (b *Booking) RequestCancellation(at time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if b.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	b.status = StatusCancellationRequested
	b.cancelledAt = &at
	return nil
}

// Cancel transitions to the terminal state from any live state.
func (b *Booking) Cancel(at time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	b.cancelledAt = &at
	return nil
}

// RejectCancellation reverts a cancellation request back to confirmed.
func (b *Booking) RejectCancellation() error {
	if b.status != StatusCancellationRequested {
		return ErrNoCancellationAsked
	}
	b.status = StatusConfirmed
	b.cancelledAt = nil
	return nil
}

// PromoteFromWaitlist moves a waitlisted booking into a freed slot.
func (b *Booking) PromoteFromWaitlist() error {
	if b.status != StatusWaitlist {
		return ErrNotWaitlisted
	}
	b.status = StatusConfirmed
	return nil
}

func (b *Booking) SetAttendance(mark Attendance) error {
	if !mark.IsValid() {
		return ErrInvalidAttendance
	}
	b.attendance = mark
	return nil
}

func (b *Booking) IsGeneralEnrollment() bool {
	return b.shiftID == nil
}

func (b *Booking) OccupiesSlot() bool {
	return b.status == StatusConfirmed || b.status == StatusCancellationRequested
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) UserID() uuid.UUID       { return b.userID }
func (b *Booking) ShiftID() *uuid.UUID     { return b.shiftID }
func (b *Booking) EventID() uuid.UUID      { return b.eventID }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) Attendance() Attendance  { return b.attendance }
func (b *Booking) RequestedAt() time.Time  { return b.requestedAt }
func (b *Booking) CancelledAt() *time.Time { return b.cancelledAt }
