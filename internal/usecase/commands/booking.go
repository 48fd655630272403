package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"volunteer-hub/internal/domain/booking"
	"volunteer-hub/internal/domain/shift"
	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/mailer"
	"volunteer-hub/internal/pkg/clock"
	"volunteer-hub/internal/pkg/errs"
	"volunteer-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrShiftNotFound           = errs.New("shift not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrEventNotActive          = errs.New("event is not active")
	ErrAlreadyBooked           = errs.New("user already has a booking for this shift")
	ErrNotBookingOwner         = errs.New("booking belongs to another user")
	ErrBookingNotConfirmed     = errs.New("booking is not confirmed")
	ErrBookingNotPending       = errs.New("booking is not awaiting approval")
	ErrNoCancellationRequested = errs.New("booking has no cancellation request")
	ErrBookingAlreadyCancelled = errs.New("booking is already cancelled")
	ErrShiftFull               = errs.New("shift has no available vacancies")
	ErrInvalidAttendanceMark   = errs.New("invalid attendance mark")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingOutcome string

const (
	OutcomeConfirmed       BookingOutcome = "confirmed"
	OutcomePendingApproval BookingOutcome = "pending_approval"
	OutcomeWaitlisted      BookingOutcome = "waitlist"
)

type CreateBookingResult struct {
	BookingID        uuid.UUID
	Outcome          BookingOutcome
	WaitlistPosition int
}

type CancellationResult struct {
	BookingID uuid.UUID
	// Immediate is true when the booking starts within the cutoff and was
	// cancelled on the spot instead of waiting for coordinator review.
	Immediate bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, userID, shiftID uuid.UUID) (*CreateBookingResult, error)
	ApproveBooking(ctx context.Context, bookingID uuid.UUID) error
	RequestCancellation(ctx context.Context, userID, bookingID uuid.UUID) (*CancellationResult, error)
	ApproveCancellation(ctx context.Context, bookingID uuid.UUID) error
	RejectCancellation(ctx context.Context, bookingID uuid.UUID, reason string) error
	AdminCancelBooking(ctx context.Context, bookingID uuid.UUID, reason string) error
	SetAttendance(ctx context.Context, bookingID uuid.UUID, mark string) error
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk}
}

// CreateBooking decides confirmed, pending approval or waitlist in one
// transaction. The shift row lock serializes the capacity check against
// concurrent requests for the same shift.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, userID, shiftID uuid.UUID) (*CreateBookingResult, error) {
	now := c.clock.Now()
	var result CreateBookingResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Shifts().FindByIDForUpdate(ctx, shiftID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrShiftNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		event, err := tx.Reads().EventByID(ctx, s.EventID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if event.State != "active" {
			return ErrEventNotActive
		}

		if _, err := tx.Bookings().FindActiveByUserAndShift(ctx, userID, shiftID); err == nil {
			return ErrAlreadyBooked
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		role, err := tx.Reads().RoleByID(ctx, s.RoleID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		occupied, err := occupiedSlots(ctx, tx, s)
		if err != nil {
			return err
		}

		switch {
		case s.IsFull(occupied):
			b := booking.NewBooking(userID, shiftID, s.EventID(), booking.StatusWaitlist, now)
			if err := tx.Bookings().Create(ctx, b); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			queued, err := tx.Waitlist().CountByShift(ctx, shiftID)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			entry := &shared.WaitlistEntry{
				ID:       uuid.New(),
				ShiftID:  shiftID,
				UserID:   userID,
				EventID:  s.EventID(),
				Position: queued + 1,
			}
			if err := tx.Waitlist().Create(ctx, entry); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			result = CreateBookingResult{BookingID: b.ID(), Outcome: OutcomeWaitlisted, WaitlistPosition: entry.Position}
			return notifyShift(ctx, tx, c.clock, mailer.TopicWaitlistJoined, userID, s, nil)

		case role.RequiresApproval:
			b := booking.NewBooking(userID, shiftID, s.EventID(), booking.StatusPendingApproval, now)
			if err := tx.Bookings().Create(ctx, b); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			result = CreateBookingResult{BookingID: b.ID(), Outcome: OutcomePendingApproval}
			return notifyShift(ctx, tx, c.clock, mailer.TopicBookingPending, userID, s, nil)

		default:
			b := booking.NewBooking(userID, shiftID, s.EventID(), booking.StatusConfirmed, now)
			if err := tx.Bookings().Create(ctx, b); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			result = CreateBookingResult{BookingID: b.ID(), Outcome: OutcomeConfirmed}
			return notifyShift(ctx, tx, c.clock, mailer.TopicBookingConfirmed, userID, s, nil)
		}
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ApproveBooking confirms a pending booking, re-checking capacity under the
// shift lock since vacancies may have filled while approval waited.
func (c *bookingCommandsImpl) ApproveBooking(ctx context.Context, bookingID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.findBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if b.Status() != booking.StatusPendingApproval {
			return ErrBookingNotPending
		}

		s, err := tx.Shifts().FindByIDForUpdate(ctx, *b.ShiftID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		occupied, err := occupiedSlots(ctx, tx, s)
		if err != nil {
			return err
		}
		if s.IsFull(occupied) {
			return ErrShiftFull
		}

		if err := b.Confirm(); err != nil {
			return errs.Mark(err, ErrBookingNotPending)
		}
		if err := tx.Bookings().UpdateState(ctx, b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return notifyShift(ctx, tx, c.clock, mailer.TopicBookingConfirmed, b.UserID(), s, nil)
	})
}

// RequestCancellation applies the cancellation policy: a booking that
// starts within the cutoff is released immediately and the freed slot goes
// to the waitlist; otherwise the request waits for coordinator review while
// the slot stays occupied.
func (c *bookingCommandsImpl) RequestCancellation(ctx context.Context, userID, bookingID uuid.UUID) (*CancellationResult, error) {
	now := c.clock.Now()
	var result CancellationResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.findBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if b.UserID() != userID {
			return ErrNotBookingOwner
		}
		if b.Status() == booking.StatusCancelled {
			return ErrBookingAlreadyCancelled
		}
		if b.Status() != booking.StatusConfirmed {
			return ErrBookingNotConfirmed
		}

		result.BookingID = b.ID()

		if b.IsGeneralEnrollment() {
			if err := b.Cancel(now); err != nil {
				return errs.Mark(err, ErrBookingAlreadyCancelled)
			}
			result.Immediate = true
			return c.updateBooking(ctx, tx, b)
		}

		s, err := tx.Shifts().FindByIDForUpdate(ctx, *b.ShiftID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if s.StartsWithinCancellationCutoff(now) {
			if err := b.Cancel(now); err != nil {
				return errs.Mark(err, ErrBookingAlreadyCancelled)
			}
			if err := c.updateBooking(ctx, tx, b); err != nil {
				return err
			}
			result.Immediate = true
			if err := notifyShift(ctx, tx, c.clock, mailer.TopicBookingCancelled, b.UserID(), s, nil); err != nil {
				return err
			}
			return promoteNext(ctx, tx, c.clock, s)
		}

		if err := b.RequestCancellation(now); err != nil {
			return errs.Mark(err, ErrBookingNotConfirmed)
		}
		if err := c.updateBooking(ctx, tx, b); err != nil {
			return err
		}
		return notifyShift(ctx, tx, c.clock, mailer.TopicCancellationRequested, b.UserID(), s, nil)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *bookingCommandsImpl) ApproveCancellation(ctx context.Context, bookingID uuid.UUID) error {
	now := c.clock.Now()
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.findBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if b.Status() != booking.StatusCancellationRequested {
			return ErrNoCancellationRequested
		}

		if err := b.Cancel(now); err != nil {
			return errs.Mark(err, ErrBookingAlreadyCancelled)
		}
		if err := c.updateBooking(ctx, tx, b); err != nil {
			return err
		}

		if b.IsGeneralEnrollment() {
			return nil
		}

		s, err := tx.Shifts().FindByIDForUpdate(ctx, *b.ShiftID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := notifyShift(ctx, tx, c.clock, mailer.TopicCancellationApproved, b.UserID(), s, nil); err != nil {
			return err
		}
		return promoteNext(ctx, tx, c.clock, s)
	})
}

func (c *bookingCommandsImpl) RejectCancellation(ctx context.Context, bookingID uuid.UUID, reason string) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.findBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if b.Status() != booking.StatusCancellationRequested {
			return ErrNoCancellationRequested
		}

		if err := b.RejectCancellation(); err != nil {
			return errs.Mark(err, ErrNoCancellationRequested)
		}
		if err := c.updateBooking(ctx, tx, b); err != nil {
			return err
		}

		if b.IsGeneralEnrollment() {
			return nil
		}
		s, err := tx.Reads().ShiftByID(ctx, *b.ShiftID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return notifySnapshot(ctx, tx, c.clock, mailer.TopicCancellationRejected, b.UserID(), s, map[string]string{"reason": reason})
	})
}

// AdminCancelBooking releases any live booking regardless of the cutoff.
func (c *bookingCommandsImpl) AdminCancelBooking(ctx context.Context, bookingID uuid.UUID, reason string) error {
	now := c.clock.Now()
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.findBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if b.Status() == booking.StatusCancelled {
			return ErrBookingAlreadyCancelled
		}

		wasWaitlisted := b.Status() == booking.StatusWaitlist
		occupiedSlot := b.OccupiesSlot()

		if err := b.Cancel(now); err != nil {
			return errs.Mark(err, ErrBookingAlreadyCancelled)
		}
		if err := c.updateBooking(ctx, tx, b); err != nil {
			return err
		}

		if b.IsGeneralEnrollment() {
			return nil
		}

		if wasWaitlisted {
			if err := tx.Waitlist().DeleteByUserAndShift(ctx, b.UserID(), *b.ShiftID()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		s, err := tx.Shifts().FindByIDForUpdate(ctx, *b.ShiftID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := notifyShift(ctx, tx, c.clock, mailer.TopicBookingCancelled, b.UserID(), s, map[string]string{"reason": reason}); err != nil {
			return err
		}
		if occupiedSlot {
			return promoteNext(ctx, tx, c.clock, s)
		}
		return nil
	})
}

func (c *bookingCommandsImpl) SetAttendance(ctx context.Context, bookingID uuid.UUID, mark string) error {
	attendance := booking.Attendance(mark)
	if attendance != booking.AttendanceAttended && attendance != booking.AttendanceAbsent {
		return ErrInvalidAttendanceMark
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.findBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if err := b.SetAttendance(attendance); err != nil {
			return errs.Mark(err, ErrBookingNotConfirmed)
		}
		if err := c.updateBooking(ctx, tx, b); err != nil {
			return err
		}

		topic := mailer.TopicAttendanceThanks
		if attendance == booking.AttendanceAbsent {
			topic = mailer.TopicAttendanceAbsent
		}
		if b.IsGeneralEnrollment() {
			return notifyEventOnly(ctx, tx, c.clock, topic, b.UserID(), b.EventID())
		}
		s, err := tx.Reads().ShiftByID(ctx, *b.ShiftID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return notifySnapshot(ctx, tx, c.clock, topic, b.UserID(), s, nil)
	})
}

// promoteNext moves the head of the waitlist into the freed slot. One freed
// slot promotes exactly one entry; an empty waitlist is not an error.
func promoteNext(ctx context.Context, tx shared.Tx, clk clock.Clock, s *shift.Shift) error {
	entry, err := tx.Waitlist().FindNextByShift(ctx, s.ID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	b, err := tx.Bookings().FindWaitlistedByUserAndShift(ctx, entry.UserID, s.ID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Orphaned entry, drop it and try the next one.
			slog.Warn("waitlist entry without booking, removing",
				"shift_id", s.ID(), "user_id", entry.UserID)
			if err := tx.Waitlist().Delete(ctx, entry.ID); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			return promoteNext(ctx, tx, clk, s)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := b.PromoteFromWaitlist(); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := tx.Bookings().UpdateState(ctx, b); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := tx.Waitlist().Delete(ctx, entry.ID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("promoted booking from waitlist",
		"shift_id", s.ID(), "user_id", entry.UserID, "booking_id", b.ID())
	return notifyShift(ctx, tx, clk, mailer.TopicWaitlistPromoted, entry.UserID, s, nil)
}

func (c *bookingCommandsImpl) findBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return b, nil
}

func (c *bookingCommandsImpl) updateBooking(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
	if err := tx.Bookings().UpdateState(ctx, b); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// occupiedSlots computes how many vacancies are taken: slot-occupying
// bookings plus coordinators who hold none on this shift.
func occupiedSlots(ctx context.Context, tx shared.Tx, s *shift.Shift) (int, error) {
	confirmed, err := tx.Bookings().CountByShiftAndStatuses(ctx, s.ID(),
		booking.StatusConfirmed, booking.StatusCancellationRequested)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	coordBooked, err := tx.Bookings().CountConfirmedForUsers(ctx, s.ID(), s.CoordinatorIDs())
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return s.Occupied(confirmed, len(s.CoordinatorIDs())-coordBooked), nil
}

func notifyShift(ctx context.Context, tx shared.Tx, clk clock.Clock, topic string, userID uuid.UUID, s *shift.Shift, extra map[string]string) error {
	snap := &shared.ShiftSnapshot{
		ID:         s.ID(),
		EventID:    s.EventID(),
		RoleID:     s.RoleID(),
		Date:       s.Date(),
		TimeWindow: s.Window().String(),
	}
	return notifySnapshot(ctx, tx, clk, topic, userID, snap, extra)
}

func notifySnapshot(ctx context.Context, tx shared.Tx, clk clock.Clock, topic string, userID uuid.UUID, s *shared.ShiftSnapshot, extra map[string]string) error {
	u, err := tx.Reads().UserByID(ctx, userID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	event, err := tx.Reads().EventByID(ctx, s.EventID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	role, err := tx.Reads().RoleByID(ctx, s.RoleID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	payload := mailer.JobPayload{
		Email:      u.Email,
		FullName:   u.FullName,
		EventName:  event.Name,
		RoleName:   role.Name,
		Date:       shift.FormatDate(s.Date),
		TimeWindow: s.TimeWindow,
	}
	if extra != nil {
		payload.Reason = extra["reason"]
		payload.OldDate = extra["old_date"]
		payload.OldWindow = extra["old_window"]
	}
	return enqueue(ctx, tx, clk, topic, payload)
}

func notifyEventOnly(ctx context.Context, tx shared.Tx, clk clock.Clock, topic string, userID, eventID uuid.UUID) error {
	u, err := tx.Reads().UserByID(ctx, userID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	event, err := tx.Reads().EventByID(ctx, eventID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return enqueue(ctx, tx, clk, topic, mailer.JobPayload{
		Email:     u.Email,
		FullName:  u.FullName,
		EventName: event.Name,
	})
}

func enqueue(ctx context.Context, tx shared.Tx, clk clock.Clock, topic string, payload mailer.JobPayload) error {
	buf, err := json.Marshal(payload)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := tx.Notifications().CreateJob(ctx, "email", topic, buf, clk.Now()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
