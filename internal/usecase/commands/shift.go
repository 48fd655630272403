package commands

import (
	"context"
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
	ErrRoleNotFound         = errs.New("role not found")
	ErrRoleEventMismatch    = errs.New("role belongs to a different event")
	ErrInvalidShiftInput    = errs.New("invalid shift input")
	ErrCapacityBelowBooked  = errs.New("total vacancies below confirmed bookings")
	ErrShiftHasLiveBookings = errs.New("shift still has live bookings")
)

type CreateShiftInput struct {
	EventID        uuid.UUID
	RoleID         uuid.UUID
	Date           string
	TimeWindow     string
	TotalVacancies int
}

type RescheduleShiftInput struct {
	ShiftID    uuid.UUID
	Date       string
	TimeWindow string
}

type ShiftCommands interface {
	CreateShift(ctx context.Context, input CreateShiftInput) (uuid.UUID, error)
	ResizeShift(ctx context.Context, shiftID uuid.UUID, totalVacancies int) error
	RescheduleShift(ctx context.Context, input RescheduleShiftInput) error
	DeleteShift(ctx context.Context, shiftID uuid.UUID) error
}

type shiftCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewShiftCommands(uow shared.UnitOfWork, clk clock.Clock) ShiftCommands {
	return &shiftCommandsImpl{uow: uow, clock: clk}
}

func (c *shiftCommandsImpl) CreateShift(ctx context.Context, input CreateShiftInput) (uuid.UUID, error) {
	date, err := shift.ParseDate(input.Date)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidShiftInput)
	}
	window, err := shift.NewTimeWindow(input.TimeWindow)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidShiftInput)
	}

	var shiftID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		role, err := tx.Reads().RoleByID(ctx, input.RoleID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoleNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if role.EventID != input.EventID {
			return ErrRoleEventMismatch
		}

		s, err := shift.NewShift(input.EventID, input.RoleID, date, window, input.TotalVacancies)
		if err != nil {
			return errs.Mark(err, ErrInvalidShiftInput)
		}

		// Coordinators already covering this slot group extend to the new
		// shift automatically.
		siblings, err := tx.Shifts().FindBySlotGroup(ctx, s.SlotGroupID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		for _, sibling := range siblings {
			for _, coordinatorID := range sibling.CoordinatorIDs() {
				s.AddCoordinator(coordinatorID)
			}
		}

		if err := tx.Shifts().Create(ctx, s); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		shiftID = s.ID()
		slog.Info("shift created",
			"shift_id", s.ID(), "event_id", input.EventID, "role_id", input.RoleID,
			"slot_group_id", s.SlotGroupID(), "vacancies", input.TotalVacancies)
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return shiftID, nil
}

// ResizeShift grows capacity freely; when extra slots open up, the waitlist
// drains into them. Shrinking below current confirmed occupancy fails.
func (c *shiftCommandsImpl) ResizeShift(ctx context.Context, shiftID uuid.UUID, totalVacancies int) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Shifts().FindByIDForUpdate(ctx, shiftID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrShiftNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		occupied, err := occupiedSlots(ctx, tx, s)
		if err != nil {
			return err
		}
		if err := s.Resize(totalVacancies, occupied); err != nil {
			return errs.Mark(err, ErrCapacityBelowBooked)
		}
		if err := tx.Shifts().Update(ctx, s); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		for freed := s.Available(occupied); freed > 0; freed-- {
			queued, err := tx.Waitlist().CountByShift(ctx, shiftID)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if queued == 0 {
				break
			}
			if err := promoteNext(ctx, tx, c.clock, s); err != nil {
				return err
			}
		}
		return nil
	})
}

// RescheduleShift moves a shift and tells every affected volunteer. The
// slot group is re-derived, so coordinator fan-out follows the new window.
func (c *shiftCommandsImpl) RescheduleShift(ctx context.Context, input RescheduleShiftInput) error {
	date, err := shift.ParseDate(input.Date)
	if err != nil {
		return errs.Mark(err, ErrInvalidShiftInput)
	}
	window, err := shift.NewTimeWindow(input.TimeWindow)
	if err != nil {
		return errs.Mark(err, ErrInvalidShiftInput)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Shifts().FindByIDForUpdate(ctx, input.ShiftID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrShiftNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		oldDate := shift.FormatDate(s.Date())
		oldWindow := s.Window().String()

		s.Reschedule(date, window)
		if err := tx.Shifts().Update(ctx, s); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		affected, err := tx.Bookings().FindByShiftAndStatuses(ctx, s.ID(),
			booking.StatusConfirmed, booking.StatusCancellationRequested, booking.StatusPendingApproval)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		extra := map[string]string{"old_date": oldDate, "old_window": oldWindow}
		for _, affectedBooking := range affected {
			if err := notifyShift(ctx, tx, c.clock, mailer.TopicScheduleChanged, affectedBooking.UserID(), s, extra); err != nil {
				return err
			}
		}

		slog.Info("shift rescheduled",
			"shift_id", s.ID(), "from", oldDate+" "+oldWindow,
			"to", input.Date+" "+input.TimeWindow, "notified", len(affected))
		return nil
	})
}

// DeleteShift removes an empty shift. Shifts with live bookings must have
// them cancelled first so volunteers are told.
func (c *shiftCommandsImpl) DeleteShift(ctx context.Context, shiftID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Shifts().FindByIDForUpdate(ctx, shiftID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrShiftNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		live, err := tx.Bookings().CountActiveByShift(ctx, shiftID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if live > 0 {
			return ErrShiftHasLiveBookings
		}

		if err := tx.Shifts().Delete(ctx, shiftID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		slog.Info("shift deleted", "shift_id", shiftID)
		return nil
	})
}
