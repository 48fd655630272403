package commands

import (
	"context"
	"log/slog"

	"volunteer-hub/internal/domain/booking"
	"volunteer-hub/internal/domain/user"
	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/mailer"
	"volunteer-hub/internal/pkg/clock"
	"volunteer-hub/internal/pkg/errs"
	"volunteer-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrUserNotOperable    = errs.New("user cannot be assigned")
	ErrAlreadyCoordinator = errs.New("user already coordinates this shift")
	ErrNotCoordinator     = errs.New("user does not coordinate this shift")
)

// RoleAssigner owns user role mutation. Booking flows never touch the role
// column directly; every promotion or demotion funnels through here.
type RoleAssigner interface {
	SetCoordinator(ctx context.Context, tx shared.Tx, userID uuid.UUID, coordinator bool) error
}

type defaultRoleAssigner struct{}

func NewRoleAssigner() RoleAssigner {
	return defaultRoleAssigner{}
}

// SetCoordinator toggles a user between volunteer and coordinator. Admin
// and superadmin roles are left untouched.
func (defaultRoleAssigner) SetCoordinator(ctx context.Context, tx shared.Tx, userID uuid.UUID, coordinator bool) error {
	u, err := tx.Reads().UserByID(ctx, userID)
	if err != nil {
		return err
	}

	current := user.Role(u.Role)
	var target user.Role
	switch {
	case coordinator && current == user.RoleVolunteer:
		target = user.RoleCoordinator
	case !coordinator && current == user.RoleCoordinator:
		target = user.RoleVolunteer
	default:
		return nil
	}

	slog.Info("changing user role", "user_id", userID, "from", current.String(), "to", target.String())
	return tx.Users().UpdateRole(ctx, userID, target.String())
}

type CoordinatorCommands interface {
	Assign(ctx context.Context, shiftID, userID uuid.UUID) error
	Remove(ctx context.Context, shiftID, userID uuid.UUID) error
}

type coordinatorCommandsImpl struct {
	uow      shared.UnitOfWork
	assigner RoleAssigner
	clock    clock.Clock
}

func NewCoordinatorCommands(uow shared.UnitOfWork, assigner RoleAssigner, clk clock.Clock) CoordinatorCommands {
	return &coordinatorCommandsImpl{uow: uow, assigner: assigner, clock: clk}
}

// Assign makes the user a coordinator for every shift sharing the slot
// group, so parallel roles in the same time window get the same contact.
func (c *coordinatorCommandsImpl) Assign(ctx context.Context, shiftID, userID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Shifts().FindByIDForUpdate(ctx, shiftID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrShiftNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		u, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if u.Status != "active" {
			return ErrUserNotOperable
		}
		if s.HasCoordinator(userID) {
			return ErrAlreadyCoordinator
		}

		group, err := tx.Shifts().FindBySlotGroup(ctx, s.SlotGroupID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		for _, member := range group {
			if member.AddCoordinator(userID) {
				if err := tx.Shifts().UpdateCoordinators(ctx, member.ID(), member.CoordinatorIDs()); err != nil {
					return errs.Mark(err, ErrDatabaseOperationFailed)
				}
			}
		}

		if err := c.assigner.SetCoordinator(ctx, tx, userID, true); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		slog.Info("coordinator assigned",
			"shift_id", shiftID, "user_id", userID, "slot_group_id", s.SlotGroupID(), "fanout", len(group))

		return notifyShift(ctx, tx, c.clock, mailer.TopicCoordinatorAssigned, userID, s, nil)
	})
}

// Remove takes the user off every shift in the slot group. When nothing
// else ties them to the event, a general enrollment keeps them on the
// roster; when no assignments remain anywhere, the coordinator role is
// surrendered.
func (c *coordinatorCommandsImpl) Remove(ctx context.Context, shiftID, userID uuid.UUID) error {
	now := c.clock.Now()
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Shifts().FindByIDForUpdate(ctx, shiftID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrShiftNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !s.HasCoordinator(userID) {
			return ErrNotCoordinator
		}

		group, err := tx.Shifts().FindBySlotGroup(ctx, s.SlotGroupID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		for _, member := range group {
			if member.RemoveCoordinator(userID) {
				if err := tx.Shifts().UpdateCoordinators(ctx, member.ID(), member.CoordinatorIDs()); err != nil {
					return errs.Mark(err, ErrDatabaseOperationFailed)
				}
			}
		}

		remainingEvent, err := tx.Shifts().CountCoordinatorAssignmentsForEvent(ctx, userID, s.EventID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		activeBookings, err := tx.Bookings().CountActiveByUserAndEvent(ctx, userID, s.EventID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if remainingEvent == 0 && activeBookings == 0 {
			enrollment := booking.NewGeneralEnrollment(userID, s.EventID(), now)
			if err := tx.Bookings().Create(ctx, enrollment); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			slog.Info("created general enrollment for removed coordinator",
				"user_id", userID, "event_id", s.EventID())
		}

		remainingTotal, err := tx.Shifts().CountCoordinatorAssignments(ctx, userID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if remainingTotal == 0 {
			if err := c.assigner.SetCoordinator(ctx, tx, userID, false); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		slog.Info("coordinator removed",
			"shift_id", shiftID, "user_id", userID, "slot_group_id", s.SlotGroupID(), "fanout", len(group))

		return notifyShift(ctx, tx, c.clock, mailer.TopicCoordinatorRemoved, userID, s, nil)
	})
}
