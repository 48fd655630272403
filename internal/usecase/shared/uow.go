package shared

import (
	"context"
	"time"

	"volunteer-hub/internal/domain/booking"
	"volunteer-hub/internal/domain/shift"
	"volunteer-hub/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Shifts() ShiftRepository
	Waitlist() WaitlistRepository
	Users() UserRepository
	Events() EventRepository
	Roles() RoleRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ShiftByID(ctx context.Context, id uuid.UUID) (*ShiftSnapshot, error)
	RoleByID(ctx context.Context, id uuid.UUID) (*RoleSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	EventByID(ctx context.Context, id uuid.UUID) (*EventSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	UpdateState(ctx context.Context, b *booking.Booking) error
	// FindActiveByUserAndShift returns the user's non-cancelled booking for
	// the shift, or a NOT_FOUND repo error when none exists.
	FindActiveByUserAndShift(ctx context.Context, userID, shiftID uuid.UUID) (*booking.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindWaitlistedByUserAndShift(ctx context.Context, userID, shiftID uuid.UUID) (*booking.Booking, error)
	CountByShiftAndStatuses(ctx context.Context, shiftID uuid.UUID, statuses ...booking.Status) (int, error)
	FindByShiftAndStatuses(ctx context.Context, shiftID uuid.UUID, statuses ...booking.Status) ([]*booking.Booking, error)
	// CountConfirmedForUsers counts slot-occupying bookings on the shift
	// belonging to any of the given users.
	CountConfirmedForUsers(ctx context.Context, shiftID uuid.UUID, userIDs []uuid.UUID) (int, error)
	CountActiveByUserAndEvent(ctx context.Context, userID, eventID uuid.UUID) (int, error)
	CountActiveByShift(ctx context.Context, shiftID uuid.UUID) (int, error)
	CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error)
}

type ShiftRepository interface {
	Create(ctx context.Context, s *shift.Shift) error
	// FindByIDForUpdate locks the shift row for the rest of the transaction,
	// serializing capacity checks against concurrent bookings.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*shift.Shift, error)
	FindBySlotGroup(ctx context.Context, slotGroupID uuid.UUID) ([]*shift.Shift, error)
	Update(ctx context.Context, s *shift.Shift) error
	UpdateCoordinators(ctx context.Context, shiftID uuid.UUID, coordinatorIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountCoordinatorAssignments(ctx context.Context, userID uuid.UUID) (int, error)
	CountCoordinatorAssignmentsForEvent(ctx context.Context, userID, eventID uuid.UUID) (int, error)
	CountByRole(ctx context.Context, roleID uuid.UUID) (int, error)
}

type WaitlistRepository interface {
	Create(ctx context.Context, e *WaitlistEntry) error
	CountByShift(ctx context.Context, shiftID uuid.UUID) (int, error)
	// FindNextByShift returns the lowest-position entry, or a NOT_FOUND
	// repo error when the waitlist is empty.
	FindNextByShift(ctx context.Context, shiftID uuid.UUID) (*WaitlistEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserAndShift(ctx context.Context, userID, shiftID uuid.UUID) error
}

type UserRepository interface {
	UpdateRole(ctx context.Context, userID uuid.UUID, role string) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
	Create(ctx context.Context, params CreateUserParams) (uuid.UUID, error)
}

type EventRepository interface {
	Create(ctx context.Context, params CreateEventParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateEventParams) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoleRepository interface {
	Create(ctx context.Context, params CreateRoleParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateRoleParams) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
