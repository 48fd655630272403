package repository

import (
	"context"
	"time"

	"volunteer-hub/internal/domain/booking"
	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

var _ shared.BookingRepository = (*BookingRepository)(nil)

const bookingColumns = `id, user_id, shift_id, event_id, status, attendance, requested_at, cancelled_at`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (id, user_id, shift_id, event_id, status, attendance, requested_at, cancelled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID(), b.UserID(), b.ShiftID(), b.EventID(), string(b.Status()), string(b.Attendance()), b.RequestedAt(), b.CancelledAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateState(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET status = $2, attendance = $3, cancelled_at = $4, updated_at = NOW()
		WHERE id = $1`,
		b.ID(), string(b.Status()), string(b.Attendance()), b.CancelledAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	return scanBooking(row)
}

func (r *BookingRepository) FindActiveByUserAndShift(ctx context.Context, userID, shiftID uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+bookingColumns+` FROM bookings
		WHERE user_id = $1 AND shift_id = $2 AND status != 'cancelled'
		ORDER BY requested_at DESC
		LIMIT 1`, userID, shiftID)
	return scanBooking(row)
}

func (r *BookingRepository) FindWaitlistedByUserAndShift(ctx context.Context, userID, shiftID uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+bookingColumns+` FROM bookings
		WHERE user_id = $1 AND shift_id = $2 AND status = 'waitlist'
		LIMIT 1`, userID, shiftID)
	return scanBooking(row)
}

func (r *BookingRepository) CountByShiftAndStatuses(ctx context.Context, shiftID uuid.UUID, statuses ...booking.Status) (int, error) {
	raw := make([]string, len(statuses))
	for i, s := range statuses {
		raw[i] = string(s)
	}
	var n int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM bookings
		WHERE shift_id = $1 AND status = ANY($2)`, shiftID, raw).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings by shift", err)
	}
	return n, nil
}

func (r *BookingRepository) FindByShiftAndStatuses(ctx context.Context, shiftID uuid.UUID, statuses ...booking.Status) ([]*booking.Booking, error) {
	raw := make([]string, len(statuses))
	for i, s := range statuses {
		raw[i] = string(s)
	}
	rows, err := r.db.Query(ctx, `
		SELECT `+bookingColumns+` FROM bookings
		WHERE shift_id = $1 AND status = ANY($2)
		ORDER BY requested_at`, shiftID, raw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings by shift", err)
	}
	defer rows.Close()

	var bookings []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return bookings, nil
}

func (r *BookingRepository) CountConfirmedForUsers(ctx context.Context, shiftID uuid.UUID, userIDs []uuid.UUID) (int, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}
	var n int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM bookings
		WHERE shift_id = $1
		  AND user_id = ANY($2)
		  AND status IN ('confirmed', 'cancellation_requested')`, shiftID, userIDs).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count coordinator bookings", err)
	}
	return n, nil
}

func (r *BookingRepository) CountActiveByUserAndEvent(ctx context.Context, userID, eventID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM bookings
		WHERE user_id = $1 AND event_id = $2 AND status != 'cancelled'`, userID, eventID).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count user bookings for event", err)
	}
	return n, nil
}

func (r *BookingRepository) CountActiveByShift(ctx context.Context, shiftID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM bookings
		WHERE shift_id = $1 AND status != 'cancelled'`, shiftID).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active bookings", err)
	}
	return n, nil
}

func (r *BookingRepository) CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM bookings WHERE event_id = $1 AND status != 'cancelled'`, eventID).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count event bookings", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id, userID, eventID uuid.UUID
		shiftID             *uuid.UUID
		status, attendance  string
		requestedAt         time.Time
		cancelledAt         *time.Time
	)
	if err := row.Scan(&id, &userID, &shiftID, &eventID, &status, &attendance, &requestedAt, &cancelledAt); err != nil {
		return nil, infra.WrapRepoErr("failed to scan booking", err)
	}
	return booking.ReconstructBooking(
		id, userID, shiftID, eventID,
		booking.Status(status), booking.Attendance(attendance),
		requestedAt, cancelledAt,
	), nil
}
