package readstore

import (
	"context"
	"time"

	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

var _ queries.BookingViewRepo = (*BookingReadStore)(nil)

const bookingViewSQL = `
	SELECT b.id, b.user_id, u.full_name, u.phone, b.shift_id, b.event_id,
	       COALESCE(r.name, ''), s.shift_date, COALESCE(s.time_window, ''),
	       b.status, b.attendance, b.requested_at, b.cancelled_at
	FROM bookings b
	JOIN users u ON u.id = b.user_id
	LEFT JOIN shifts s ON s.id = b.shift_id
	LEFT JOIN roles r ON r.id = s.role_id`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingViewSQL+` WHERE b.id = $1`, id)
	v, err := scanBookingView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return v, nil
}

func (r *BookingReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	return r.query(ctx, bookingViewSQL+` WHERE b.user_id = $1 ORDER BY b.requested_at DESC`, userID)
}

func (r *BookingReadStore) FindByShift(ctx context.Context, shiftID uuid.UUID) ([]*queries.BookingView, error) {
	return r.query(ctx, bookingViewSQL+` WHERE b.shift_id = $1 ORDER BY b.requested_at`, shiftID)
}

func (r *BookingReadStore) FindByEventAndStatus(ctx context.Context, eventID uuid.UUID, status string) ([]*queries.BookingView, error) {
	return r.query(ctx, bookingViewSQL+` WHERE b.event_id = $1 AND b.status = $2 ORDER BY b.requested_at`, eventID, status)
}

func (r *BookingReadStore) query(ctx context.Context, sql string, args ...any) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking views", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var (
		v    queries.BookingView
		date *time.Time
	)
	if err := row.Scan(&v.ID, &v.UserID, &v.UserFullName, &v.UserPhone, &v.ShiftID, &v.EventID,
		&v.RoleName, &date, &v.TimeWindow, &v.Status, &v.Attendance, &v.RequestedAt, &v.CancelledAt); err != nil {
		return nil, err
	}
	v.Date = date
	return &v, nil
}
