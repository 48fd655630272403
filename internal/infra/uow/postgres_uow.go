package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/infra/repository"
	"volunteer-hub/internal/pkg/errs"
	"volunteer-hub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes.
// Row locks taken via FindByIDForUpdate serialize capacity decisions.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	bookingRepo      shared.BookingRepository
	shiftRepo        shared.ShiftRepository
	waitlistRepo     shared.WaitlistRepository
	userRepo         shared.UserRepository
	eventRepo        shared.EventRepository
	roleRepo         shared.RoleRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Shifts() shared.ShiftRepository {
	if t.shiftRepo == nil {
		t.shiftRepo = repository.NewShiftRepository(t.dbtx)
	}
	return t.shiftRepo
}

func (t *pgTx) Waitlist() shared.WaitlistRepository {
	if t.waitlistRepo == nil {
		t.waitlistRepo = repository.NewWaitlistRepository(t.dbtx)
	}
	return t.waitlistRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Events() shared.EventRepository {
	if t.eventRepo == nil {
		t.eventRepo = repository.NewEventRepository(t.dbtx)
	}
	return t.eventRepo
}

func (t *pgTx) Roles() shared.RoleRepository {
	if t.roleRepo == nil {
		t.roleRepo = repository.NewRoleRepository(t.dbtx)
	}
	return t.roleRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

// commandReads serves write-side snapshots. Inside a transaction it sees
// the transaction's own uncommitted changes.
type commandReads struct {
	dbtx db.DBTX
}

func (r *commandReads) ShiftByID(ctx context.Context, id uuid.UUID) (*shared.ShiftSnapshot, error) {
	var s shared.ShiftSnapshot
	err := r.dbtx.QueryRow(ctx, `
		SELECT id, event_id, role_id, slot_group_id, shift_date, time_window, total_vacancies, coordinator_ids
		FROM shifts WHERE id = $1`, id).
		Scan(&s.ID, &s.EventID, &s.RoleID, &s.SlotGroupID, &s.Date, &s.TimeWindow, &s.TotalVacancies, &s.CoordinatorIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read shift snapshot", err)
	}
	return &s, nil
}

func (r *commandReads) RoleByID(ctx context.Context, id uuid.UUID) (*shared.RoleSnapshot, error) {
	var s shared.RoleSnapshot
	err := r.dbtx.QueryRow(ctx, `
		SELECT id, event_id, name, requires_approval, is_visible
		FROM roles WHERE id = $1`, id).
		Scan(&s.ID, &s.EventID, &s.Name, &s.RequiresApproval, &s.IsVisible)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read role snapshot", err)
	}
	return &s, nil
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var s shared.BookingSnapshot
	err := r.dbtx.QueryRow(ctx, `
		SELECT id, user_id, shift_id, event_id, status, attendance, requested_at, cancelled_at
		FROM bookings WHERE id = $1`, id).
		Scan(&s.ID, &s.UserID, &s.ShiftID, &s.EventID, &s.Status, &s.Attendance, &s.RequestedAt, &s.CancelledAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read booking snapshot", err)
	}
	return &s, nil
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	var s shared.UserSnapshot
	err := r.dbtx.QueryRow(ctx, `
		SELECT id, dni, full_name, email, phone, role, status
		FROM users WHERE id = $1`, id).
		Scan(&s.ID, &s.DNI, &s.FullName, &s.Email, &s.Phone, &s.Role, &s.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read user snapshot", err)
	}
	return &s, nil
}

func (r *commandReads) EventByID(ctx context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	var s shared.EventSnapshot
	err := r.dbtx.QueryRow(ctx, `
		SELECT id, slug, name, location, start_date, end_date, state
		FROM events WHERE id = $1`, id).
		Scan(&s.ID, &s.Slug, &s.Name, &s.Location, &s.StartDate, &s.EndDate, &s.State)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read event snapshot", err)
	}
	return &s, nil
}
