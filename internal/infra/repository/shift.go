package repository

import (
	"context"
	"time"

	"volunteer-hub/internal/domain/shift"
	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type ShiftRepository struct {
	db db.DBTX
}

func NewShiftRepository(dbtx db.DBTX) *ShiftRepository {
	return &ShiftRepository{db: dbtx}
}

var _ shared.ShiftRepository = (*ShiftRepository)(nil)

const shiftColumns = `id, event_id, role_id, slot_group_id, shift_date, time_window, total_vacancies, coordinator_ids, created_at, updated_at`

func (r *ShiftRepository) Create(ctx context.Context, s *shift.Shift) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO shifts (id, event_id, role_id, slot_group_id, shift_date, time_window, total_vacancies, coordinator_ids)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID(), s.EventID(), s.RoleID(), s.SlotGroupID(), s.Date(), s.Window().String(), s.TotalVacancies(), s.CoordinatorIDs())
	if err != nil {
		return infra.WrapRepoErr("failed to create shift", err)
	}
	return nil
}

func (r *ShiftRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*shift.Shift, error) {
	row := r.db.QueryRow(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE id = $1 FOR UPDATE`, id)
	return scanShift(row)
}

func (r *ShiftRepository) FindBySlotGroup(ctx context.Context, slotGroupID uuid.UUID) ([]*shift.Shift, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+shiftColumns+` FROM shifts
		WHERE slot_group_id = $1
		ORDER BY created_at`, slotGroupID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query shifts by slot group", err)
	}
	defer rows.Close()

	var shifts []*shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate shifts", err)
	}
	return shifts, nil
}

func (r *ShiftRepository) Update(ctx context.Context, s *shift.Shift) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE shifts
		SET role_id = $2, slot_group_id = $3, shift_date = $4, time_window = $5,
		    total_vacancies = $6, coordinator_ids = $7, updated_at = NOW()
		WHERE id = $1`,
		s.ID(), s.RoleID(), s.SlotGroupID(), s.Date(), s.Window().String(), s.TotalVacancies(), s.CoordinatorIDs())
	if err != nil {
		return infra.WrapRepoErr("failed to update shift", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("shift not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ShiftRepository) UpdateCoordinators(ctx context.Context, shiftID uuid.UUID, coordinatorIDs []uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE shifts SET coordinator_ids = $2, updated_at = NOW() WHERE id = $1`,
		shiftID, coordinatorIDs)
	if err != nil {
		return infra.WrapRepoErr("failed to update shift coordinators", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("shift not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ShiftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete shift", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("shift not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ShiftRepository) CountCoordinatorAssignments(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM shifts WHERE $1 = ANY(coordinator_ids)`, userID).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count coordinator assignments", err)
	}
	return n, nil
}

func (r *ShiftRepository) CountCoordinatorAssignmentsForEvent(ctx context.Context, userID, eventID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM shifts
		WHERE event_id = $2 AND $1 = ANY(coordinator_ids)`, userID, eventID).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count coordinator assignments for event", err)
	}
	return n, nil
}

func (r *ShiftRepository) CountByRole(ctx context.Context, roleID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM shifts WHERE role_id = $1`, roleID).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count shifts by role", err)
	}
	return n, nil
}

func scanShift(row rowScanner) (*shift.Shift, error) {
	var (
		id, eventID, roleID, slotGroupID uuid.UUID
		date                             time.Time
		rawWindow                        string
		totalVacancies                   int
		coordinatorIDs                   []uuid.UUID
		createdAt, updatedAt             time.Time
	)
	if err := row.Scan(&id, &eventID, &roleID, &slotGroupID, &date, &rawWindow, &totalVacancies, &coordinatorIDs, &createdAt, &updatedAt); err != nil {
		return nil, infra.WrapRepoErr("failed to scan shift", err)
	}
	window, err := shift.NewTimeWindow(rawWindow)
	if err != nil {
		return nil, infra.WrapRepoErr("stored time window is malformed", err, infra.KindDBFailure)
	}
	return shift.ReconstructShift(id, eventID, roleID, slotGroupID, date, window, totalVacancies, coordinatorIDs, createdAt, updatedAt), nil
}
