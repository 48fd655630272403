package repository

import (
	"context"

	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type WaitlistRepository struct {
	db db.DBTX
}

func NewWaitlistRepository(dbtx db.DBTX) *WaitlistRepository {
	return &WaitlistRepository{db: dbtx}
}

var _ shared.WaitlistRepository = (*WaitlistRepository)(nil)

func (r *WaitlistRepository) Create(ctx context.Context, e *shared.WaitlistEntry) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO waitlist (id, user_id, shift_id, event_id, position)
		VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.UserID, e.ShiftID, e.EventID, e.Position)
	if err != nil {
		return infra.WrapRepoErr("failed to create waitlist entry", err)
	}
	return nil
}

func (r *WaitlistRepository) CountByShift(ctx context.Context, shiftID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM waitlist WHERE shift_id = $1`, shiftID).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count waitlist", err)
	}
	return n, nil
}

func (r *WaitlistRepository) FindNextByShift(ctx context.Context, shiftID uuid.UUID) (*shared.WaitlistEntry, error) {
	var e shared.WaitlistEntry
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, shift_id, event_id, position, created_at
		FROM waitlist
		WHERE shift_id = $1
		ORDER BY position
		LIMIT 1`, shiftID).Scan(&e.ID, &e.UserID, &e.ShiftID, &e.EventID, &e.Position, &e.JoinedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find next waitlist entry", err)
	}
	return &e, nil
}

func (r *WaitlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM waitlist WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete waitlist entry", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("waitlist entry not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *WaitlistRepository) DeleteByUserAndShift(ctx context.Context, userID, shiftID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM waitlist WHERE user_id = $1 AND shift_id = $2`, userID, shiftID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete waitlist entry", err)
	}
	return nil
}
