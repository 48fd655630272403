package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ShiftQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ShiftView, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*ShiftView, error)
	ListByRole(ctx context.Context, roleID uuid.UUID) ([]*ShiftView, error)
	ListByDate(ctx context.Context, eventID uuid.UUID, date time.Time) ([]*ShiftView, error)
	Waitlist(ctx context.Context, shiftID uuid.UUID) ([]*WaitlistView, error)
}

type ShiftViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ShiftView, error)
	FindByEvent(ctx context.Context, eventID uuid.UUID) ([]*ShiftView, error)
	FindByRole(ctx context.Context, roleID uuid.UUID) ([]*ShiftView, error)
	FindByEventAndDate(ctx context.Context, eventID uuid.UUID, date time.Time) ([]*ShiftView, error)
	FindWaitlist(ctx context.Context, shiftID uuid.UUID) ([]*WaitlistView, error)
}

type shiftQueriesImpl struct {
	repo ShiftViewRepo
}

func NewShiftQueries(repo ShiftViewRepo) ShiftQueries {
	return &shiftQueriesImpl{repo: repo}
}

func (q *shiftQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ShiftView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *shiftQueriesImpl) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*ShiftView, error) {
	return q.repo.FindByEvent(ctx, eventID)
}

func (q *shiftQueriesImpl) ListByRole(ctx context.Context, roleID uuid.UUID) ([]*ShiftView, error) {
	return q.repo.FindByRole(ctx, roleID)
}

func (q *shiftQueriesImpl) ListByDate(ctx context.Context, eventID uuid.UUID, date time.Time) ([]*ShiftView, error) {
	return q.repo.FindByEventAndDate(ctx, eventID, date)
}

func (q *shiftQueriesImpl) Waitlist(ctx context.Context, shiftID uuid.UUID) ([]*WaitlistView, error) {
	return q.repo.FindWaitlist(ctx, shiftID)
}
