package queries

import (
	"context"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	ListByShift(ctx context.Context, shiftID uuid.UUID) ([]*BookingView, error)
	ListPendingCancellations(ctx context.Context, eventID uuid.UUID) ([]*BookingView, error)
	ListPendingApprovals(ctx context.Context, eventID uuid.UUID) ([]*BookingView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	FindByShift(ctx context.Context, shiftID uuid.UUID) ([]*BookingView, error)
	FindByEventAndStatus(ctx context.Context, eventID uuid.UUID, status string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	return q.repo.FindByUser(ctx, userID)
}

func (q *bookingQueriesImpl) ListByShift(ctx context.Context, shiftID uuid.UUID) ([]*BookingView, error) {
	return q.repo.FindByShift(ctx, shiftID)
}

func (q *bookingQueriesImpl) ListPendingCancellations(ctx context.Context, eventID uuid.UUID) ([]*BookingView, error) {
	return q.repo.FindByEventAndStatus(ctx, eventID, "cancellation_requested")
}

func (q *bookingQueriesImpl) ListPendingApprovals(ctx context.Context, eventID uuid.UUID) ([]*BookingView, error) {
	return q.repo.FindByEventAndStatus(ctx, eventID, "pending_approval")
}
