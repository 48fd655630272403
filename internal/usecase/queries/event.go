package queries

import (
	"context"

	"github.com/google/uuid"
)

type EventQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	GetBySlug(ctx context.Context, slug string) (*EventView, error)
	ListActive(ctx context.Context) ([]*EventView, error)
	ListAll(ctx context.Context) ([]*EventView, error)
	ListRoles(ctx context.Context, eventID uuid.UUID, visibleOnly bool) ([]*RoleView, error)
}

type EventViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	FindBySlug(ctx context.Context, slug string) (*EventView, error)
	FindByState(ctx context.Context, state string) ([]*EventView, error)
	FindAll(ctx context.Context) ([]*EventView, error)
	FindRoles(ctx context.Context, eventID uuid.UUID, visibleOnly bool) ([]*RoleView, error)
}

type eventQueriesImpl struct {
	repo EventViewRepo
}

func NewEventQueries(repo EventViewRepo) EventQueries {
	return &eventQueriesImpl{repo: repo}
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EventView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *eventQueriesImpl) GetBySlug(ctx context.Context, slug string) (*EventView, error) {
	return q.repo.FindBySlug(ctx, slug)
}

func (q *eventQueriesImpl) ListActive(ctx context.Context) ([]*EventView, error) {
	return q.repo.FindByState(ctx, "active")
}

func (q *eventQueriesImpl) ListAll(ctx context.Context) ([]*EventView, error) {
	return q.repo.FindAll(ctx)
}

func (q *eventQueriesImpl) ListRoles(ctx context.Context, eventID uuid.UUID, visibleOnly bool) ([]*RoleView, error) {
	return q.repo.FindRoles(ctx, eventID, visibleOnly)
}
