package queries

import (
	"context"

	"github.com/google/uuid"
)

// UserReadStore is the credential lookup the auth flow depends on. The
// password hash travels beside the view so it never leaks into responses.
type UserReadStore interface {
	FindCredentialsByIdentifier(ctx context.Context, identifier string) (*AuthorizedUserView, string, error)
	FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type UserQueries interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*UserProfileView, error)
	GetAuthorized(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*UserProfileView, error)
}

type UserViewRepo interface {
	FindProfileByID(ctx context.Context, id uuid.UUID) (*UserProfileView, error)
	FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEvent(ctx context.Context, eventID uuid.UUID) ([]*UserProfileView, error)
}

type userQueriesImpl struct {
	repo UserViewRepo
}

func NewUserQueries(repo UserViewRepo) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) GetProfile(ctx context.Context, id uuid.UUID) (*UserProfileView, error) {
	return q.repo.FindProfileByID(ctx, id)
}

func (q *userQueriesImpl) GetAuthorized(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	return q.repo.FindAuthorizedByID(ctx, id)
}

func (q *userQueriesImpl) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*UserProfileView, error) {
	return q.repo.FindByEvent(ctx, eventID)
}
