package commands

import (
	"context"
	"log/slog"

	"volunteer-hub/internal/domain/event"
	"volunteer-hub/internal/domain/shift"
	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/pkg/errs"
	"volunteer-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound       = errs.New("event not found")
	ErrInvalidEventInput   = errs.New("invalid event input")
	ErrDuplicateEventSlug  = errs.New("event slug already exists")
	ErrEventHasLiveBooking = errs.New("event still has live bookings")
)

type CreateEventInput struct {
	Name        string
	Location    string
	Country     string
	StartDate   string
	EndDate     string
	Description string
}

type UpdateEventInput struct {
	Name        *string
	Location    *string
	Country     *string
	StartDate   *string
	EndDate     *string
	Description *string
	State       *string
}

type EventCommands interface {
	CreateEvent(ctx context.Context, input CreateEventInput) (uuid.UUID, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, input UpdateEventInput) error
	ArchiveEvent(ctx context.Context, id uuid.UUID) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

type eventCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewEventCommands(uow shared.UnitOfWork) EventCommands {
	return &eventCommandsImpl{uow: uow}
}

func (c *eventCommandsImpl) CreateEvent(ctx context.Context, input CreateEventInput) (uuid.UUID, error) {
	startDate, err := shift.ParseDate(input.StartDate)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidEventInput)
	}
	endDate, err := shift.ParseDate(input.EndDate)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidEventInput)
	}

	e, err := event.NewEvent(input.Name, input.Location, input.Country, startDate, endDate, input.Description)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidEventInput)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Events().Create(ctx, shared.CreateEventParams{
			Slug:        e.Slug(),
			Name:        e.Name(),
			Location:    e.Location(),
			Country:     e.Country(),
			StartDate:   e.StartDate(),
			EndDate:     e.EndDate(),
			Description: e.Description(),
			State:       string(e.State()),
		})
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateEventSlug
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		id = created
		slog.Info("event created", "event_id", id, "slug", e.Slug())
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *eventCommandsImpl) UpdateEvent(ctx context.Context, id uuid.UUID, input UpdateEventInput) error {
	params := shared.UpdateEventParams{
		Name:        input.Name,
		Location:    input.Location,
		Country:     input.Country,
		Description: input.Description,
	}
	if input.StartDate != nil {
		parsed, err := shift.ParseDate(*input.StartDate)
		if err != nil {
			return errs.Mark(err, ErrInvalidEventInput)
		}
		params.StartDate = &parsed
	}
	if input.EndDate != nil {
		parsed, err := shift.ParseDate(*input.EndDate)
		if err != nil {
			return errs.Mark(err, ErrInvalidEventInput)
		}
		params.EndDate = &parsed
	}
	if input.State != nil {
		if !event.State(*input.State).IsValid() {
			return ErrInvalidEventInput
		}
		params.State = input.State
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Events().Update(ctx, id, params); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEventNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// ArchiveEvent freezes the event: no new bookings, history preserved.
func (c *eventCommandsImpl) ArchiveEvent(ctx context.Context, id uuid.UUID) error {
	state := string(event.StateArchived)
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Events().Update(ctx, id, shared.UpdateEventParams{State: &state}); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEventNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		slog.Info("event archived", "event_id", id)
		return nil
	})
}

func (c *eventCommandsImpl) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		live, err := tx.Bookings().CountByEvent(ctx, id)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if live > 0 {
			return ErrEventHasLiveBooking
		}
		if err := tx.Events().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEventNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		slog.Info("event deleted", "event_id", id)
		return nil
	})
}
