package commands

import (
	"context"
	"log/slog"

	"volunteer-hub/internal/domain/role"
	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/pkg/errs"
	"volunteer-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidRoleInput = errs.New("invalid role input")
	ErrRoleHasShifts    = errs.New("role still has shifts")
)

type CreateRoleInput struct {
	EventID          uuid.UUID
	Name             string
	Description      string
	DetailedTasks    string
	YoutubeURL       string
	ExperienceLevel  string
	RequiresApproval bool
}

type UpdateRoleInput struct {
	Name             *string
	Description      *string
	DetailedTasks    *string
	YoutubeURL       *string
	ExperienceLevel  *string
	RequiresApproval *bool
	IsVisible        *bool
}

type RoleCommands interface {
	CreateRole(ctx context.Context, input CreateRoleInput) (uuid.UUID, error)
	UpdateRole(ctx context.Context, id uuid.UUID, input UpdateRoleInput) error
	DeleteRole(ctx context.Context, id uuid.UUID) error
}

type roleCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoleCommands(uow shared.UnitOfWork) RoleCommands {
	return &roleCommandsImpl{uow: uow}
}

func (c *roleCommandsImpl) CreateRole(ctx context.Context, input CreateRoleInput) (uuid.UUID, error) {
	r, err := role.NewRole(input.EventID, input.Name, input.Description, input.DetailedTasks,
		input.YoutubeURL, role.ExperienceLevel(input.ExperienceLevel), input.RequiresApproval)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRoleInput)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().EventByID(ctx, input.EventID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEventNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		created, err := tx.Roles().Create(ctx, shared.CreateRoleParams{
			EventID:          r.EventID(),
			Name:             r.Name(),
			Description:      r.Description(),
			DetailedTasks:    r.DetailedTasks(),
			YoutubeURL:       r.YoutubeURL(),
			ExperienceLevel:  string(r.ExperienceLevel()),
			RequiresApproval: r.RequiresApproval(),
			IsVisible:        r.IsVisible(),
		})
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		id = created
		slog.Info("role created", "role_id", id, "event_id", input.EventID, "name", input.Name)
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *roleCommandsImpl) UpdateRole(ctx context.Context, id uuid.UUID, input UpdateRoleInput) error {
	if input.ExperienceLevel != nil && !role.ExperienceLevel(*input.ExperienceLevel).IsValid() {
		return ErrInvalidRoleInput
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Roles().Update(ctx, id, shared.UpdateRoleParams{
			Name:             input.Name,
			Description:      input.Description,
			DetailedTasks:    input.DetailedTasks,
			YoutubeURL:       input.YoutubeURL,
			ExperienceLevel:  input.ExperienceLevel,
			RequiresApproval: input.RequiresApproval,
			IsVisible:        input.IsVisible,
		})
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoleNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *roleCommandsImpl) DeleteRole(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		attached, err := tx.Shifts().CountByRole(ctx, id)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if attached > 0 {
			return ErrRoleHasShifts
		}
		if err := tx.Roles().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoleNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		slog.Info("role deleted", "role_id", id)
		return nil
	})
}
