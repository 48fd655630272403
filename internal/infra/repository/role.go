package repository

import (
	"context"
	"strconv"
	"strings"

	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoleRepository struct {
	db db.DBTX
}

func NewRoleRepository(dbtx db.DBTX) *RoleRepository {
	return &RoleRepository{db: dbtx}
}

var _ shared.RoleRepository = (*RoleRepository)(nil)

func (r *RoleRepository) Create(ctx context.Context, params shared.CreateRoleParams) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO roles (id, event_id, name, description, detailed_tasks, youtube_url,
		                   experience_level, requires_approval, is_visible)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id, params.EventID, params.Name, params.Description, params.DetailedTasks,
		params.YoutubeURL, params.ExperienceLevel, params.RequiresApproval, params.IsVisible)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create role", err)
	}
	return id, nil
}

func (r *RoleRepository) Update(ctx context.Context, id uuid.UUID, params shared.UpdateRoleParams) error {
	sets := []string{"updated_at = NOW()"}
	args := []any{id}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, col+" = $"+strconv.Itoa(len(args)))
	}
	if params.Name != nil {
		add("name", *params.Name)
	}
	if params.Description != nil {
		add("description", *params.Description)
	}
	if params.DetailedTasks != nil {
		add("detailed_tasks", *params.DetailedTasks)
	}
	if params.YoutubeURL != nil {
		add("youtube_url", *params.YoutubeURL)
	}
	if params.ExperienceLevel != nil {
		add("experience_level", *params.ExperienceLevel)
	}
	if params.RequiresApproval != nil {
		add("requires_approval", *params.RequiresApproval)
	}
	if params.IsVisible != nil {
		add("is_visible", *params.IsVisible)
	}

	tag, err := r.db.Exec(ctx, `UPDATE roles SET `+strings.Join(sets, ", ")+` WHERE id = $1`, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update role", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("role not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete role", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("role not found", nil, infra.KindNotFound)
	}
	return nil
}
