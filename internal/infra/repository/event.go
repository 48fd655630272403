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

type EventRepository struct {
	db db.DBTX
}

func NewEventRepository(dbtx db.DBTX) *EventRepository {
	return &EventRepository{db: dbtx}
}

var _ shared.EventRepository = (*EventRepository)(nil)

func (r *EventRepository) Create(ctx context.Context, params shared.CreateEventParams) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO events (id, slug, name, location, country, start_date, end_date, description, state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id, params.Slug, params.Name, params.Location, params.Country,
		params.StartDate, params.EndDate, params.Description, params.State)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create event", err)
	}
	return id, nil
}

func (r *EventRepository) Update(ctx context.Context, id uuid.UUID, params shared.UpdateEventParams) error {
	sets := []string{"updated_at = NOW()"}
	args := []any{id}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, col+" = $"+strconv.Itoa(len(args)))
	}
	if params.Name != nil {
		add("name", *params.Name)
	}
	if params.Location != nil {
		add("location", *params.Location)
	}
	if params.Country != nil {
		add("country", *params.Country)
	}
	if params.StartDate != nil {
		add("start_date", *params.StartDate)
	}
	if params.EndDate != nil {
		add("end_date", *params.EndDate)
	}
	if params.Description != nil {
		add("description", *params.Description)
	}
	if params.State != nil {
		add("state", *params.State)
	}

	tag, err := r.db.Exec(ctx, `UPDATE events SET `+strings.Join(sets, ", ")+` WHERE id = $1`, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	return nil
}
