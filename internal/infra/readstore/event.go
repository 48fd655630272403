package readstore

import (
	"context"

	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventReadStore struct {
	db db.DBTX
}

func NewEventReadStore(dbtx db.DBTX) *EventReadStore {
	return &EventReadStore{db: dbtx}
}

var _ queries.EventViewRepo = (*EventReadStore)(nil)

const eventColumns = `id, slug, name, location, country, start_date, end_date, description, state, created_at, updated_at`

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	v, err := scanEventView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find event", err)
	}
	return v, nil
}

func (r *EventReadStore) FindBySlug(ctx context.Context, slug string) (*queries.EventView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE slug = $1`, slug)
	v, err := scanEventView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find event by slug", err)
	}
	return v, nil
}

func (r *EventReadStore) FindByState(ctx context.Context, state string) ([]*queries.EventView, error) {
	return r.query(ctx, `SELECT `+eventColumns+` FROM events WHERE state = $1 ORDER BY start_date DESC`, state)
}

func (r *EventReadStore) FindAll(ctx context.Context) ([]*queries.EventView, error) {
	return r.query(ctx, `SELECT `+eventColumns+` FROM events ORDER BY start_date DESC`)
}

func (r *EventReadStore) FindRoles(ctx context.Context, eventID uuid.UUID, visibleOnly bool) ([]*queries.RoleView, error) {
	sql := `
		SELECT r.id, r.event_id, r.name, r.description, r.detailed_tasks, r.youtube_url,
		       r.experience_level, r.requires_approval, r.is_visible,
		       (SELECT COUNT(*) FROM shifts s WHERE s.role_id = r.id)
		FROM roles r
		WHERE r.event_id = $1`
	if visibleOnly {
		sql += ` AND r.is_visible`
	}
	sql += ` ORDER BY r.name`

	rows, err := r.db.Query(ctx, sql, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query roles", err)
	}
	defer rows.Close()

	var views []*queries.RoleView
	for rows.Next() {
		var v queries.RoleView
		if err := rows.Scan(&v.ID, &v.EventID, &v.Name, &v.Description, &v.DetailedTasks,
			&v.YoutubeURL, &v.ExperienceLevel, &v.RequiresApproval, &v.IsVisible, &v.ShiftCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan role view", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate role views", err)
	}
	return views, nil
}

func (r *EventReadStore) query(ctx context.Context, sql string, args ...any) ([]*queries.EventView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query events", err)
	}
	defer rows.Close()

	var views []*queries.EventView
	for rows.Next() {
		v, err := scanEventView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan event view", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate event views", err)
	}
	return views, nil
}

func scanEventView(row rowScanner) (*queries.EventView, error) {
	var v queries.EventView
	if err := row.Scan(&v.ID, &v.Slug, &v.Name, &v.Location, &v.Country, &v.StartDate,
		&v.EndDate, &v.Description, &v.State, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}
