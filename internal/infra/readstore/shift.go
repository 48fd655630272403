package readstore

import (
	"context"
	"time"

	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ShiftReadStore struct {
	db db.DBTX
}

func NewShiftReadStore(dbtx db.DBTX) *ShiftReadStore {
	return &ShiftReadStore{db: dbtx}
}

var _ queries.ShiftViewRepo = (*ShiftReadStore)(nil)

// shiftViewSQL joins per-shift occupancy in one round trip. Occupancy
// counts confirmed and cancellation-requested bookings plus coordinators
// who hold no such booking on the shift.
const shiftViewSQL = `
	SELECT s.id, s.event_id, s.role_id, r.name, s.slot_group_id, s.shift_date,
	       s.time_window, s.total_vacancies, s.coordinator_ids,
	       COALESCE(b.confirmed, 0) AS confirmed,
	       COALESCE(b.coordinator_booked, 0) AS coordinator_booked,
	       COALESCE(w.entries, 0) AS waitlist_entries,
	       s.created_at, s.updated_at
	FROM shifts s
	JOIN roles r ON r.id = s.role_id
	LEFT JOIN LATERAL (
		SELECT COUNT(*) AS confirmed,
		       COUNT(*) FILTER (WHERE bk.user_id = ANY(s.coordinator_ids)) AS coordinator_booked
		FROM bookings bk
		WHERE bk.shift_id = s.id AND bk.status IN ('confirmed', 'cancellation_requested')
	) b ON TRUE
	LEFT JOIN LATERAL (
		SELECT COUNT(*) AS entries FROM waitlist wl WHERE wl.shift_id = s.id
	) w ON TRUE`

func (r *ShiftReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ShiftView, error) {
	views, err := r.query(ctx, shiftViewSQL+` WHERE s.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, infra.WrapRepoErr("shift not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return views[0], nil
}

func (r *ShiftReadStore) FindByEvent(ctx context.Context, eventID uuid.UUID) ([]*queries.ShiftView, error) {
	return r.query(ctx, shiftViewSQL+` WHERE s.event_id = $1 ORDER BY s.shift_date, s.time_window, r.name`, eventID)
}

func (r *ShiftReadStore) FindByRole(ctx context.Context, roleID uuid.UUID) ([]*queries.ShiftView, error) {
	return r.query(ctx, shiftViewSQL+` WHERE s.role_id = $1 ORDER BY s.shift_date, s.time_window`, roleID)
}

func (r *ShiftReadStore) FindByEventAndDate(ctx context.Context, eventID uuid.UUID, date time.Time) ([]*queries.ShiftView, error) {
	return r.query(ctx, shiftViewSQL+` WHERE s.event_id = $1 AND s.shift_date = $2 ORDER BY s.time_window, r.name`, eventID, date)
}

func (r *ShiftReadStore) FindWaitlist(ctx context.Context, shiftID uuid.UUID) ([]*queries.WaitlistView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT wl.id, wl.user_id, u.full_name, wl.position, wl.created_at
		FROM waitlist wl
		JOIN users u ON u.id = wl.user_id
		WHERE wl.shift_id = $1
		ORDER BY wl.position`, shiftID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query waitlist", err)
	}
	defer rows.Close()

	var views []*queries.WaitlistView
	for rows.Next() {
		var v queries.WaitlistView
		if err := rows.Scan(&v.ID, &v.UserID, &v.FullName, &v.Position, &v.JoinedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan waitlist entry", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate waitlist", err)
	}
	return views, nil
}

func (r *ShiftReadStore) query(ctx context.Context, sql string, args ...any) ([]*queries.ShiftView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query shifts", err)
	}
	defer rows.Close()

	var views []*queries.ShiftView
	for rows.Next() {
		var (
			v                 queries.ShiftView
			coordinatorIDs    []uuid.UUID
			confirmed         int
			coordinatorBooked int
		)
		if err := rows.Scan(&v.ID, &v.EventID, &v.RoleID, &v.RoleName, &v.SlotGroupID, &v.Date,
			&v.TimeWindow, &v.TotalVacancies, &coordinatorIDs,
			&confirmed, &coordinatorBooked, &v.WaitlistCount,
			&v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan shift view", err)
		}

		occupied := confirmed + (len(coordinatorIDs) - coordinatorBooked)
		v.ConfirmedCount = confirmed
		v.AvailableVacancies = v.TotalVacancies - occupied
		if v.AvailableVacancies < 0 {
			v.AvailableVacancies = 0
		}
		v.Coordinators = make([]queries.CoordinatorView, 0, len(coordinatorIDs))
		for _, id := range coordinatorIDs {
			v.Coordinators = append(v.Coordinators, queries.CoordinatorView{ID: id})
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate shift views", err)
	}

	if err := r.fillCoordinatorNames(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *ShiftReadStore) fillCoordinatorNames(ctx context.Context, views []*queries.ShiftView) error {
	ids := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]struct{})
	for _, v := range views {
		for _, c := range v.Coordinators {
			if _, ok := seen[c.ID]; !ok {
				seen[c.ID] = struct{}{}
				ids = append(ids, c.ID)
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}

	rows, err := r.db.Query(ctx, `SELECT id, full_name, phone FROM users WHERE id = ANY($1)`, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to query coordinator names", err)
	}
	defer rows.Close()

	type person struct {
		name  string
		phone string
	}
	people := make(map[uuid.UUID]person, len(ids))
	for rows.Next() {
		var (
			id          uuid.UUID
			name, phone string
		)
		if err := rows.Scan(&id, &name, &phone); err != nil {
			return infra.WrapRepoErr("failed to scan coordinator", err)
		}
		people[id] = person{name: name, phone: phone}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate coordinators", err)
	}

	for _, v := range views {
		for i := range v.Coordinators {
			if p, ok := people[v.Coordinators[i].ID]; ok {
				v.Coordinators[i].FullName = p.name
				v.Coordinators[i].Phone = p.phone
			}
		}
	}
	return nil
}
