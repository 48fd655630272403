package readstore

import (
	"context"

	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type MetricsReadStore struct {
	db db.DBTX
}

func NewMetricsReadStore(dbtx db.DBTX) *MetricsReadStore {
	return &MetricsReadStore{db: dbtx}
}

var _ queries.MetricsViewRepo = (*MetricsReadStore)(nil)

func (r *MetricsReadStore) CollectEventMetrics(ctx context.Context, eventID uuid.UUID) (*queries.EventMetricsView, error) {
	v := queries.EventMetricsView{EventID: eventID}
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(DISTINCT user_id) FROM bookings WHERE event_id = $1 AND status != 'cancelled'),
			(SELECT COUNT(*) FROM bookings WHERE event_id = $1 AND status != 'cancelled'),
			(SELECT COUNT(*) FROM bookings WHERE event_id = $1 AND status = 'confirmed'),
			(SELECT COUNT(*) FROM bookings WHERE event_id = $1 AND status = 'pending_approval'),
			(SELECT COUNT(*) FROM bookings WHERE event_id = $1 AND status = 'cancellation_requested'),
			(SELECT COUNT(*) FROM bookings WHERE event_id = $1 AND status = 'waitlist'),
			(SELECT COALESCE(SUM(total_vacancies), 0) FROM shifts WHERE event_id = $1),
			(SELECT COUNT(*) FROM bookings WHERE event_id = $1 AND attendance = 'attended'),
			(SELECT COUNT(*) FROM bookings WHERE event_id = $1 AND attendance = 'absent')`,
		eventID).Scan(
		&v.TotalVolunteers, &v.TotalBookings, &v.ConfirmedBookings, &v.PendingApprovals,
		&v.PendingCancellations, &v.WaitlistedCount, &v.TotalVacancies,
		&v.AttendedCount, &v.AbsentCount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to collect event metrics", err)
	}
	return &v, nil
}
