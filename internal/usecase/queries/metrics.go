package queries

import (
	"context"

	"github.com/google/uuid"
)

type MetricsQueries interface {
	EventMetrics(ctx context.Context, eventID uuid.UUID) (*EventMetricsView, error)
}

type MetricsViewRepo interface {
	CollectEventMetrics(ctx context.Context, eventID uuid.UUID) (*EventMetricsView, error)
}

type metricsQueriesImpl struct {
	repo MetricsViewRepo
}

func NewMetricsQueries(repo MetricsViewRepo) MetricsQueries {
	return &metricsQueriesImpl{repo: repo}
}

func (q *metricsQueriesImpl) EventMetrics(ctx context.Context, eventID uuid.UUID) (*EventMetricsView, error) {
	view, err := q.repo.CollectEventMetrics(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if view.TotalVacancies > 0 {
		view.FillRate = float64(view.ConfirmedBookings) / float64(view.TotalVacancies)
	}
	return view, nil
}
