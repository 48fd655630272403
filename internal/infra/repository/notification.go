package repository

import (
	"context"
	"time"

	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

var _ shared.NotificationRepository = (*NotificationRepository)(nil)

// CreateJob enqueues an outbox row in the caller's transaction so the
// notification commits or rolls back with the state change it announces.
func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO notification_jobs (id, kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}
