package mailer

import (
	"context"
	"log/slog"
	"time"

	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/pkg/clock"
	"volunteer-hub/internal/pkg/config"

	"github.com/google/uuid"
)

// Dispatcher drains the notification_jobs outbox. Jobs are claimed with
// SKIP LOCKED so multiple instances never deliver the same email twice.
type Dispatcher struct {
	pool   db.DBTX
	sender Sender
	clock  clock.Clock
	cfg    config.DispatcherConfig
}

func NewDispatcher(pool db.DBTX, sender Sender, clk clock.Clock, cfg config.DispatcherConfig) *Dispatcher {
	return &Dispatcher{pool: pool, sender: sender, clock: clk, cfg: cfg}
}

// Run polls until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	slog.Info("notification dispatcher started", "poll_interval", d.cfg.PollInterval.String())
	for {
		select {
		case <-ctx.Done():
			slog.Info("notification dispatcher stopped")
			return
		case <-ticker.C:
			if err := d.drainOnce(ctx); err != nil {
				slog.Error("notification dispatch cycle failed", "error", err.Error())
			}
		}
	}
}

type claimedJob struct {
	ID       uuid.UUID
	Topic    string
	Payload  []byte
	Attempts int
}

func (d *Dispatcher) drainOnce(ctx context.Context) error {
	jobs, err := d.claim(ctx)
	if err != nil {
		return err
	}

	for _, job := range jobs {
		msg, err := Render(job.Topic, job.Payload)
		if err == nil && msg.To == "" {
			err = errMissingRecipient
		}
		if err == nil {
			err = d.sender.Send(ctx, msg.To, msg.ToName, msg.Subject, msg.Body)
		}

		if err != nil {
			d.markFailed(ctx, job, err)
			continue
		}
		d.markSent(ctx, job.ID)
	}
	return nil
}

var errMissingRecipient = infra.WrapRepoErr("notification payload has no recipient", nil, infra.KindDBFailure)

func (d *Dispatcher) claim(ctx context.Context) ([]claimedJob, error) {
	rows, err := d.pool.Query(ctx, `
		UPDATE notification_jobs
		SET status = 'processing', attempts = attempts + 1, updated_at = NOW()
		WHERE id IN (
			SELECT id FROM notification_jobs
			WHERE status IN ('queued', 'failed') AND run_at <= $1
			ORDER BY run_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, topic, payload, attempts`,
		d.clock.Now(), d.cfg.BatchSize)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	defer rows.Close()

	var jobs []claimedJob
	for rows.Next() {
		var j claimedJob
		if err := rows.Scan(&j.ID, &j.Topic, &j.Payload, &j.Attempts); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification jobs", err)
	}
	return jobs, nil
}

func (d *Dispatcher) markSent(ctx context.Context, id uuid.UUID) {
	if _, err := d.pool.Exec(ctx, `
		UPDATE notification_jobs SET status = 'sent', last_error = NULL, updated_at = NOW()
		WHERE id = $1`, id); err != nil {
		slog.Error("failed to mark notification job sent", "job_id", id, "error", err.Error())
	}
}

func (d *Dispatcher) markFailed(ctx context.Context, job claimedJob, cause error) {
	status := "failed"
	if job.Attempts >= d.cfg.MaxAttempts {
		status = "dead"
		slog.Error("notification job exhausted retries",
			"job_id", job.ID, "topic", job.Topic, "attempts", job.Attempts, "error", cause.Error())
	} else {
		slog.Warn("notification delivery failed",
			"job_id", job.ID, "topic", job.Topic, "attempts", job.Attempts, "error", cause.Error())
	}

	if _, err := d.pool.Exec(ctx, `
		UPDATE notification_jobs SET status = $2, last_error = $3, updated_at = NOW()
		WHERE id = $1`, job.ID, status, cause.Error()); err != nil {
		slog.Error("failed to mark notification job failed", "job_id", job.ID, "error", err.Error())
	}
}
