package repository

import (
	"context"
	"time"

	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/shared"
)

type OutboxRepository struct{}

func NewOutboxRepository() shared.OutboxRepository {
	return &OutboxRepository{}
}

// CreateJob enqueues work in the same transaction as the state change it
// announces, so a rollback also drops the job.
func (r *OutboxRepository) CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO outbox_jobs (kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4)`

	if _, err := dbtx.Exec(ctx, query, kind, topic, payload, runAt); err != nil {
		return wrapDBErr("failed to create outbox job", err)
	}
	return nil
}
