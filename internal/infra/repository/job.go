package repository

import (
	"context"
	"time"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	jobStatusQueued = "queued"

	enqueueJobSQL = `
INSERT INTO jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5)`

	// SKIP LOCKED lets several sweepers share the table without double-claiming.
	// A processing row older than $3 belongs to a sweeper that died mid-pass.
	claimDueJobsSQL = `
UPDATE jobs
SET status = 'processing', attempts = attempts + 1, updated_at = $2
WHERE id IN (
    SELECT id FROM jobs
    WHERE kind = $1
      AND ((status = 'queued' AND run_at <= $2) OR (status = 'processing' AND updated_at < $3))
    ORDER BY run_at
    LIMIT $4
    FOR UPDATE SKIP LOCKED
)
RETURNING id, kind, topic, payload, run_at, attempts`

	markJobDoneSQL = `
UPDATE jobs SET status = 'done', last_error = NULL, updated_at = now() WHERE id = $1`

	requeueJobsSQL = `
UPDATE jobs SET status = 'queued', updated_at = now() WHERE id = ANY($1) AND status = 'processing'`

	markJobFailedSQL = `
UPDATE jobs SET status = 'failed', last_error = $2, updated_at = now() WHERE id = $1`
)

type JobRepository struct{}

func NewJobRepository() *JobRepository {
	return &JobRepository{}
}

func (r *JobRepository) Enqueue(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	if payload == nil {
		payload = []byte("{}")
	}
	if _, err := tx.Exec(ctx, enqueueJobSQL, kind, topic, payload, pgconv.TimeToPgtype(runAt), jobStatusQueued); err != nil {
		return infra.WrapRepoErr("failed to enqueue job", err)
	}
	return nil
}

func (r *JobRepository) ClaimDue(ctx context.Context, tx db.DBTX, kind string, now, staleBefore time.Time, limit int) ([]shared.Job, error) {
	rows, err := tx.Query(ctx, claimDueJobsSQL, kind, pgconv.TimeToPgtype(now), pgconv.TimeToPgtype(staleBefore), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim due jobs", err)
	}
	defer rows.Close()

	var jobs []shared.Job
	for rows.Next() {
		var (
			j        shared.Job
			attempts int32
		)
		if err := rows.Scan(&j.ID, &j.Kind, &j.Topic, &j.Payload, &j.RunAt, &attempts); err != nil {
			return nil, infra.WrapRepoErr("failed to scan job", err)
		}
		j.Attempts = int(attempts)
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate jobs", err)
	}
	return jobs, nil
}

func (r *JobRepository) MarkDone(ctx context.Context, tx db.DBTX, jobID uuid.UUID) error {
	if _, err := tx.Exec(ctx, markJobDoneSQL, jobID); err != nil {
		return infra.WrapRepoErr("failed to mark job done", err)
	}
	return nil
}

// Requeue hands claimed jobs back untouched, for a pass that stopped early.
func (r *JobRepository) Requeue(ctx context.Context, tx db.DBTX, jobIDs []uuid.UUID) error {
	if len(jobIDs) == 0 {
		return nil
	}
	if _, err := tx.Exec(ctx, requeueJobsSQL, jobIDs); err != nil {
		return infra.WrapRepoErr("failed to requeue jobs", err)
	}
	return nil
}

func (r *JobRepository) MarkFailed(ctx context.Context, tx db.DBTX, jobID uuid.UUID, lastError string) error {
	if _, err := tx.Exec(ctx, markJobFailedSQL, jobID, lastError); err != nil {
		return infra.WrapRepoErr("failed to mark job failed", err)
	}
	return nil
}
