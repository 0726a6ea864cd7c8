package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

// JobCommands drain the jobs table. Each job is attempted once: a failure is
// recorded on the row and left for an operator.
type JobCommands interface {
	ReleaseDueRooms(ctx context.Context) (int, error)
	RelayDueEvents(ctx context.Context) (int, error)
}

type jobCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher EventPublisher
	notifier  ChangeNotifier
	clock     clock.Clock
	policy    HotelPolicy
}

func NewJobCommands(
	uow shared.UnitOfWork,
	publisher EventPublisher,
	notifier ChangeNotifier,
	clk clock.Clock,
	policy HotelPolicy,
) JobCommands {
	return &jobCommandsImpl{
		uow:       uow,
		publisher: publisher,
		notifier:  notifier,
		clock:     clk,
		policy:    policy,
	}
}

// ReleaseDueRooms makes cleaned rooms available again. A room that is no longer
// cleaning was changed by hand after checkout and is left alone.
func (uc *jobCommandsImpl) ReleaseDueRooms(ctx context.Context) (int, error) {
	jobs, err := uc.claim(ctx, JobKindRoomRelease)
	if err != nil {
		return 0, err
	}

	released := 0
	for i, job := range jobs {
		if ctx.Err() != nil {
			uc.requeue(ctx, jobs[i:])
			return released, ctx.Err()
		}

		var payload roomReleasePayload
		if err := json.Unmarshal(job.Payload, &payload); err != nil {
			uc.fail(ctx, job, errs.Wrap(err, "malformed room release payload"))
			continue
		}

		var changed bool
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			rs, err := tx.Reads().RoomByIDForUpdate(ctx, payload.RoomID)
			if err != nil {
				return notFoundAs(err, ErrRoomNotFound)
			}
			rm := roomFromSnapshot(rs)
			changed = rm.Release()
			if changed {
				if err := tx.Rooms().Update(ctx, tx.DB(), rm); err != nil {
					return errs.Wrap(err, "failed to release room")
				}
				roomID := rm.ID()
				err := enqueueEvent(ctx, tx, Event{
					Type:       EventRoomReleased,
					EntityID:   roomID,
					RoomID:     &roomID,
					OccurredAt: uc.clock.Now(),
				})
				if err != nil {
					return err
				}
			}
			return tx.Jobs().MarkDone(ctx, tx.DB(), job.ID)
		})
		if err != nil {
			// a stopped pass is not the job's fault
			if ctx.Err() != nil {
				uc.requeue(ctx, jobs[i:])
				return released, ctx.Err()
			}
			uc.fail(ctx, job, err)
			continue
		}

		if !changed {
			slog.Info("room release skipped, status was changed manually",
				"room_id", payload.RoomID, "booking_id", payload.BookingID)
			continue
		}
		released++
		uc.notifier.Invalidate(ctx, shared.RoomTag(payload.RoomID), shared.TagRooms, shared.TagDashboard)
	}
	return released, nil
}

// RelayDueEvents hands outbox events to the publisher in run_at order.
func (uc *jobCommandsImpl) RelayDueEvents(ctx context.Context) (int, error) {
	jobs, err := uc.claim(ctx, JobKindEvent)
	if err != nil {
		return 0, err
	}

	sent := 0
	for i, job := range jobs {
		if ctx.Err() != nil {
			uc.requeue(ctx, jobs[i:])
			return sent, ctx.Err()
		}
		if err := uc.publisher.Publish(ctx, job.Topic, job.Payload); err != nil {
			if ctx.Err() != nil {
				uc.requeue(ctx, jobs[i:])
				return sent, ctx.Err()
			}
			uc.fail(ctx, job, err)
			continue
		}
		// already delivered; record it even if the pass is stopping
		err := uc.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
			return tx.Jobs().MarkDone(ctx, tx.DB(), job.ID)
		})
		if err != nil {
			slog.Error("event published but not marked done", "job_id", job.ID, "error", err.Error())
			continue
		}
		sent++
	}
	return sent, nil
}

func (uc *jobCommandsImpl) claim(ctx context.Context, kind string) ([]shared.Job, error) {
	var jobs []shared.Job
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		claimed, err := tx.Jobs().ClaimDue(ctx, tx.DB(), kind, now, now.Add(-uc.policy.JobLease), uc.policy.JobBatchSize)
		if err != nil {
			return err
		}
		jobs = claimed
		return nil
	})
	if err != nil {
		return nil, errs.Wrapf(err, "failed to claim %s jobs", kind)
	}
	return jobs, nil
}

// fail records the error on the row even when the pass is being stopped.
func (uc *jobCommandsImpl) fail(ctx context.Context, job shared.Job, cause error) {
	slog.Warn("job failed", "job_id", job.ID, "kind", job.Kind, "topic", job.Topic, "error", cause.Error())

	err := uc.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		return tx.Jobs().MarkFailed(ctx, tx.DB(), job.ID, cause.Error())
	})
	if err != nil {
		slog.Error("failed to mark job failed", "job_id", job.ID, "error", err.Error())
	}
}

// requeue returns jobs a stopped pass did not get to; a job that still fails to
// requeue is picked up again once its lease runs out.
func (uc *jobCommandsImpl) requeue(ctx context.Context, jobs []shared.Job) {
	ids := make([]uuid.UUID, len(jobs))
	for i, job := range jobs {
		ids[i] = job.ID
	}

	err := uc.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		return tx.Jobs().Requeue(ctx, tx.DB(), ids)
	})
	if err != nil {
		slog.Error("failed to requeue jobs", "count", len(ids), "error", err.Error())
		return
	}
	slog.Info("pass stopped, jobs requeued", "count", len(ids))
}
